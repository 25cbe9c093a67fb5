// Package tui is the terminal front end of the phonebook client.
//
// The bubbletea model renders a [phonebook.Snapshot] and turns key presses
// into Book transitions. Directory calls run as tea.Cmd goroutines and
// their outcomes are applied back on the event loop, as are notification
// expiries and refresh ticks delivered with tea.Program.Send.
package tui
