package tui

import (
	"context"

	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/internal/phonebook"
	"github.com/MKhiriev/go-phonebook/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type focusArea int

const (
	focusSearch focusArea = iota
	focusName
	focusNumber
	focusList

	focusCount
)

// model is the bubbletea model of the phonebook screen. All Book
// transitions happen inside Update.
type model struct {
	ctx    context.Context
	book   *phonebook.Book
	dir    Directory
	timers scheduler

	snap    phonebook.Snapshot
	inputs  [focusList]textinput.Model
	focus   focusArea
	cursor  int
	confirm *phonebook.Confirmation
	status  string

	serverVersion string
	buildInfo     models.AppBuildInfo

	writeClipboard func(string) error
	help           help.Model
	width          int

	logger *logger.Logger
}

func newModel(ctx context.Context, dir Directory, timers scheduler, buildInfo models.AppBuildInfo, logger *logger.Logger) model {
	m := model{
		ctx:            ctx,
		book:           phonebook.NewBook(dir, logger),
		dir:            dir,
		timers:         timers,
		buildInfo:      buildInfo,
		writeClipboard: clipboard.WriteAll,
		help:           help.New(),
		logger:         logger,
	}

	placeholders := [focusList]string{"filter shown with", "name", "number"}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.Prompt = ""
		ti.Width = 40
		ti.Cursor.SetMode(cursor.CursorStatic)
		m.inputs[i] = ti
	}
	m.inputs[focusSearch].Focus()
	m.snap = m.book.Snapshot()

	return m
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.run(m.book.Load()), m.fetchVersion())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case outcomeMsg:
		if e, ok := m.book.Apply(msg.outcome); ok {
			m.timers.Schedule(e)
		}
		m.sync()
		return m, nil

	case expiryMsg:
		m.book.Expire(msg.expiry)
		m.sync()
		return m, nil

	case RefreshMsg:
		return m, m.run(m.book.Load())

	case versionMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("error fetching server version")
			return m, nil
		}
		m.serverVersion = msg.version
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("error writing to clipboard")
			m.status = "Clipboard unavailable"
			return m, nil
		}
		m.status = "Copied " + msg.number
		return m, nil

	case tea.KeyMsg:
		if m.confirm != nil {
			return m.updateConfirm(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

// updateConfirm answers the pending confirmation. Other keys are ignored
// until the user decides.
func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.yes):
		call := m.book.Decide(m.confirm, true)
		m.confirm = nil
		return m, m.run(call)
	case key.Matches(msg, keys.no):
		m.book.Decide(m.confirm, false)
		m.confirm = nil
	}

	return m, nil
}

func (m model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit

	case key.Matches(msg, keys.tab):
		return m.setFocus((m.focus + 1) % focusCount), nil

	case key.Matches(msg, keys.backtab):
		return m.setFocus((m.focus + focusCount - 1) % focusCount), nil

	case key.Matches(msg, keys.refresh):
		return m, m.run(m.book.Load())

	case key.Matches(msg, keys.delete):
		if p, ok := m.selected(); ok {
			m.confirm = m.book.Delete(p.ID, p.Name)
		}
		return m, nil

	case key.Matches(msg, keys.copy):
		if p, ok := m.selected(); ok {
			return m, m.copyNumber(p.Number)
		}
		return m, nil
	}

	if m.focus == focusList {
		return m.updateList(msg)
	}

	if key.Matches(msg, keys.submit) && m.focus != focusSearch {
		call, confirm := m.book.Submit()
		if confirm != nil {
			m.confirm = confirm
			return m, nil
		}
		return m, m.run(call)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	value := m.inputs[m.focus].Value()
	switch m.focus {
	case focusSearch:
		m.book.SetSearch(value)
	case focusName:
		m.book.SetName(value)
	case focusNumber:
		m.book.SetNumber(value)
	}
	m.sync()

	return m, cmd
}

func (m model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(m.snap.Visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.submit):
		// load the selected entry into the form so its number can be replaced
		if p, ok := m.selected(); ok {
			m.book.SetName(p.Name)
			m.book.SetNumber(p.Number)
			m.sync()
			return m.setFocus(focusNumber), nil
		}
	}

	return m, nil
}

func (m model) setFocus(f focusArea) model {
	m.focus = f
	for i := range m.inputs {
		if focusArea(i) == f {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m
}

// sync refreshes the snapshot and mirrors the form back into the inputs,
// which clears them after a successful add.
func (m *model) sync() {
	m.snap = m.book.Snapshot()

	if m.inputs[focusName].Value() != m.snap.Form.Name {
		m.inputs[focusName].SetValue(m.snap.Form.Name)
	}
	if m.inputs[focusNumber].Value() != m.snap.Form.Number {
		m.inputs[focusNumber].SetValue(m.snap.Form.Number)
	}

	m.cursor = min(m.cursor, max(len(m.snap.Visible)-1, 0))
}

func (m model) selected() (models.Person, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snap.Visible) {
		return models.Person{}, false
	}
	return m.snap.Visible[m.cursor], true
}

// run executes call off the event loop and reports its outcome.
func (m model) run(call phonebook.Call) tea.Cmd {
	if call == nil {
		return nil
	}

	ctx := m.ctx
	return func() tea.Msg {
		return outcomeMsg{outcome: call(ctx)}
	}
}

func (m model) fetchVersion() tea.Cmd {
	ctx, dir := m.ctx, m.dir
	return func() tea.Msg {
		version, err := dir.Version(ctx)
		return versionMsg{version: version, err: err}
	}
}

func (m model) copyNumber(number string) tea.Cmd {
	write := m.writeClipboard
	return func() tea.Msg {
		return copiedMsg{number: number, err: write(number)}
	}
}
