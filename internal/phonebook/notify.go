package phonebook

import "time"

// Slot identifies one of the two independent notification channels.
type Slot int

const (
	// SlotInfo carries confirmations such as "Added Ann".
	SlotInfo Slot = iota
	// SlotError carries failures such as a record gone from the server.
	SlotError
)

const (
	// InfoTTL is how long an info message stays visible.
	InfoTTL = 5000 * time.Millisecond
	// ErrorTTL is how long an error message stays visible.
	ErrorTTL = 8000 * time.Millisecond
)

const slotCount = 2

func (s Slot) String() string {
	switch s {
	case SlotInfo:
		return "info"
	case SlotError:
		return "error"
	default:
		return "unknown"
	}
}

// TTL returns the display duration of messages in slot s.
func (s Slot) TTL() time.Duration {
	if s == SlotError {
		return ErrorTTL
	}
	return InfoTTL
}

// Expiry is a scheduled clear of one particular message. It is bound to the
// message it was issued for through Seq, not to the slot: once a newer
// message is shown in the same slot the expiry no longer has any effect.
type Expiry struct {
	Slot  Slot
	Seq   uint64
	After time.Duration
}

type notice struct {
	message string
	seq     uint64
}

// Notifications holds the info and error slots. The zero value is ready to
// use and has both slots empty.
type Notifications struct {
	slots [slotCount]notice
	seq   uint64
}

// Show puts message into slot, replacing whatever was there, and returns the
// expiry that clears it after the slot's TTL. Showing an empty message
// clears the slot.
func (n *Notifications) Show(slot Slot, message string) Expiry {
	n.seq++
	n.slots[slot] = notice{message: message, seq: n.seq}

	return Expiry{Slot: slot, Seq: n.seq, After: slot.TTL()}
}

// Expire clears the slot named by e if it still shows the message e was
// issued for. It reports whether the slot was cleared.
func (n *Notifications) Expire(e Expiry) bool {
	if e.Slot < 0 || int(e.Slot) >= slotCount {
		return false
	}

	current := n.slots[e.Slot]
	if current.seq != e.Seq || current.message == "" {
		return false
	}

	n.slots[e.Slot] = notice{}
	return true
}

// Clear empties slot immediately. Pending expiries for it become no-ops.
func (n *Notifications) Clear(slot Slot) {
	n.slots[slot] = notice{}
}

// Message returns the message currently shown in slot, or "".
func (n *Notifications) Message(slot Slot) string {
	return n.slots[slot].message
}
