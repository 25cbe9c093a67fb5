package phonebook

import (
	"slices"

	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/models"
)

// Form is the pending input of the add form.
type Form struct {
	Name   string
	Number string
}

// Snapshot is a read-only copy of the book state handed to the
// presentation layer after every transition.
type Snapshot struct {
	Records []models.Person
	Visible []models.Person
	Search  string
	Form    Form
	Info    string
	Error   string
}

// Book is the single owner of the local phonebook state.
//
// Book is not safe for concurrent use: every method must be called from the
// same event loop. Network work is returned as [Call] values that may run
// elsewhere; their outcomes come back through [Book.Apply].
type Book struct {
	dir Directory

	records []models.Person
	search  string
	form    Form
	notes   Notifications

	logger *logger.Logger
}

// NewBook creates an empty book that talks to dir.
func NewBook(dir Directory, logger *logger.Logger) *Book {
	return &Book{
		dir:     dir,
		records: make([]models.Person, 0),
		logger:  logger,
	}
}

// Snapshot returns a copy of the current state together with the visible
// subset for the current search term.
func (b *Book) Snapshot() Snapshot {
	records := slices.Clone(b.records)

	return Snapshot{
		Records: records,
		Visible: slices.Clone(Visible(records, b.search)),
		Search:  b.search,
		Form:    b.form,
		Info:    b.notes.Message(SlotInfo),
		Error:   b.notes.Message(SlotError),
	}
}

// SetSearch replaces the search term.
func (b *Book) SetSearch(term string) {
	b.search = term
}

// SetName replaces the name field of the pending form.
func (b *Book) SetName(name string) {
	b.form.Name = name
}

// SetNumber replaces the number field of the pending form.
func (b *Book) SetNumber(number string) {
	b.form.Number = number
}

// Expire applies a fired notification expiry. It reports whether a message
// was cleared.
func (b *Book) Expire(e Expiry) bool {
	return b.notes.Expire(e)
}

// ClearNotification empties slot right away.
func (b *Book) ClearNotification(slot Slot) {
	b.notes.Clear(slot)
}

func (b *Book) find(id int64) (models.Person, bool) {
	i := b.indexOf(id)
	if i < 0 {
		return models.Person{}, false
	}
	return b.records[i], true
}

func (b *Book) indexOf(id int64) int {
	return slices.IndexFunc(b.records, func(p models.Person) bool { return p.ID == id })
}

// upsert replaces the entry with p.ID in place or appends p when the ID is
// new, so IDs stay unique.
func (b *Book) upsert(p models.Person) {
	if i := b.indexOf(p.ID); i >= 0 {
		b.records[i] = p
		return
	}
	b.records = append(b.records, p)
}

// replace swaps the entry with id for p, keeping its position. Nothing
// happens when id is no longer in the set.
func (b *Book) replace(id int64, p models.Person) {
	if i := b.indexOf(id); i >= 0 {
		b.records[i] = p
	}
}

func (b *Book) remove(id int64) {
	b.records = slices.DeleteFunc(b.records, func(p models.Person) bool { return p.ID == id })
}

func (b *Book) reset(persons []models.Person) {
	seen := make(map[int64]struct{}, len(persons))
	records := make([]models.Person, 0, len(persons))
	for _, p := range persons {
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		records = append(records, p)
	}
	b.records = records
}
