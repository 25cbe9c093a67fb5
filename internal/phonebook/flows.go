package phonebook

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-phonebook/models"
)

// Call is a pending request to the [Directory]. It never touches the book
// state, so it may run on any goroutine. Its result must be passed to
// [Book.Apply].
type Call func(ctx context.Context) Outcome

// Outcome is the result of a [Call].
type Outcome interface {
	apply(b *Book) (Expiry, bool)
}

type confirmKind int

const (
	confirmUpdate confirmKind = iota
	confirmDelete
)

// Confirmation is a flow suspended until the user answers Prompt.
// Resume it with [Book.Decide].
type Confirmation struct {
	Prompt string

	kind   confirmKind
	target models.Person
}

// Load requests the full list from the directory. A successful outcome
// replaces the whole record set; the same call serves as a refresh.
func (b *Book) Load() Call {
	dir := b.dir
	return func(ctx context.Context) Outcome {
		persons, err := dir.List(ctx)
		return loadOutcome{persons: persons, err: err}
	}
}

// Submit runs the add flow for the pending form.
//
// When no entry has the form's name, the returned [Call] creates one and no
// confirmation is needed. When an entry with that name exists, Submit makes
// no call and returns a [Confirmation] asking whether to replace its number.
// Name and number are trimmed the same way the server trims them before
// the lookup.
func (b *Book) Submit() (Call, *Confirmation) {
	name, number := strings.TrimSpace(b.form.Name), strings.TrimSpace(b.form.Number)

	intent := Resolve(b.records, name)
	if intent.Kind == IntentCreate {
		dir := b.dir
		input := models.PersonInput{Name: name, Number: number}
		return func(ctx context.Context) Outcome {
			person, err := dir.Create(ctx, input)
			return createOutcome{input: input, person: person, err: err}
		}, nil
	}

	existing, _ := b.find(intent.ExistingID)
	updated := existing
	updated.Name = name
	updated.Number = number

	return nil, &Confirmation{
		Prompt: fmt.Sprintf("%s is already added to phonebook, replace the old number with a new one?", name),
		kind:   confirmUpdate,
		target: updated,
	}
}

// Delete starts the delete flow for the entry id. It always asks first.
func (b *Book) Delete(id int64, name string) *Confirmation {
	return &Confirmation{
		Prompt: fmt.Sprintf("Delete %s?", name),
		kind:   confirmDelete,
		target: models.Person{ID: id, Name: name},
	}
}

// Decide resumes a suspended flow. A declined confirmation ends the flow
// with no state change and no notification, and Decide returns nil.
func (b *Book) Decide(c *Confirmation, accepted bool) Call {
	if c == nil || !accepted {
		return nil
	}

	dir := b.dir
	target := c.target

	switch c.kind {
	case confirmUpdate:
		return func(ctx context.Context) Outcome {
			person, err := dir.Update(ctx, target.ID, target)
			return updateOutcome{id: target.ID, name: target.Name, person: person, err: err}
		}
	case confirmDelete:
		return func(ctx context.Context) Outcome {
			err := dir.Delete(ctx, target.ID)
			return deleteOutcome{id: target.ID, name: target.Name, err: err}
		}
	default:
		return nil
	}
}

// Apply folds the outcome of a finished call into the book. When the
// outcome produced a notification, Apply returns its expiry and true.
func (b *Book) Apply(o Outcome) (Expiry, bool) {
	if o == nil {
		return Expiry{}, false
	}
	return o.apply(b)
}

type loadOutcome struct {
	persons []models.Person
	err     error
}

func (o loadOutcome) apply(b *Book) (Expiry, bool) {
	if o.err != nil {
		b.logger.Err(o.err).Str("func", "*Book.Load").Msg("error loading phonebook")
		return b.notes.Show(SlotError, "Failed to load phonebook"), true
	}

	b.reset(o.persons)
	b.logger.Debug().Int("count", len(b.records)).Msg("phonebook loaded")
	return Expiry{}, false
}

type createOutcome struct {
	input  models.PersonInput
	person models.Person
	err    error
}

func (o createOutcome) apply(b *Book) (Expiry, bool) {
	if o.err != nil {
		b.logger.Err(o.err).Str("func", "*Book.Submit").Str("name", o.input.Name).Msg("error creating person")
		return b.notes.Show(SlotError, fmt.Sprintf("Failed to add %s", o.input.Name)), true
	}

	b.upsert(o.person)
	b.form = Form{}
	return b.notes.Show(SlotInfo, fmt.Sprintf("Added %s", o.input.Name)), true
}

type updateOutcome struct {
	id     int64
	name   string
	person models.Person
	err    error
}

func (o updateOutcome) apply(b *Book) (Expiry, bool) {
	if o.err != nil {
		// the local copy stays visible until the next full load
		b.logger.Err(o.err).Str("func", "*Book.Decide").Str("name", o.name).Msg("error updating person")
		return b.notes.Show(SlotError, fmt.Sprintf("Information of %s has already been removed from server", o.name)), true
	}

	b.replace(o.id, o.person)
	return b.notes.Show(SlotInfo, fmt.Sprintf("Updated %s", o.name)), true
}

type deleteOutcome struct {
	id   int64
	name string
	err  error
}

func (o deleteOutcome) apply(b *Book) (Expiry, bool) {
	if o.err != nil {
		b.logger.Err(o.err).Str("func", "*Book.Decide").Int64("id", o.id).Msg("error deleting person")
		return b.notes.Show(SlotError, fmt.Sprintf("Failed to delete %s", o.name)), true
	}

	b.remove(o.id)
	return b.notes.Show(SlotInfo, fmt.Sprintf("Deleted %s", o.name)), true
}
