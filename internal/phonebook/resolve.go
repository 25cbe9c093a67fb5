package phonebook

import (
	"strings"

	"github.com/MKhiriev/go-phonebook/models"
)

// IntentKind tells whether an add request creates an entry or updates one.
type IntentKind int

const (
	// IntentCreate means no entry with the candidate name exists yet.
	IntentCreate IntentKind = iota
	// IntentUpdate means an entry with the candidate name already exists.
	IntentUpdate
)

func (k IntentKind) String() string {
	switch k {
	case IntentCreate:
		return "create"
	case IntentUpdate:
		return "update"
	default:
		return "unknown"
	}
}

// Intent is the decision made by [Resolve] before any network call.
type Intent struct {
	Kind IntentKind
	// ExistingID is the ID of the entry to update. Zero for IntentCreate.
	ExistingID int64
}

// Resolve compares candidateName against the names in records, ignoring
// case. The first matching entry in iteration order is targeted for update;
// later entries with the same name are never reached by the update path.
func Resolve(records []models.Person, candidateName string) Intent {
	for _, p := range records {
		if strings.EqualFold(p.Name, candidateName) {
			return Intent{Kind: IntentUpdate, ExistingID: p.ID}
		}
	}

	return Intent{Kind: IntentCreate}
}
