package phonebook

import (
	"strings"

	"github.com/MKhiriev/go-phonebook/models"
)

// Visible returns the entries of records whose name contains term,
// ignoring case, in their original order.
//
// An empty term returns records itself. The result never contains an entry
// that is not in records.
func Visible(records []models.Person, term string) []models.Person {
	if term == "" {
		return records
	}

	needle := strings.ToLower(term)
	visible := make([]models.Person, 0, len(records))
	for _, p := range records {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			visible = append(visible, p)
		}
	}

	return visible
}
