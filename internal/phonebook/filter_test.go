package phonebook

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-phonebook/models"
	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"
)

var testPersons = []models.Person{
	{ID: 1, Name: "Arto Hellas", Number: "040-123456"},
	{ID: 2, Name: "Ada Lovelace", Number: "39-44-5323523"},
	{ID: 3, Name: "Dan Abramov", Number: "12-43-234345"},
	{ID: 4, Name: "Mary Poppendieck", Number: "39-23-6423122"},
}

func TestVisible(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []models.Person
	}{
		{name: "empty term returns everything", term: "", want: testPersons},
		{name: "case insensitive", term: "ARTO", want: testPersons[:1]},
		{name: "substring in the middle", term: "love", want: testPersons[1:2]},
		{name: "keeps order", term: "a", want: testPersons},
		{name: "several matches", term: "ram", want: testPersons[2:3]},
		{name: "no match", term: "zed", want: []models.Person{}},
		{name: "number is not searched", term: "040", want: []models.Person{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Visible(testPersons, tt.term)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Visible(%q) mismatch (-want +got):\n%s", tt.term, diff)
			}
		})
	}
}

func TestVisible_NilRecords(t *testing.T) {
	if got := Visible(nil, "ann"); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

// =============================================================================
// Generators for property-based testing
// =============================================================================

func personGenerator() *rapid.Generator[models.Person] {
	return rapid.Custom(func(t *rapid.T) models.Person {
		return models.Person{
			ID:     rapid.Int64Range(1, 1_000_000).Draw(t, "id"),
			Name:   rapid.StringMatching(`[A-Za-z ]{0,12}`).Draw(t, "name"),
			Number: rapid.StringMatching(`[0-9-]{0,12}`).Draw(t, "number"),
		}
	})
}

func recordsGenerator() *rapid.Generator[[]models.Person] {
	return rapid.SliceOf(personGenerator())
}

func isSubsequence(sub, full []models.Person) bool {
	i := 0
	for _, p := range full {
		if i < len(sub) && sub[i] == p {
			i++
		}
	}
	return i == len(sub)
}

func TestVisible_IsMatchingSubsequence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		records := recordsGenerator().Draw(t, "records")
		term := rapid.StringMatching(`[A-Za-z]{0,3}`).Draw(t, "term")

		got := Visible(records, term)

		if !isSubsequence(got, records) {
			t.Fatalf("visible %v is not a subsequence of %v", got, records)
		}
		for _, p := range got {
			if !strings.Contains(strings.ToLower(p.Name), strings.ToLower(term)) {
				t.Fatalf("visible entry %q does not contain %q", p.Name, term)
			}
		}
	})
}

func TestVisible_EmptyTermIsIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		records := recordsGenerator().Draw(t, "records")

		if diff := cmp.Diff(records, Visible(records, "")); diff != "" {
			t.Fatalf("Visible(records, \"\") changed records (-want +got):\n%s", diff)
		}
	})
}
