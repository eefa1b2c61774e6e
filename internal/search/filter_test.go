package search

import (
	"reflect"
	"testing"

	"polka/internal/catalog"
)

var shelf = []catalog.Book{
	{ID: "b1", Title: "Dune", AuthorID: "a1", GenreIDs: []string{"g1"}},
	{ID: "b2", Title: "Dune Messiah", AuthorID: "a1", GenreIDs: []string{"g1", "g2"}},
	{ID: "b3", Title: "Оно", AuthorID: "a2", GenreIDs: []string{"g3"}},
	{ID: "b4", Title: "The Shining", AuthorID: "a2", GenreIDs: []string{"g3"}},
	{ID: "b5", Title: "Hyperion", AuthorID: "a3", GenreIDs: []string{"g1"}},
}

func ids(books []catalog.Book) []string {
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{
			name:     "Empty Criteria Returns Everything In Order",
			criteria: Criteria{},
			want:     []string{"b1", "b2", "b3", "b4", "b5"},
		},
		{
			name:     "Any Sentinels Return Everything",
			criteria: Criteria{Genre: Any, Author: Any, Title: "   "},
			want:     []string{"b1", "b2", "b3", "b4", "b5"},
		},
		{
			name:     "Title Substring Case Insensitive",
			criteria: Criteria{Title: "dune"},
			want:     []string{"b1", "b2"},
		},
		{
			name:     "Title Substring Exactly One Match",
			criteria: Criteria{Title: "messiah"},
			want:     []string{"b2"},
		},
		{
			name:     "Title Folds Non ASCII",
			criteria: Criteria{Title: "оно"},
			want:     []string{"b3"},
		},
		{
			name:     "Genre Match",
			criteria: Criteria{Genre: "g1"},
			want:     []string{"b1", "b2", "b5"},
		},
		{
			name:     "Author Match",
			criteria: Criteria{Author: "a2"},
			want:     []string{"b3", "b4"},
		},
		{
			name:     "All Predicates AND Together",
			criteria: Criteria{Genre: "g1", Author: "a1", Title: "dune"},
			want:     []string{"b1", "b2"},
		},
		{
			name:     "Conjunction Can Exclude",
			criteria: Criteria{Genre: "g2", Author: "a2"},
			want:     []string{},
		},
		{
			name:     "No Matches",
			criteria: Criteria{Title: "necronomicon"},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(shelf, tt.criteria))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Every returned book satisfies all predicates; every excluded book fails one.
func TestFilterPartition(t *testing.T) {
	c := Criteria{Genre: "g1", Title: "dune"}
	matched := map[string]bool{}
	for _, b := range Filter(shelf, c) {
		matched[b.ID] = true
		if !matchGenre(b, c) || !matchTitle(b, c) || !matchAuthor(b, c) {
			t.Errorf("returned book %s fails a predicate", b.ID)
		}
	}
	for _, b := range shelf {
		if matched[b.ID] {
			continue
		}
		if matchGenre(b, c) && matchTitle(b, c) && matchAuthor(b, c) {
			t.Errorf("excluded book %s satisfies all predicates", b.ID)
		}
	}
}

func TestFilterIdempotent(t *testing.T) {
	c := Criteria{Genre: "g1"}
	first := ids(Filter(shelf, c))
	second := ids(Filter(shelf, c))
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same criteria gave %v then %v", first, second)
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	before := ids(shelf)
	Filter(shelf, Criteria{Title: "dune"})
	if !reflect.DeepEqual(before, ids(shelf)) {
		t.Error("dataset order changed")
	}
}

func TestCriteriaMatchesAll(t *testing.T) {
	if !(Criteria{}).MatchesAll() {
		t.Error("zero criteria should match all")
	}
	if (Criteria{Genre: "g1"}).MatchesAll() {
		t.Error("genre-restricted criteria should not match all")
	}
}
