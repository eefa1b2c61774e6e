package browser

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"polka/internal/catalog"
	"polka/internal/render"
	"polka/internal/search"
)

type surfaceBufs struct {
	list, detail, status, advance bytes.Buffer
}

func newTestSession(t *testing.T, pageSize int) (*Session, *surfaceBufs) {
	t.Helper()
	bufs := &surfaceBufs{}
	sur, err := BindSurfaces(map[string]io.Writer{
		SurfaceList:    &bufs.list,
		SurfaceDetail:  &bufs.detail,
		SurfaceStatus:  &bufs.status,
		SurfaceAdvance: &bufs.advance,
	})
	if err != nil {
		t.Fatal(err)
	}
	data := catalog.NewDataset(
		[]catalog.Book{
			{ID: "b1", Title: "Dune", AuthorID: "a1", GenreIDs: []string{"g1"}},
			{ID: "b2", Title: "Dune Messiah", AuthorID: "a1", GenreIDs: []string{"g1"}},
			{ID: "b3", Title: "Оно", AuthorID: "a2", GenreIDs: []string{"g2"}},
			{ID: "b4", Title: "The Shining", AuthorID: "a2", GenreIDs: []string{"g2"}},
			{ID: "b5", Title: "Hyperion", AuthorID: "a3", GenreIDs: []string{"g1"}},
		},
		map[string]string{"a1": "Frank Herbert", "a2": "Stephen King", "a3": "Dan Simmons"},
		map[string]string{"g1": "Science Fiction", "g2": "Horror"},
	)
	return New(data, sur, render.New(render.ThemeDay, false), pageSize), bufs
}

// Scenario: 5 books, page size 2 — 2 visible (3 remaining), then 4 (1), then
// all 5 with the control disabled.
func TestSearchAndAdvanceScenario(t *testing.T) {
	s, bufs := newTestSession(t, 2)

	s.OpenSearch()
	s.Search(search.Criteria{})
	if s.SearchOpen() {
		t.Error("search overlay should close on submit")
	}
	if s.Matches() != 5 || s.VisibleCount() != 2 || s.Remaining() != 3 {
		t.Fatalf("after search: matches=%d visible=%d remaining=%d", s.Matches(), s.VisibleCount(), s.Remaining())
	}
	if !strings.Contains(bufs.advance.String(), "Show more (3)") {
		t.Errorf("advance control should show (3): %q", bufs.advance.String())
	}

	s.More()
	if s.VisibleCount() != 4 || s.Remaining() != 1 {
		t.Fatalf("after one advance: visible=%d remaining=%d", s.VisibleCount(), s.Remaining())
	}
	if !strings.Contains(bufs.advance.String(), "Show more (1)") {
		t.Errorf("advance control should show (1): %q", bufs.advance.String())
	}

	s.More()
	if s.VisibleCount() != 5 || s.Remaining() != 0 {
		t.Fatalf("after two advances: visible=%d remaining=%d", s.VisibleCount(), s.Remaining())
	}
	if !strings.Contains(bufs.advance.String(), "[disabled]") {
		t.Errorf("advance control should be disabled: %q", bufs.advance.String())
	}

	// Exhausted control: a further More must change nothing.
	listBefore := bufs.list.String()
	s.More()
	if bufs.list.String() != listBefore {
		t.Error("advance past the end appended rows")
	}

	// All five rows accumulated, nothing was unloaded.
	for _, id := range []string{"b1", "b2", "b3", "b4", "b5"} {
		if !strings.Contains(bufs.list.String(), id) {
			t.Errorf("row %s missing from list surface:\n%s", id, bufs.list.String())
		}
	}
}

func TestSearchReplacesResultSet(t *testing.T) {
	s, bufs := newTestSession(t, 2)

	s.Search(search.Criteria{})
	s.More()
	s.Search(search.Criteria{Title: "dune"})

	if s.Matches() != 2 || s.VisibleCount() != 2 || s.Remaining() != 0 {
		t.Fatalf("second search: matches=%d visible=%d remaining=%d", s.Matches(), s.VisibleCount(), s.Remaining())
	}
	// Fresh search re-renders from the top: header appears again.
	if got := strings.Count(bufs.list.String(), "ID "); got != 2 {
		t.Errorf("expected 2 headers (one per fresh search), got %d", got)
	}
}

func TestZeroMatches(t *testing.T) {
	s, bufs := newTestSession(t, 2)

	s.Search(search.Criteria{Title: "necronomicon"})
	if !strings.Contains(bufs.status.String(), "No results found.") {
		t.Errorf("status surface missing no-results message: %q", bufs.status.String())
	}
	if !strings.Contains(bufs.advance.String(), "Show more (0) [disabled]") {
		t.Errorf("advance control should be disabled at 0: %q", bufs.advance.String())
	}
	if bufs.list.Len() != 0 {
		t.Errorf("list surface should stay empty: %q", bufs.list.String())
	}
}

func TestOpenUnknownIdIsNoOp(t *testing.T) {
	s, bufs := newTestSession(t, 2)
	s.Search(search.Criteria{})

	s.Open("nope")
	if s.DetailOpen() {
		t.Error("detail overlay opened for unknown id")
	}
	if bufs.detail.Len() != 0 {
		t.Errorf("detail surface written for unknown id: %q", bufs.detail.String())
	}
}

func TestOpenAndClose(t *testing.T) {
	s, bufs := newTestSession(t, 2)
	s.Search(search.Criteria{})

	s.Open("b2")
	if !s.DetailOpen() {
		t.Fatal("detail overlay should be open")
	}
	if !strings.Contains(bufs.detail.String(), "Dune Messiah") {
		t.Errorf("detail surface missing book: %q", bufs.detail.String())
	}

	s.Close()
	if s.DetailOpen() {
		t.Error("detail overlay should be closed")
	}
}

func TestThemeRoundTripThroughSettings(t *testing.T) {
	s, _ := newTestSession(t, 2)

	s.OpenSettings()
	s.SetTheme(render.ThemeNight)
	if s.SettingsOpen() {
		t.Error("settings overlay should close on submit")
	}
	if p := s.Theme().Palette(); p.Dark != "255, 255, 255" || p.Light != "10, 10, 20" {
		t.Errorf("night palette not applied: %+v", p)
	}

	s.SetTheme(render.ThemeDay)
	if p := s.Theme().Palette(); p.Dark != "10, 10, 20" || p.Light != "255, 255, 255" {
		t.Errorf("day palette not restored: %+v", p)
	}
}

func TestOverlayToggles(t *testing.T) {
	s, _ := newTestSession(t, 2)

	s.OpenSearch()
	if !s.SearchOpen() {
		t.Error("search overlay should be open")
	}
	s.CancelSearch()
	if s.SearchOpen() {
		t.Error("search overlay should be closed after cancel")
	}

	s.OpenSettings()
	s.CancelSettings()
	if s.SettingsOpen() {
		t.Error("settings overlay should be closed after cancel")
	}
}

func TestBindSurfacesValidation(t *testing.T) {
	var buf bytes.Buffer

	if _, err := BindSurfaces(map[string]io.Writer{
		SurfaceList: &buf,
	}); err == nil {
		t.Error("missing surfaces should fail initialization")
	}

	if _, err := BindSurfaces(map[string]io.Writer{
		SurfaceList:    &buf,
		SurfaceDetail:  &buf,
		SurfaceStatus:  &buf,
		SurfaceAdvance: &buf,
		"sidebar":      &buf,
	}); err == nil {
		t.Error("unknown surface name should fail initialization")
	}

	if _, err := BindSurfaces(map[string]io.Writer{
		SurfaceList:    &buf,
		SurfaceDetail:  nil,
		SurfaceStatus:  &buf,
		SurfaceAdvance: &buf,
	}); err == nil {
		t.Error("nil writer should fail initialization")
	}
}
