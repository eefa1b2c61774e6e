package render

import (
	"fmt"
	"io"
	"strings"

	"polka/internal/catalog"
)

// Renderer единственный компонент, который пишет в поверхности вывода.
// Владеет текущей темой; все остальное состояние приходит аргументами.
type Renderer struct {
	theme Theme
	color bool
}

// New creates a renderer with the given starting theme. Set color to false
// for plain output (tests, one-shot mode piped somewhere).
func New(theme Theme, color bool) *Renderer {
	return &Renderer{theme: theme, color: color}
}

// SetTheme applies a palette. Validation happens in ParseTheme; by the time
// a Theme value exists it is one of the two palettes.
func (r *Renderer) SetTheme(t Theme) {
	r.theme = t
}

// Theme returns the active theme.
func (r *Renderer) Theme() Theme {
	return r.theme
}

func (r *Renderer) accent(s string) string {
	if !r.color {
		return s
	}
	return ansiFg(r.theme.Palette().Dark) + s + ansiReset
}

func (r *Renderer) text(s string) string {
	if !r.color {
		return s
	}
	return ansiFg(r.theme.Palette().Light) + s + ansiReset
}

// RenderPreviews prints one table row per book: id, title, resolved author.
// The id column is the retrievable handle for `open <id>`. With header=true the
// visible list is being replaced (fresh search); header=false appends rows only.
func (r *Renderer) RenderPreviews(w io.Writer, books []catalog.Book, data *catalog.Dataset, header bool) {
	if header {
		fmt.Fprintf(w, "%-8s | %-32s | %-20s\n", "ID", "Title", "Author")
		fmt.Fprintln(w, strings.Repeat("-", 64))
	}
	for _, b := range books {
		fmt.Fprintf(w, "%-8s | %-32s | %-20s\n",
			r.accent(b.ID), r.text(b.Title), data.AuthorName(b.AuthorID))
	}
}

// RenderDetail prints the full record: cover path, title, author with the
// publication year, genres, description. The caller resolves the id first;
// an unknown id never reaches this function.
func (r *Renderer) RenderDetail(w io.Writer, b catalog.Book, data *catalog.Dataset) {
	fmt.Fprintln(w, strings.Repeat("=", 64))
	if b.Image != "" {
		fmt.Fprintf(w, "[%s]\n", b.Image)
	}
	fmt.Fprintln(w, r.text(b.Title))
	fmt.Fprintf(w, "%s (%d)\n", data.AuthorName(b.AuthorID), b.Year())
	if len(b.GenreIDs) > 0 {
		names := make([]string, 0, len(b.GenreIDs))
		for _, g := range b.GenreIDs {
			names = append(names, data.GenreName(g))
		}
		fmt.Fprintln(w, r.accent(strings.Join(names, ", ")))
	}
	if b.Description != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, b.Description)
	}
	fmt.Fprintln(w, strings.Repeat("=", 64))
}

// RenderNoResults prints the single designed failure message.
func (r *Renderer) RenderNoResults(w io.Writer) {
	fmt.Fprintln(w, "No results found.")
}

// AdvanceLabel формирует подпись кнопки "показать еще": счетчик не уходит
// в минус, нуль означает выключенный контрол.
func AdvanceLabel(remaining int) string {
	if remaining < 0 {
		remaining = 0
	}
	if remaining == 0 {
		return "Show more (0) [disabled]"
	}
	return fmt.Sprintf("Show more (%d)", remaining)
}

// RenderAdvance prints the advance-control line.
func (r *Renderer) RenderAdvance(w io.Writer, remaining int) {
	fmt.Fprintln(w, r.accent(AdvanceLabel(remaining)))
}
