package search

import "strings"

// Any значение-заглушка: поле не ограничивает выдачу
const Any = "any"

// Criteria критерии одного поиска. Живут один submit, потом пересоздаются.
// Нулевое значение матчит весь каталог.
type Criteria struct {
	Genre  string // id жанра, "" или "any" = любой
	Author string // id автора, "" или "any" = любой
	Title  string // подстрока названия, регистр не важен
}

// AnyGenre reports whether the genre field does not restrict the result.
func (c Criteria) AnyGenre() bool {
	return c.Genre == "" || c.Genre == Any
}

// AnyAuthor reports whether the author field does not restrict the result.
func (c Criteria) AnyAuthor() bool {
	return c.Author == "" || c.Author == Any
}

// AnyTitle reports whether the title field does not restrict the result.
// Whitespace-only input counts as empty.
func (c Criteria) AnyTitle() bool {
	return strings.TrimSpace(c.Title) == ""
}

// MatchesAll reports whether the criteria would return the whole catalogue.
func (c Criteria) MatchesAll() bool {
	return c.AnyGenre() && c.AnyAuthor() && c.AnyTitle()
}
