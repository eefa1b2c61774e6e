package search

import (
	"strings"

	"golang.org/x/text/cases"

	"polka/internal/catalog"
)

// Filter возвращает книги, удовлетворяющие всем трем предикатам, в исходном
// порядке каталога. Чистая функция: вход не мутируется, ранжирования нет.
func Filter(books []catalog.Book, c Criteria) []catalog.Book {
	out := make([]catalog.Book, 0, len(books))
	for _, b := range books {
		if matchGenre(b, c) && matchTitle(b, c) && matchAuthor(b, c) {
			out = append(out, b)
		}
	}
	return out
}

func matchGenre(b catalog.Book, c Criteria) bool {
	return c.AnyGenre() || b.HasGenre(c.Genre)
}

func matchAuthor(b catalog.Book, c Criteria) bool {
	return c.AnyAuthor() || b.AuthorID == c.Author
}

func matchTitle(b catalog.Book, c Criteria) bool {
	if c.AnyTitle() {
		return true
	}
	needle := strings.TrimSpace(c.Title)
	return strings.Contains(fold(b.Title), fold(needle))
}

// fold нормализует регистр по Unicode, а не только ASCII
func fold(s string) string {
	return cases.Fold().String(s)
}
