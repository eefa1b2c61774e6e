package parser

import (
	"strings"

	"polka/internal/search"
)

// Parse - точка входа. Превращает строку запроса в критерии поиска.
//
// Грамматика строки: `genre:<id>`, `author:<id>`, `title:<слово>` в любом
// порядке; голые слова и неизвестные поля уходят в подстроку названия.
// Пропущенные поля не ограничивают выдачу, ошибок парсер не возвращает.
func Parse(input string) search.Criteria {
	l := NewLexer(input)
	c := search.Criteria{}
	var titleParts []string

	for tok := l.NextToken(); tok.Type != TokenEOF; tok = l.NextToken() {
		if tok.Type == TokenString {
			titleParts = append(titleParts, tok.Value)
			continue
		}

		// Поле без значения (`genre:` в конце строки) считается пустым
		val := l.NextToken()
		if val.Type == TokenEOF {
			break
		}

		switch strings.ToLower(tok.Value) {
		case "genre":
			c.Genre = val.Value
		case "author":
			c.Author = val.Value
		case "title":
			titleParts = append(titleParts, val.Value)
		default:
			// Неизвестное поле не ошибка: ищем его значение в названии
			titleParts = append(titleParts, val.Value)
		}
	}

	c.Title = strings.Join(titleParts, " ")
	return c
}
