package parser

import (
	"strings"
	"unicode"
)

type TokenType int

const (
	TokenEOF TokenType = iota
	TokenString
	TokenField
)

type Token struct {
	Type  TokenType
	Value string
}

type Lexer struct {
	input []rune
	pos   int
}

func NewLexer(input string) *Lexer {
	return &Lexer{input: []rune(input)}
}

func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF}
	}

	// Читаем токен до пробела ИЛИ до двоеточия (если это поле)
	start := l.pos
	for l.pos < len(l.input) && !unicode.IsSpace(l.input[l.pos]) {
		// Если встретили двоеточие — это конец имени поля
		if l.input[l.pos] == ':' {
			l.pos++ // Включаем двоеточие в токен поля
			word := string(l.input[start:l.pos])
			return Token{Type: TokenField, Value: strings.TrimSuffix(word, ":")}
		}
		l.pos++
	}

	return Token{Type: TokenString, Value: string(l.input[start:l.pos])}
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) && unicode.IsSpace(l.input[l.pos]) {
		l.pos++
	}
}
