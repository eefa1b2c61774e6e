package render

import (
	"fmt"
	"strings"
)

// Theme режим отображения: день или ночь
type Theme string

const (
	ThemeDay   Theme = "day"
	ThemeNight Theme = "night"
)

// Palette два цвета темы в виде RGB-триплетов "r, g, b".
// Dark красит акценты, Light — основной текст; ночью они меняются местами.
type Palette struct {
	Dark  string
	Light string
}

var palettes = map[Theme]Palette{
	ThemeDay:   {Dark: "10, 10, 20", Light: "255, 255, 255"},
	ThemeNight: {Dark: "255, 255, 255", Light: "10, 10, 20"},
}

// ParseTheme accepts exactly the two theme values, nothing else.
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeDay:
		return ThemeDay, nil
	case ThemeNight:
		return ThemeNight, nil
	}
	return "", fmt.Errorf("unknown theme %q (want day or night)", s)
}

// Palette returns the two color variables for the theme.
func (t Theme) Palette() Palette {
	return palettes[t]
}

const ansiReset = "\033[0m"

// ansiFg turns an "r, g, b" triplet into a 24-bit foreground escape.
// Malformed triplets produce no escape so text stays readable.
func ansiFg(triple string) string {
	parts := strings.Split(triple, ",")
	if len(parts) != 3 {
		return ""
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return fmt.Sprintf("\033[38;2;%s;%s;%sm", parts[0], parts[1], parts[2])
}
