package lang

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language is an uppercase language code in the form translation providers
// expect, e.g. "EN", "JA", "PT-BR".
type Language string

const (
	EN Language = "EN"
	JA Language = "JA"
	PT Language = "PT"
	DE Language = "DE"
	FR Language = "FR"
	ES Language = "ES"
)

// Parse canonicalizes a user- or topic-supplied language code. It accepts
// anything golang.org/x/text/language does ("en", "ja", "pt-BR", "EN-US")
// and rejects everything else.
func Parse(s string) (Language, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("empty language code")
	}

	t, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid language code %q: %w", s, err)
	}

	return Language(strings.ToUpper(t.String())), nil
}

func (l Language) String() string {
	return string(l)
}
