package wiki

import (
	"errors"
	"fmt"
	"strings"
)

// Language is a Wikipedia edition the feed can be switched between.
type Language string

const (
	Korean  Language = "ko"
	English Language = "en"
)

// DefaultLanguage is the edition used when nothing else is configured.
const DefaultLanguage = Korean

var ErrUnsupportedLanguage = errors.New("unsupported language")

// Languages lists the supported editions in toggle order.
func Languages() []Language {
	return []Language{Korean, English}
}

func ParseLanguage(s string) (Language, error) {
	want := Language(strings.ToLower(strings.TrimSpace(s)))
	names := make([]string, 0, 2)
	for _, l := range Languages() {
		if l == want {
			return l, nil
		}
		names = append(names, string(l))
	}
	return "", fmt.Errorf("%w: %q (valid: %s)", ErrUnsupportedLanguage, s, strings.Join(names, ", "))
}

// Toggle returns the other supported edition.
func (l Language) Toggle() Language {
	langs := Languages()
	for i, cand := range langs {
		if cand == l {
			return langs[(i+1)%len(langs)]
		}
	}
	return DefaultLanguage
}

func (l Language) Valid() bool {
	return l == Korean || l == English
}

func (l Language) String() string {
	return string(l)
}
