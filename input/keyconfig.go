package input

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// ErrUnknownKey is returned for key names tcell does not know
var ErrUnknownKey = errors.New("unknown key name")

// Rune aliases for keys awkward to write as a single character in TOML
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keysByName is tcell.KeyNames inverted, lowercased
var keysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// Binding matches a terminal key event
type Binding struct {
	Key  tcell.Key // tcell.KeyRune for printable keys
	Rune rune      // lowercased; only meaningful with KeyRune
}

// ParseBinding resolves a config key name: a single character, a rune alias, or a tcell key name
func ParseBinding(name string) (Binding, error) {
	if name == "" {
		return Binding{}, fmt.Errorf("%w: empty", ErrUnknownKey)
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return Binding{Key: tcell.KeyRune, Rune: unicode.ToLower(r)}, nil
	}

	lower := strings.ToLower(name)
	if r, ok := runeAliases[lower]; ok {
		return Binding{Key: tcell.KeyRune, Rune: r}, nil
	}
	if k, ok := keysByName[lower]; ok {
		return Binding{Key: k}, nil
	}
	return Binding{}, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// Matches reports whether ev is this binding; rune bindings ignore case
func (b Binding) Matches(ev *tcell.EventKey) bool {
	if b.Key != tcell.KeyRune {
		return ev.Key() == b.Key
	}
	return ev.Key() == tcell.KeyRune && unicode.ToLower(ev.Rune()) == b.Rune
}

func (b Binding) String() string {
	if b.Key == tcell.KeyRune {
		for name, r := range runeAliases {
			if r == b.Rune {
				return name
			}
		}
		return string(b.Rune)
	}
	if name, ok := tcell.KeyNames[b.Key]; ok {
		return name
	}
	return fmt.Sprintf("Key[%d]", b.Key)
}
