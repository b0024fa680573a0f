package gui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrUnknownKey is returned for key names ebiten does not know
var ErrUnknownKey = errors.New("unknown key name")

// Names shared with the terminal bindings that ebiten spells differently
var keyAliases = map[string]ebiten.Key{
	"left":  ebiten.KeyArrowLeft,
	"right": ebiten.KeyArrowRight,
	"up":    ebiten.KeyArrowUp,
	"down":  ebiten.KeyArrowDown,
	"esc":   ebiten.KeyEscape,
	" ":     ebiten.KeySpace,
	"/":     ebiten.KeySlash,
	"\\":    ebiten.KeyBackslash,
	",":     ebiten.KeyComma,
	".":     ebiten.KeyPeriod,
}

// ParseKey resolves a config key name to an ebiten key, case-insensitive
func ParseKey(name string) (ebiten.Key, error) {
	if name == "" {
		return 0, fmt.Errorf("%w: empty", ErrUnknownKey)
	}
	if k, ok := keyAliases[strings.ToLower(name)]; ok {
		return k, nil
	}

	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	return k, nil
}
