package verb

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"tread/internal/errors"

	"github.com/charmbracelet/bubbles/key"
)

var namedKeys = map[string]string{
	"enter":     "enter",
	"return":    "enter",
	"tab":       "tab",
	"esc":       "esc",
	"escape":    "esc",
	"backspace": "backspace",
	"delete":    "delete",
	"del":       "delete",
	"insert":    "insert",
	"up":        "up",
	"down":      "down",
	"left":      "left",
	"right":     "right",
	"home":      "home",
	"end":       "end",
	"pgup":      "pgup",
	"pageup":    "pgup",
	"pgdown":    "pgdown",
	"pagedown":  "pgdown",
	"space":     " ",
}

func init() {
	for i := 1; i <= 20; i++ {
		name := fmt.Sprintf("f%d", i)
		namedKeys[name] = name
	}
}

// ParseKey reads a key description such as `ctrl-q`, `alt-enter` or `F5`
// into a binding matching the corresponding bubbletea key message.
func ParseKey(desc string) (key.Binding, error) {
	var alt, ctrl, shift bool
	rest := desc
	for {
		lower := strings.ToLower(rest)
		switch {
		case hasModifier(lower, "ctrl"):
			ctrl = true
		case hasModifier(lower, "alt"):
			alt = true
		case hasModifier(lower, "shift"):
			shift = true
		default:
			return buildBinding(desc, rest, alt, ctrl, shift)
		}
		rest = rest[strings.IndexAny(rest, "-+")+1:]
	}
}

func hasModifier(desc, modifier string) bool {
	return len(desc) > len(modifier)+1 &&
		strings.HasPrefix(desc, modifier) &&
		(desc[len(modifier)] == '-' || desc[len(modifier)] == '+')
}

func buildBinding(desc, base string, alt, ctrl, shift bool) (key.Binding, error) {
	name, named := namedKeys[strings.ToLower(base)]
	switch {
	case named:
	case utf8.RuneCountInString(base) == 1 && !shift:
		name = base
		if ctrl {
			name = strings.ToLower(base)
		}
	default:
		return key.Binding{}, errors.NewConfigError("invalid verb key", desc, errors.InvalidVerbKey, nil)
	}

	var sb strings.Builder
	if alt {
		sb.WriteString("alt+")
	}
	if ctrl {
		sb.WriteString("ctrl+")
	}
	if shift {
		sb.WriteString("shift+")
	}
	sb.WriteString(name)
	k := sb.String()
	return key.NewBinding(key.WithKeys(k), key.WithHelp(k, "")), nil
}

// MustParseKey is ParseKey for static key descriptions
func MustParseKey(desc string) key.Binding {
	k, err := ParseKey(desc)
	if err != nil {
		panic(err)
	}
	return k
}

func keyDesc(k key.Binding) string {
	return k.Help().Key
}

func hasKey(k key.Binding) bool {
	return len(k.Keys()) > 0
}
