package verb

import (
	"strings"
	"unicode"
)

// Invocation is a verb name (or shortcut) with the argument text typed
// after it. Args is empty when no argument was given.
type Invocation struct {
	Name string
	Args string
}

// ParseInvocation parses `name`, `name args` or `:name args`
func ParseInvocation(raw string) Invocation {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimSpace(strings.TrimPrefix(raw, ":"))
	i := strings.IndexFunc(raw, unicode.IsSpace)
	if i < 0 {
		return Invocation{Name: raw}
	}
	return Invocation{
		Name: raw[:i],
		Args: strings.TrimSpace(raw[i:]),
	}
}

// IsEmpty reports whether no verb name was typed
func (inv Invocation) IsEmpty() bool {
	return inv.Name == ""
}

// StringForName renders the invocation with another name, as when the user
// typed a shortcut
func (inv Invocation) StringForName(name string) string {
	if inv.Args == "" {
		return name
	}
	return name + " " + inv.Args
}

func (inv Invocation) String() string {
	return inv.StringForName(inv.Name)
}
