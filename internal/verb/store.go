package verb

import (
	"strings"

	"tread/internal/config"
	"tread/internal/errors"
	"tread/pkg/types"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// SearchKind is the outcome of a verb search
type SearchKind int

const (
	NoMatch SearchKind = iota
	Match
	TooManyMatches
)

// SearchResult is the verb found for a typed name, or the candidates when
// the name is ambiguous
type SearchResult struct {
	Kind        SearchKind
	Verb        *Verb
	Completions []string
}

// Store is the ordered registry of verbs. It's read-only once built.
type Store struct {
	verbs []*Verb
}

// NewStore builds a store holding the configured verbs followed by the
// default ones, so that a configured verb takes precedence on a default
// verb with the same name.
func NewStore(defs []Definition) (*Store, error) {
	s := &Store{}
	for _, def := range defs {
		v, err := NewExternal(def)
		if err != nil {
			return nil, errors.Wrapf(err, "verb %q", def.Invocation)
		}
		s.verbs = append(s.verbs, v)
	}
	s.verbs = append(s.verbs, defaultVerbs()...)
	return s, nil
}

// NewStoreFromConfig builds a store from the verbs of a configuration
func NewStoreFromConfig(cfg *config.Config) (*Store, error) {
	defs := make([]Definition, 0, len(cfg.Verbs))
	for _, vc := range cfg.Verbs {
		defs = append(defs, Definition{
			Invocation:  vc.Invocation,
			Key:         vc.Key,
			Shortcut:    vc.Shortcut,
			Execution:   vc.Execution,
			Description: vc.Description,
			FromShell:   vc.FromShell,
			LeaveApp:    vc.LeavesApp(),
			Confirm:     vc.Confirm,
		})
	}
	return NewStore(defs)
}

// Verbs returns the verbs in display order
func (s *Store) Verbs() []*Verb {
	return s.verbs
}

// Search finds the verb whose name or shortcut is prefix, or else the only
// one starting with prefix.
func (s *Store) Search(prefix string) SearchResult {
	var found *Verb
	var completions []string
	for _, v := range s.verbs {
		if v.Shortcut != "" && strings.HasPrefix(v.Shortcut, prefix) {
			if v.Shortcut == prefix {
				return SearchResult{Kind: Match, Verb: v}
			}
			found = v
			completions = append(completions, v.Shortcut)
			continue
		}
		if strings.HasPrefix(v.Name(), prefix) {
			if v.Name() == prefix {
				return SearchResult{Kind: Match, Verb: v}
			}
			found = v
			completions = append(completions, v.Name())
		}
	}
	switch len(completions) {
	case 0:
		return SearchResult{Kind: NoMatch}
	case 1:
		return SearchResult{Kind: Match, Verb: found}
	default:
		return SearchResult{Kind: TooManyMatches, Completions: completions}
	}
}

// ForKey returns the first verb triggered by msg applying to sel, or nil
func (s *Store) ForKey(msg tea.KeyMsg, sel types.Selection) *Verb {
	for _, v := range s.verbs {
		if v.HasKey() && key.Matches(msg, v.Key) && v.SelectionCondition.Accepts(sel) {
			return v
		}
	}
	return nil
}
