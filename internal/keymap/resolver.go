package keymap

import "github.com/charmbracelet/bubbles/key"

// Resolver maps key strings to actions.
type Resolver struct {
	bindings map[string]Action   // key -> action
	byAction map[Action][]string // action -> keys (for help/documentation)
	help     HelpMap
}

// NewResolver creates a resolver from bindings.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[string]Action),
		byAction: make(map[Action][]string),
	}
	contexts := make(map[string]int)
	for _, b := range bindings {
		for _, k := range b.Keys {
			r.bindings[k] = b.Action
		}
		// Collect all keys for each action (may have duplicates from different contexts)
		r.byAction[b.Action] = append(r.byAction[b.Action], b.Keys...)

		kb := b.Key()
		r.help.short = append(r.help.short, kb)
		idx, ok := contexts[b.Context]
		if !ok {
			idx = len(r.help.full)
			contexts[b.Context] = idx
			r.help.full = append(r.help.full, nil)
		}
		r.help.full[idx] = append(r.help.full[idx], kb)
	}
	// Deduplicate keys per action
	for action, keys := range r.byAction {
		r.byAction[action] = dedupe(keys)
	}
	return r
}

// Resolve returns the action for a key, or empty string if not bound.
func (r *Resolver) Resolve(k string) Action {
	return r.bindings[k]
}

// KeysFor returns the keys bound to an action (for help/documentation).
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

// Help returns the bindings as a bubbles help.KeyMap.
func (r *Resolver) Help() HelpMap {
	return r.help
}

// HelpMap implements help.KeyMap: one short row, one full column per context.
type HelpMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (h HelpMap) ShortHelp() []key.Binding { return h.short }

func (h HelpMap) FullHelp() [][]key.Binding { return h.full }

// dedupe removes duplicate strings from a slice.
func dedupe(s []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
