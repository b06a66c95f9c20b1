package keymap

import "github.com/charmbracelet/bubbles/key"

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global" or "carousel"
}

// All contains all key bindings, in help order.
var All = []Binding{
	// Carousel
	{ActionScrollLeft, []string{"h", "left"}, "Scroll left", "carousel"},
	{ActionScrollRight, []string{"l", "right"}, "Scroll right", "carousel"},

	// Global
	{ActionHelp, []string{"?"}, "Toggle help", "global"},
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Key converts the binding to a bubbles key binding for help rendering.
func (b Binding) Key() key.Binding {
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(helpKeys(b.Keys), b.Description),
	)
}

// helpKeys renders keys the way the help line shows them: "h/←".
func helpKeys(keys []string) string {
	out := ""
	for i, k := range keys {
		if i > 0 {
			out += "/"
		}
		out += displayKey(k)
	}
	return out
}

func displayKey(k string) string {
	switch k {
	case "left":
		return "←"
	case "right":
		return "→"
	default:
		return k
	}
}
