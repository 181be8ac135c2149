package keymap

// DefaultBindings returns the default key bindings.
func DefaultBindings() []Binding {
	return []Binding{
		// Movement
		{Key: "h", Symbol: "move-left", Context: ContextNavigate},
		{Key: "left", Symbol: "move-left", Context: ContextNavigate},
		{Key: "l", Symbol: "move-right", Context: ContextNavigate},
		{Key: "right", Symbol: "move-right", Context: ContextNavigate},
		{Key: "k", Symbol: "move-up", Context: ContextNavigate},
		{Key: "up", Symbol: "move-up", Context: ContextNavigate},
		{Key: "j", Symbol: "move-down", Context: ContextNavigate},
		{Key: "down", Symbol: "move-down", Context: ContextNavigate},
		{Key: "{", Symbol: "page-up", Context: ContextNavigate},
		{Key: "}", Symbol: "page-down", Context: ContextNavigate},
		{Key: "g", Symbol: "jump-top", Context: ContextNavigate},
		{Key: "G", Symbol: "jump-bottom", Context: ContextNavigate},
		{Key: "I", Symbol: "jump-row-start", Context: ContextNavigate},
		{Key: "A", Symbol: "jump-row-end", Context: ContextNavigate},

		// Rows and columns
		{Key: "o", Symbol: "insert-row-after", Context: ContextNavigate},
		{Key: "O", Symbol: "insert-row-before", Context: ContextNavigate},
		{Key: "d", Symbol: "delete-row", Context: ContextNavigate},
		{Key: "n", Symbol: "insert-col-after", Context: ContextNavigate},
		{Key: "N", Symbol: "insert-col-before", Context: ContextNavigate},
		{Key: "D", Symbol: "delete-col", Context: ContextNavigate},

		// Editing
		{Key: "i", Symbol: "edit-cell", Context: ContextNavigate},
		{Key: "enter", Symbol: "edit-cell", Context: ContextNavigate},
		{Key: "r", Symbol: "replace-cell", Context: ContextNavigate},
		{Key: "H", Symbol: "edit-header", Context: ContextNavigate},

		// Clipboard and undo
		{Key: "y", Symbol: "copy-cell", Context: ContextNavigate},
		{Key: "p", Symbol: "paste-cell", Context: ContextNavigate},
		{Key: ".", Symbol: "paste-date", Context: ContextNavigate},
		{Key: "u", Symbol: "undo", Context: ContextNavigate},

		// Session
		{Key: "q", Symbol: "save-quit", Context: ContextNavigate},

		// Cell editing
		{Key: "enter", Symbol: "confirm", Context: ContextEdit},
		{Key: "backspace", Symbol: "backspace", Context: ContextEdit},

		// Header editing
		{Key: "enter", Symbol: "confirm", Context: ContextHeader},
		{Key: "backspace", Symbol: "backspace", Context: ContextHeader},
	}
}

// RegisterDefaults registers all default bindings with the registry.
// Default bindings are known-good; registration cannot fail.
func RegisterDefaults(r *Registry) {
	for _, b := range DefaultBindings() {
		if err := r.RegisterBinding(b); err != nil {
			panic(err)
		}
	}
}
