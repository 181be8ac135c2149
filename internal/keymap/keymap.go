// Package keymap maps raw key strings (as reported by Bubble Tea) to the
// editor's logical symbols. Bindings are context-sensitive: the navigate
// context carries the vim-style command set, while the edit contexts only
// bind confirm and backspace and let every printable key fall through as
// character input.
package keymap

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/marcus/csved/internal/editor"
)

// Contexts the registry distinguishes.
const (
	ContextNavigate = "navigate"
	ContextEdit     = "edit"
	ContextHeader   = "header"
)

// Binding ties one key string to a symbol name within a context.
type Binding struct {
	Key     string
	Symbol  string
	Context string
}

// Registry resolves key strings to symbols, with user overrides applied
// over the defaults.
type Registry struct {
	bindings map[string]map[string]editor.SymbolKind // context -> key -> kind
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{bindings: make(map[string]map[string]editor.SymbolKind)}
}

// RegisterBinding installs a binding, replacing any existing one for the
// same key and context. Unknown symbol names are rejected so a typo in a
// config override fails loudly instead of silently dropping a key.
func (r *Registry) RegisterBinding(b Binding) error {
	kind, ok := editor.KindByName(b.Symbol)
	if !ok {
		return fmt.Errorf("keymap: unknown symbol %q for key %q", b.Symbol, b.Key)
	}
	ctx := r.bindings[b.Context]
	if ctx == nil {
		ctx = make(map[string]editor.SymbolKind)
		r.bindings[b.Context] = ctx
	}
	ctx[b.Key] = kind
	return nil
}

// SetUserOverride rebinds key to the named symbol in the navigate context.
func (r *Registry) SetUserOverride(key, symbol string) error {
	return r.RegisterBinding(Binding{Key: key, Symbol: symbol, Context: ContextNavigate})
}

// Resolve maps a key string to a symbol for the given context. In the
// edit contexts, unbound single printable runes become character input.
// Anything else resolves to SymbolNone, an explicit no-op.
func (r *Registry) Resolve(key, context string) editor.Symbol {
	if ctx := r.bindings[context]; ctx != nil {
		if kind, ok := ctx[key]; ok {
			return editor.Symbol{Kind: kind}
		}
	}
	if context == ContextEdit || context == ContextHeader {
		if ch, size := utf8.DecodeRuneInString(key); size == len(key) && unicode.IsPrint(ch) {
			return editor.Input(ch)
		}
	}
	return editor.Symbol{Kind: editor.SymbolNone}
}
