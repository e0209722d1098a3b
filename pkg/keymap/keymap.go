// Package keymap holds the table that maps key presses to editing actions.
// A Keymap is built once and only read afterwards, so a single instance can
// be shared by every line read in the process.
package keymap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kcaldas/lineedit/pkg/terminal"
)

// Action names an editing operation
type Action string

const (
	ActionBackspace   Action = "backspace"
	ActionDelete      Action = "delete"
	ActionLeft        Action = "left"
	ActionRight       Action = "right"
	ActionHome        Action = "home"
	ActionEnd         Action = "end"
	ActionClear       Action = "clear"
	ActionHistoryPrev Action = "history-prev"
	ActionHistoryNext Action = "history-next"
	ActionSubmit      Action = "submit"
	ActionNoop        Action = "noop"
	ActionWordLeft    Action = "word-left"
	ActionWordRight   Action = "word-right"
	ActionKillToEnd   Action = "kill-to-end"
	ActionKillWord    Action = "kill-word"
	ActionPaste       Action = "paste"

	// ActionUnbind removes a binding when used in overrides
	ActionUnbind Action = "none"
)

var knownActions = map[Action]bool{
	ActionBackspace:   true,
	ActionDelete:      true,
	ActionLeft:        true,
	ActionRight:       true,
	ActionHome:        true,
	ActionEnd:         true,
	ActionClear:       true,
	ActionHistoryPrev: true,
	ActionHistoryNext: true,
	ActionSubmit:      true,
	ActionNoop:        true,
	ActionWordLeft:    true,
	ActionWordRight:   true,
	ActionKillToEnd:   true,
	ActionKillWord:    true,
	ActionPaste:       true,
}

// defaultBindings is the stock table, in key-name notation
var defaultBindings = []struct {
	key    string
	action Action
}{
	{"backspace", ActionBackspace},
	{"delete", ActionDelete},
	{"left", ActionLeft},
	{"right", ActionRight},
	{"home", ActionHome},
	{"end", ActionEnd},
	{"escape", ActionClear},
	{"up", ActionHistoryPrev},
	{"down", ActionHistoryNext},
	{"enter", ActionSubmit},
	{"tab", ActionNoop},

	// readline chords
	{"ctrl+a", ActionHome},
	{"ctrl+e", ActionEnd},
	{"ctrl+b", ActionLeft},
	{"ctrl+f", ActionRight},
	{"ctrl+p", ActionHistoryPrev},
	{"ctrl+n", ActionHistoryNext},
	{"ctrl+u", ActionClear},
	{"ctrl+k", ActionKillToEnd},
	{"ctrl+w", ActionKillWord},
	{"ctrl+v", ActionPaste},
	{"ctrl+left", ActionWordLeft},
	{"ctrl+right", ActionWordRight},
	{"alt+b", ActionWordLeft},
	{"alt+f", ActionWordRight},
	{"alt+backspace", ActionKillWord},
}

// Keymap maps key events to actions. Modifiers must match exactly: Ctrl+Left
// is not Left.
type Keymap struct {
	bindings map[terminal.KeyEvent]Action
}

// Default returns the stock keymap
func Default() *Keymap {
	k, err := New(nil)
	if err != nil {
		// The stock table is static; failing to parse it is a programming error.
		panic(err)
	}
	return k
}

// New builds a keymap from the stock table plus overrides, a map of key
// name (see terminal.ParseKey) to action name. Binding a key to "none"
// removes it.
func New(overrides map[string]string) (*Keymap, error) {
	k := &Keymap{bindings: make(map[terminal.KeyEvent]Action, len(defaultBindings)+len(overrides))}

	for _, b := range defaultBindings {
		ev, err := terminal.ParseKey(b.key)
		if err != nil {
			return nil, err
		}
		k.bindings[ev] = b.action
	}

	// Apply overrides in a stable order so errors are deterministic.
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ev, err := terminal.ParseKey(name)
		if err != nil {
			return nil, fmt.Errorf("invalid binding: %w", err)
		}
		action := Action(strings.ToLower(strings.TrimSpace(overrides[name])))
		if action == ActionUnbind {
			delete(k.bindings, ev)
			continue
		}
		if !knownActions[action] {
			return nil, fmt.Errorf("invalid binding for %s: unknown action %q", name, overrides[name])
		}
		k.bindings[ev] = action
	}
	return k, nil
}

// Lookup returns the action bound to ev
func (k *Keymap) Lookup(ev terminal.KeyEvent) (Action, bool) {
	if ev.Key != terminal.KeyRune {
		ev.Rune = 0
	}
	action, ok := k.bindings[ev]
	return action, ok
}

// Binding is one row of a keymap listing
type Binding struct {
	Key    string
	Action Action
}

// Bindings lists every binding sorted by action and then key name
func (k *Keymap) Bindings() []Binding {
	list := make([]Binding, 0, len(k.bindings))
	for ev, action := range k.bindings {
		list = append(list, Binding{Key: ev.String(), Action: action})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Action != list[j].Action {
			return list[i].Action < list[j].Action
		}
		return list[i].Key < list[j].Key
	})
	return list
}
