package input

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, Escape), always active
	SpecialKeys map[tcell.Key]Intent

	// Rune bindings
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default bindings: q quit, u rotate, a/d left/right,
// s soft drop
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
		},
		Runes: map[rune]Intent{
			'q': IntentQuit,
			'u': IntentRotate,
			'a': IntentLeft,
			'd': IntentRight,
			's': IntentDown,
		},
	}
}

// Bind assigns key to intent, replacing any previous binding of that intent
// key must be a single character
func (kt *KeyTable) Bind(key string, intent Intent) error {
	r, size := utf8.DecodeRuneInString(key)
	if r == utf8.RuneError || size != len(key) {
		return fmt.Errorf("key %q: expected a single character", key)
	}
	for k, v := range kt.Runes {
		if v == intent {
			delete(kt.Runes, k)
		}
	}
	kt.Runes[r] = intent
	return nil
}

// Unbind removes every rune binding of intent
func (kt *KeyTable) Unbind(intent Intent) {
	for k, v := range kt.Runes {
		if v == intent {
			delete(kt.Runes, k)
		}
	}
}

// Lookup returns the intent for a key event, IntentNone if unbound
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Intent {
	if ev == nil {
		return IntentNone
	}
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
