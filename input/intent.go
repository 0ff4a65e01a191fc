package input

// Intent is a game command produced by a key press
type Intent uint8

const (
	IntentNone Intent = iota
	IntentQuit
	IntentRotate
	IntentLeft
	IntentRight
	IntentDown
)

var intentNames = [...]string{
	IntentNone:   "none",
	IntentQuit:   "quit",
	IntentRotate: "rotate",
	IntentLeft:   "left",
	IntentRight:  "right",
	IntentDown:   "down",
}

func (i Intent) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}

// ParseIntent resolves an action name as written in a config keys block
func ParseIntent(name string) (Intent, bool) {
	for i, n := range intentNames {
		if n == name && Intent(i) != IntentNone {
			return Intent(i), true
		}
	}
	return IntentNone, false
}
