package graphics

import "fmt"

// Event is one queued input event. The concrete types are Quit, KeyDown,
// MouseButtonDown, MouseButtonUp and MouseMotion.
type Event interface {
	isEvent()
}

// Quit asks the application to exit.
type Quit struct{}

// KeyDown reports a key press.
type KeyDown struct {
	Key Key
}

// MouseButtonDown reports a button press at canvas coordinates.
type MouseButtonDown struct {
	X, Y int
}

// MouseButtonUp reports a button release.
type MouseButtonUp struct {
	X, Y int
}

// MouseMotion reports the cursor moving to canvas coordinates.
type MouseMotion struct {
	X, Y int
}

func (Quit) isEvent()            {}
func (KeyDown) isEvent()         {}
func (MouseButtonDown) isEvent() {}
func (MouseButtonUp) isEvent()   {}
func (MouseMotion) isEvent()     {}

// Key identifies a keyboard key independently of the window system.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyEnter
	KeyQ
)

var keyNames = map[Key]string{
	KeyUnknown: "unknown",
	KeyEscape:  "escape",
	KeySpace:   "space",
	KeyEnter:   "enter",
	KeyQ:       "q",
}

func (k Key) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// ParseKey returns the key whose String is name.
func ParseKey(name string) (Key, error) {
	for k, s := range keyNames {
		if s == name {
			return k, nil
		}
	}
	return KeyUnknown, fmt.Errorf("unknown key %q", name)
}
