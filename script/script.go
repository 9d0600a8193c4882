// Package script replays input events from a TOML file, frame by frame.
//
// A script looks like:
//
//	[[event]]
//	frame = 10
//	type = "press"
//	x = 100
//	y = 50
//
//	[[event]]
//	frame = 11
//	type = "move"
//	x = 400
//	y = 400
//
// Types are press, release, move, key (with key = "escape") and quit.
package script

import (
	"fmt"
	"os"
	"slices"

	"github.com/pelletier/go-toml/v2"
	"github.com/richinsley/gobezier/graphics"
)

// Entry is one scripted event.
type Entry struct {
	Frame int    `toml:"frame"`
	Type  string `toml:"type"`
	X     int    `toml:"x"`
	Y     int    `toml:"y"`
	Key   string `toml:"key"`
}

type document struct {
	Events []Entry `toml:"event"`
}

// Event converts e to a graphics.Event.
func (e Entry) Event() (graphics.Event, error) {
	switch e.Type {
	case "press":
		return graphics.MouseButtonDown{X: e.X, Y: e.Y}, nil
	case "release":
		return graphics.MouseButtonUp{X: e.X, Y: e.Y}, nil
	case "move":
		return graphics.MouseMotion{X: e.X, Y: e.Y}, nil
	case "key":
		k, err := graphics.ParseKey(e.Key)
		if err != nil {
			return nil, err
		}
		return graphics.KeyDown{Key: k}, nil
	case "quit":
		return graphics.Quit{}, nil
	default:
		return nil, fmt.Errorf("unknown event type %q", e.Type)
	}
}

type timed struct {
	frame int
	ev    graphics.Event
}

// Source hands out the scripted events due at each frame. Frames are counted
// by calls to PollEvents, starting at 0.
type Source struct {
	events []timed
	frame  int
	next   int
}

// Parse decodes a script.
func Parse(data []byte) (*Source, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	return FromEntries(doc.Events)
}

// Load reads and decodes the script at path.
func Load(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// FromEntries builds a source from entries in any order. Entries sharing a
// frame keep their relative order.
func FromEntries(entries []Entry) (*Source, error) {
	s := &Source{events: make([]timed, 0, len(entries))}
	for i, e := range entries {
		if e.Frame < 0 {
			return nil, fmt.Errorf("event %d: negative frame %d", i, e.Frame)
		}
		ev, err := e.Event()
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		s.events = append(s.events, timed{frame: e.Frame, ev: ev})
	}
	slices.SortStableFunc(s.events, func(a, b timed) int { return a.frame - b.frame })
	return s, nil
}

// PollEvents returns the events scheduled for the current frame and advances
// to the next one.
func (s *Source) PollEvents() []graphics.Event {
	var out []graphics.Event
	for s.next < len(s.events) && s.events[s.next].frame <= s.frame {
		out = append(out, s.events[s.next].ev)
		s.next++
	}
	s.frame++
	return out
}

// Done reports whether every event has been delivered.
func (s *Source) Done() bool {
	return s.next >= len(s.events)
}

// Len returns the number of scripted events.
func (s *Source) Len() int {
	return len(s.events)
}
