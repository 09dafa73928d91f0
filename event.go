package fshidden

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
)

type EventType int

const (
	Create EventType = iota
	Modify
	Rename
	Remove
	Chmod
)

func (t EventType) String() string {
	switch t {
	case Create:
		return "Create"
	case Modify:
		return "Modify"
	case Rename:
		return "Rename"
	case Remove:
		return "Remove"
	case Chmod:
		return "Chmod"
	default:
		return "Unknown"
	}
}

// Event is a filesystem change on a path that passed the Matcher.
type Event struct {
	Type       EventType
	Path       string
	Timestamp  time.Time
	Properties map[string]string
}

func NewEvent(op EventType, path string, timestamp time.Time) *Event {
	return &Event{
		Type:       op,
		Path:       path,
		Timestamp:  timestamp,
		Properties: make(map[string]string),
	}
}

func (e *Event) Signature() string {
	return fmt.Sprintf("%d-%s", e.Type, e.Path)
}

// eventTypeFromOp maps an fsnotify.Op to an EventType. ok is false for ops
// with no counterpart.
func eventTypeFromOp(op fsnotify.Op) (t EventType, ok bool) {
	switch {
	case op.Has(fsnotify.Create):
		return Create, true
	case op.Has(fsnotify.Write):
		return Modify, true
	case op.Has(fsnotify.Rename):
		return Rename, true
	case op.Has(fsnotify.Remove):
		return Remove, true
	case op.Has(fsnotify.Chmod):
		return Chmod, true
	default:
		return 0, false
	}
}
