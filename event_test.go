package fshidden

import (
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	path := "/test/path"
	event := NewEvent(Create, path, time.Now())

	require.Equal(t, Create, event.Type)
	require.Equal(t, path, event.Path)
	require.NotNil(t, event.Properties)
}

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		eventType EventType
		expected  string
	}{
		{Create, "Create"},
		{Modify, "Modify"},
		{Rename, "Rename"},
		{Remove, "Remove"},
		{Chmod, "Chmod"},
		{EventType(42), "Unknown"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, tt.eventType.String())
	}
}

func TestEventSignature(t *testing.T) {
	event := NewEvent(Create, "/test/path", time.Now())
	require.Equal(t, "0-/test/path", event.Signature())
}

func TestEventTypeFromOp(t *testing.T) {
	tests := []struct {
		op       fsnotify.Op
		expected EventType
	}{
		{fsnotify.Create, Create},
		{fsnotify.Create | fsnotify.Write, Create},
		{fsnotify.Write, Modify},
		{fsnotify.Rename, Rename},
		{fsnotify.Remove, Remove},
		{fsnotify.Chmod, Chmod},
	}
	for _, tt := range tests {
		actual, ok := eventTypeFromOp(tt.op)
		require.True(t, ok, "op %v", tt.op)
		require.Equal(t, tt.expected, actual, "op %v", tt.op)
	}

	_, ok := eventTypeFromOp(0)
	require.False(t, ok)
}
