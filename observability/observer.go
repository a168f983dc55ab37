// Package observability carries search events out of the planner. A search
// never logs directly; it emits Events to an Observer, and the host decides
// whether they end up in slog, in memory or nowhere.
package observability

import (
	"context"
	"log/slog"
	"time"
)

// Level is the event severity.
type Level int

const (
	LevelVerbose Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelVerbose:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARN"
	default:
		return "ERROR"
	}
}

// SlogLevel maps the level to the slog level used when logging the event.
func (l Level) SlogLevel() slog.Level {
	switch l {
	case LevelVerbose:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// EventType names what happened, e.g. "search.start".
type EventType string

// Event is emitted by a search. Source identifies the emitting search.
type Event struct {
	Type      EventType
	Level     Level
	Timestamp time.Time
	Source    string
	Data      map[string]any
}

// Observer receives events. Implementations shared between concurrent
// searches must be safe for concurrent use.
type Observer interface {
	OnEvent(ctx context.Context, event Event)
}
