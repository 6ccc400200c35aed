// Package notify carries fire-and-forget shopper-facing messages
// (toasts) out of the services. Nothing in here is consulted on the
// way back; failures to notify never fail the operation.
package notify

import (
	"context"
	"log/slog"
	"sync"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

type Notifier interface {
	Notify(ctx context.Context, kind Kind, message string)
}

// SlogNotifier logs messages instead of showing them; the default
// server-side stand-in for the UI toast channel.
type SlogNotifier struct {
	L *slog.Logger
}

func (n *SlogNotifier) Notify(ctx context.Context, kind Kind, message string) {
	if n.L == nil {
		return
	}
	n.L.LogAttrs(ctx, slog.LevelInfo, "notify",
		slog.String("kind", string(kind)),
		slog.String("message", message),
	)
}

type Noop struct{}

func (Noop) Notify(context.Context, Kind, string) {}

// Recorder collects notifications for assertions in tests.
type Recorder struct {
	mu     sync.Mutex
	Events []Event
}

type Event struct {
	Kind    Kind
	Message string
}

func (r *Recorder) Notify(_ context.Context, kind Kind, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, Event{Kind: kind, Message: message})
}
