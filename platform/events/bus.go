package events

import (
	"context"
	"errors"
	"sync"
	"time"

	"refuge_backend/platform/logger"
)

// handlerTimeout bounds asynchronous handler execution so a stuck handler
// cannot leak goroutines forever.
const handlerTimeout = 30 * time.Second

// InMemoryBus is a process-local Bus implementation. Asynchronous publishes
// run each handler in its own goroutine detached from the request context.
type InMemoryBus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	log      *logger.Logger
}

// NewInMemoryBus creates a new in-memory event bus.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return &InMemoryBus{
		handlers: make(map[string][]Handler),
		log:      log,
	}
}

// Subscribe registers a handler for the given event name.
func (b *InMemoryBus) Subscribe(eventName string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventName] = append(b.handlers[eventName], handler)
}

// Publish dispatches the event to all handlers asynchronously. Handler errors
// are logged, never propagated: post-commit notifications are best effort.
func (b *InMemoryBus) Publish(_ context.Context, event Event) {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.EventName()]...)
	b.mu.RUnlock()

	for _, h := range handlers {
		handler := h
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
			defer cancel()

			defer func() {
				if r := recover(); r != nil && b.log != nil {
					b.log.Error("event handler panicked", "event", event.EventName(), "panic", r)
				}
			}()

			if err := handler.Handle(ctx, event); err != nil && b.log != nil {
				b.log.Error("event handler failed", "event", event.EventName(), "error", err)
			}
		}()
	}
}

// PublishSync dispatches the event to all handlers sequentially and returns
// the joined errors, if any.
func (b *InMemoryBus) PublishSync(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.EventName()]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler.Handle(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

var _ Bus = (*InMemoryBus)(nil)
