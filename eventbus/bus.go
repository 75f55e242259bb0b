package eventbus

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Handler receives the payload published on a matching channel.
type Handler func(payload any)

type subscription struct {
	id      string
	handler Handler
}

// Bus is an in-process publish/subscribe bus keyed by channel patterns.
//
// Delivery is synchronous and best-effort: there is no buffering, no retry and
// no persistence. Handlers are invoked outside the bus lock, so a handler may
// subscribe or unsubscribe without deadlocking.
//
// Bus is safe for concurrent use by multiple goroutines.
type Bus struct {
	mu       sync.RWMutex
	patterns []string
	subs     map[string][]subscription
	log      *slog.Logger
}

func NewBus(log *slog.Logger) *Bus {
	return &Bus{subs: make(map[string][]subscription), log: log}
}

// Subscribe registers handler on pattern and returns the id needed to unsubscribe.
func (b *Bus) Subscribe(pattern string, handler Handler) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := uuid.NewString()
	if _, ok := b.subs[pattern]; !ok {
		b.patterns = append(b.patterns, pattern)
	}
	b.subs[pattern] = append(b.subs[pattern], subscription{id: id, handler: handler})
	return id
}

// Unsubscribe removes one handler, the pattern disappears with its last handler.
func (b *Bus) Unsubscribe(pattern, id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs, ok := b.subs[pattern]
	if !ok {
		return
	}
	subs = slices.DeleteFunc(subs, func(s subscription) bool { return s.id == id })
	if len(subs) > 0 {
		b.subs[pattern] = subs
		return
	}
	delete(b.subs, pattern)
	b.patterns = slices.DeleteFunc(b.patterns, func(p string) bool { return p == pattern })
}

// Publish delivers payload to every handler whose pattern matches channel,
// patterns in registration order then handlers in registration order.
// It returns the number of handlers invoked.
func (b *Bus) Publish(channel string, payload any) int {
	handlers := b.matching(channel)
	for _, h := range handlers {
		b.deliver(channel, h, payload)
	}
	return len(handlers)
}

// Patterns lists the patterns with at least one handler.
func (b *Bus) Patterns() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.patterns)
}

func (b *Bus) matching(channel string) []Handler {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var handlers []Handler
	for _, pattern := range b.patterns {
		if !Match(pattern, channel) {
			continue
		}
		for _, s := range b.subs[pattern] {
			handlers = append(handlers, s.handler)
		}
	}
	return handlers
}

func (b *Bus) deliver(channel string, handler Handler, payload any) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error(fmt.Sprintf("Handler panicked on channel %s", channel), "panic", r)
		}
	}()
	handler(payload)
}

// Match reports whether a dot separated channel matches pattern.
// "*" matches exactly one segment and a trailing ">" matches one or more segments.
func Match(pattern, channel string) bool {
	if pattern == channel {
		return true
	}
	ps := strings.Split(pattern, ".")
	cs := strings.Split(channel, ".")
	for i, p := range ps {
		if p == ">" && i == len(ps)-1 {
			return len(cs) > i
		}
		if i >= len(cs) {
			return false
		}
		if p != "*" && p != cs[i] {
			return false
		}
	}
	return len(ps) == len(cs)
}
