package services

import (
	"context"
	"sync"

	"github.com/ewilliams-labs/moodwell/internal/core/domain"
	"github.com/ewilliams-labs/moodwell/internal/core/ports"
	"github.com/ewilliams-labs/moodwell/internal/logging"
)

const DefaultInboxSize = 20

var (
	_ ports.Notifier = (*Inbox)(nil)
	_ ports.Notifier = LogNotifier{}
	_ ports.Notifier = MultiNotifier{}
)

// Inbox keeps the most recent notifications for one user until they are
// drained. When full the oldest entry is discarded.
type Inbox struct {
	mu    sync.Mutex
	items []domain.Notification
	size  int
}

func NewInbox(size int) *Inbox {
	if size < 1 {
		size = DefaultInboxSize
	}
	return &Inbox{size: size}
}

func (i *Inbox) Notify(_ context.Context, n domain.Notification) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if len(i.items) == i.size {
		i.items = i.items[1:]
	}
	i.items = append(i.items, n)
}

// Drain returns pending notifications oldest first and empties the inbox.
func (i *Inbox) Drain() []domain.Notification {
	i.mu.Lock()
	defer i.mu.Unlock()
	out := i.items
	if out == nil {
		out = []domain.Notification{}
	}
	i.items = nil
	return out
}

func (i *Inbox) Len() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.items)
}

// LogNotifier writes notifications to the structured log.
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, n domain.Notification) {
	logging.Ctx(ctx).Info().Str("source", string(n.Source)).Str("message", n.Message).Msg("user notification")
}

// MultiNotifier delivers to every non-nil notifier in order.
type MultiNotifier []ports.Notifier

func (m MultiNotifier) Notify(ctx context.Context, n domain.Notification) {
	for _, target := range m {
		if target != nil {
			target.Notify(ctx, n)
		}
	}
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, domain.Notification) {}
