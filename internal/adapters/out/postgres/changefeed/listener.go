// Package changefeed turns Postgres NOTIFY events into an in-process fan-out
// stream. The unit of work emits a pg_notify per changed order at commit time;
// this package listens on that channel and distributes the decoded payloads to
// subscribers.
package changefeed

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"laundromart/internal/core/ports"

	"github.com/lib/pq"
)

const (
	minReconnectInterval = 10 * time.Second
	maxReconnectInterval = time.Minute

	// subscriberBuffer bounds each subscriber channel. A subscriber that falls
	// behind loses events; re-fetching is the documented recovery path.
	subscriberBuffer = 16
)

// PqChangeFeed implements ports.ChangeStream on top of lib/pq's LISTEN support.
type PqChangeFeed struct {
	listener *pq.Listener
	logger   *slog.Logger

	mu          sync.Mutex
	subscribers map[int]chan ports.OrderChange
	nextID      int
	closed      bool
}

// NewPqChangeFeed opens a LISTEN connection on the given channel and starts
// distributing notifications. Call Close to release the connection.
func NewPqChangeFeed(dsn, channel string, logger *slog.Logger) (*PqChangeFeed, error) {
	listener := pq.NewListener(dsn, minReconnectInterval, maxReconnectInterval,
		func(event pq.ListenerEventType, err error) {
			if err != nil {
				logger.Error("change feed connection event", "event", event, "error", err)
			}
		})

	if err := listener.Listen(channel); err != nil {
		_ = listener.Close()
		return nil, err
	}

	feed := &PqChangeFeed{
		listener:    listener,
		logger:      logger,
		subscribers: make(map[int]chan ports.OrderChange),
	}

	go feed.run()
	return feed, nil
}

// Subscribe registers a consumer. The returned cancel function releases the
// subscription and closes the channel.
func (f *PqChangeFeed) Subscribe() (<-chan ports.OrderChange, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ch := make(chan ports.OrderChange, subscriberBuffer)
	if f.closed {
		close(ch)
		return ch, func() {}
	}

	id := f.nextID
	f.nextID++
	f.subscribers[id] = ch

	cancel := func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if sub, ok := f.subscribers[id]; ok {
			delete(f.subscribers, id)
			close(sub)
		}
	}

	return ch, cancel
}

// Close stops the feed, closes all subscriber channels and releases the
// database connection.
func (f *PqChangeFeed) Close() error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil
	}
	f.closed = true
	for id, ch := range f.subscribers {
		delete(f.subscribers, id)
		close(ch)
	}
	f.mu.Unlock()

	return f.listener.Close()
}

func (f *PqChangeFeed) run() {
	for notification := range f.listener.Notify {
		// A nil notification signals a reconnect; events may have been lost
		// while the connection was down.
		if notification == nil {
			f.logger.Warn("change feed reconnected, events may have been missed")
			continue
		}

		var change ports.OrderChange
		if err := json.Unmarshal([]byte(notification.Extra), &change); err != nil {
			f.logger.Error("change feed payload is not valid JSON",
				"payload", notification.Extra, "error", err)
			continue
		}

		f.broadcast(change)
	}
}

func (f *PqChangeFeed) broadcast(change ports.OrderChange) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, ch := range f.subscribers {
		select {
		case ch <- change:
		default:
			// Subscriber is not keeping up; drop rather than block delivery
			// to everyone else.
		}
	}
}
