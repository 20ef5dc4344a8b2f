package external

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"agri-auction/utils"
)

// LogNotifier writes events to the structured log
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, event Event) error {
	fields := map[string]any{
		"event":      event.Type,
		"auction_id": event.AuctionID,
		"user_id":    event.UserID,
	}
	if event.Amount != nil {
		fields["amount"] = event.Amount.String()
	}
	utils.Info("notification: "+event.Message, fields)
	return nil
}

// WebhookNotifier POSTs events as JSON to a fixed URL
type WebhookNotifier struct {
	URL  string
	HTTP *http.Client
}

func (n WebhookNotifier) Notify(ctx context.Context, event Event) error {
	b, err := json.Marshal(event)
	if err != nil {
		return err
	}
	client := n.HTTP
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.URL, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &httpError{StatusCode: resp.StatusCode}
	}
	return nil
}

type httpError struct {
	StatusCode int
}

func (e *httpError) Error() string {
	return "webhook http status " + http.StatusText(e.StatusCode)
}

// AsyncNotifier queues events and delivers them on a background worker.
// Notify never blocks; when the queue is full the event is dropped.
type AsyncNotifier struct {
	next  Notifier
	queue chan Event
	wg    sync.WaitGroup
	once  sync.Once
}

// NewAsyncNotifier starts a worker delivering to next
func NewAsyncNotifier(next Notifier, size int) *AsyncNotifier {
	if size <= 0 {
		size = 256
	}
	n := &AsyncNotifier{next: next, queue: make(chan Event, size)}
	n.wg.Add(1)
	go n.run()
	return n
}

func (n *AsyncNotifier) run() {
	defer n.wg.Done()
	for event := range n.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := n.next.Notify(ctx, event); err != nil {
			utils.Warn("notification delivery failed", map[string]any{
				"event":      event.Type,
				"auction_id": event.AuctionID,
				"user_id":    event.UserID,
				"error":      err.Error(),
			})
		}
		cancel()
	}
}

func (n *AsyncNotifier) Notify(ctx context.Context, event Event) error {
	select {
	case n.queue <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close drains the queue and stops the worker
func (n *AsyncNotifier) Close() {
	n.once.Do(func() { close(n.queue) })
	n.wg.Wait()
}

// RecordingNotifier keeps every event in memory
type RecordingNotifier struct {
	mu     sync.Mutex
	events []Event
}

func (r *RecordingNotifier) Notify(ctx context.Context, event Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

// Events returns a copy of what was recorded
func (r *RecordingNotifier) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}
