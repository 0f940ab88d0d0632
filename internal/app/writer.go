package app

import (
	"context"
	gosync "sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/kitchen-tracker/internal/store"
)

// writeJob is one change to apply to the store.
type writeJob struct {
	what string
	fn   func(ctx context.Context, s store.Store) error
}

// writer applies store changes on a single goroutine in the order they were
// enqueued. Enqueue happens inside Update, so the store sees changes in the
// same order as the in-memory trackers.
type writer struct {
	store    store.Store
	mu       gosync.Mutex
	queue    []writeJob
	closed   bool
	wakeCh   chan struct{}
	resultCh chan persistResultMsg
	stopCh   chan struct{}
	doneCh   chan struct{}
}

func newWriter(s store.Store) *writer {
	w := &writer{
		store:    s,
		wakeCh:   make(chan struct{}, 1),
		resultCh: make(chan persistResultMsg),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	go w.run()
	return w
}

// enqueue queues job and returns a command that waits for one result.
func (w *writer) enqueue(job writeJob) tea.Cmd {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.queue = append(w.queue, job)
	w.mu.Unlock()

	select {
	case w.wakeCh <- struct{}{}:
	default:
	}
	return w.waitForResult()
}

func (w *writer) waitForResult() tea.Cmd {
	return func() tea.Msg {
		select {
		case res := <-w.resultCh:
			return res
		case <-w.doneCh:
			return nil
		}
	}
}

func (w *writer) run() {
	defer close(w.doneCh)
	for {
		w.mu.Lock()
		if len(w.queue) == 0 {
			closed := w.closed
			w.mu.Unlock()
			if closed {
				return
			}
			<-w.wakeCh
			continue
		}
		job := w.queue[0]
		w.queue = w.queue[1:]
		w.mu.Unlock()

		res := persistResultMsg{what: job.what, err: job.fn(context.Background(), w.store)}
		select {
		case w.resultCh <- res:
		case <-w.stopCh:
		}
	}
}

// Close writes whatever is still queued and stops the goroutine. Results
// nobody is waiting for any more are dropped.
func (w *writer) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	w.mu.Unlock()

	close(w.stopCh)
	select {
	case w.wakeCh <- struct{}{}:
	default:
	}
	<-w.doneCh
}
