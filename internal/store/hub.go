package store

import (
	"context"
	"slices"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/marcus/catatan/internal/note"
)

// hub fans collection snapshots out to live-query subscribers.
// Every subscriber has a one-slot mailbox: a new snapshot replaces an unread
// one, so publishing never blocks on a slow reader.
type hub struct {
	mu      sync.Mutex
	subs    map[*subscriber]struct{}
	last    []note.Note
	lastSum uint64
	hasLast bool
	closed  bool
	done    chan struct{}
}

type subscriber struct {
	ch chan []note.Note
}

func newHub() *hub {
	return &hub{
		subs: make(map[*subscriber]struct{}),
		done: make(chan struct{}),
	}
}

// subscribe registers a subscriber that first receives the current snapshot.
func (h *hub) subscribe(ctx context.Context) <-chan []note.Note {
	s := &subscriber{ch: make(chan []note.Note, 1)}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(s.ch)
		return s.ch
	}
	if h.hasLast {
		s.ch <- slices.Clone(h.last)
	}
	h.subs[s] = struct{}{}
	h.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			h.unsubscribe(s)
		case <-h.done:
		}
	}()
	return s.ch
}

func (h *hub) unsubscribe(s *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[s]; !ok {
		return
	}
	delete(h.subs, s)
	close(s.ch)
}

// publish delivers notes to every subscriber unless it is identical to the
// previous snapshot. Reports whether anything was emitted.
func (h *hub) publish(notes []note.Note) bool {
	sum := fingerprint(notes)

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed || (h.hasLast && sum == h.lastSum) {
		return false
	}
	h.last = notes
	h.lastSum = sum
	h.hasLast = true

	for s := range h.subs {
		// Only publish sends, and it holds mu, so after the drain the
		// send cannot block.
		select {
		case <-s.ch:
		default:
		}
		s.ch <- slices.Clone(notes)
	}
	return true
}

// close ends every subscription. Later subscriptions get a closed channel.
func (h *hub) close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	close(h.done)
	for s := range h.subs {
		close(s.ch)
	}
	h.subs = nil
}

// fingerprint hashes every field of every note in order.
func fingerprint(notes []note.Note) uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 64)
	for _, n := range notes {
		buf = buf[:0]
		buf = strconv.AppendInt(buf, n.ID, 10)
		buf = append(buf, 0)
		buf = strconv.AppendInt(buf, n.CreatedAt.UnixMilli(), 10)
		buf = append(buf, 0)
		buf = strconv.AppendInt(buf, n.UpdatedAt.UnixMilli(), 10)
		buf = append(buf, 0)
		_, _ = d.Write(buf)
		_, _ = d.WriteString(strconv.Itoa(len(n.Title)) + ":")
		_, _ = d.WriteString(n.Title)
		_, _ = d.WriteString(strconv.Itoa(len(n.Content)) + ":")
		_, _ = d.WriteString(n.Content)
		_, _ = d.Write([]byte{0xff})
	}
	return d.Sum64()
}
