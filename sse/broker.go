// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sse

import (
	"context"
	"log/slog"
	"time"
)

const patience = time.Second

// VoteEvent is published after a vote has been stored.
type VoteEvent struct {
	PollID   int64 `json:"poll_id"`
	OptionID int64 `json:"option_id"`
}

type client struct {
	pollID int64
	events chan VoteEvent
}

// Broker fans vote events out to the clients watching the voted poll.
// All client bookkeeping happens on the Listen goroutine.
type Broker struct {
	notifier       chan VoteEvent
	newClients     chan *client
	closingClients chan *client
	clients        map[*client]struct{}
	done           chan struct{}
}

func NewBroker() *Broker {
	return &Broker{
		notifier:       make(chan VoteEvent, 16),
		newClients:     make(chan *client),
		closingClients: make(chan *client),
		clients:        make(map[*client]struct{}),
		done:           make(chan struct{}),
	}
}

// Publish queues an event without blocking the caller; when the queue is
// full the event is dropped.
func (b *Broker) Publish(e VoteEvent) {
	select {
	case b.notifier <- e:
	default:
		slog.Warn("vote event dropped", "poll_id", e.PollID)
	}
}

// Subscribe registers a client for one poll. The returned cancel function
// must be called when the client goes away.
func (b *Broker) Subscribe(ctx context.Context, pollID int64) (<-chan VoteEvent, func()) {
	c := &client{pollID: pollID, events: make(chan VoteEvent)}
	select {
	case b.newClients <- c:
	case <-ctx.Done():
		return nil, func() {}
	case <-b.done:
		return nil, func() {}
	}
	return c.events, func() {
		select {
		case b.closingClients <- c:
		case <-b.done:
		}
	}
}

// Listen runs the broker until ctx is done. It must be started once before
// clients subscribe. On exit every client's event channel is closed.
func (b *Broker) Listen(ctx context.Context) {
	defer close(b.done)
	for {
		select {
		case <-ctx.Done():
			for c := range b.clients {
				close(c.events)
			}
			return
		case c := <-b.newClients:
			b.clients[c] = struct{}{}
			slog.Debug("stream client added", "poll_id", c.pollID, "clients", len(b.clients))
		case c := <-b.closingClients:
			delete(b.clients, c)
			slog.Debug("stream client removed", "poll_id", c.pollID, "clients", len(b.clients))
		case e := <-b.notifier:
			for c := range b.clients {
				if c.pollID != e.PollID {
					continue
				}
				select {
				case c.events <- e:
				case <-time.After(patience):
					slog.Debug("skipping slow stream client", "poll_id", c.pollID)
				}
			}
		}
	}
}
