// Package status fans out save-state and connectivity events to UI subscribers.
package status

import (
	"sync"
	"time"

	"github.com/pressmill/console/internal/model"
)

type EventKind string

const (
	KindSave         EventKind = "save"
	KindConnectivity EventKind = "connectivity"
)

// Event is a point-in-time notification. Save events carry DraftID,
// Saving and LastSaved; connectivity events carry Online and LastChecked.
type Event struct {
	Kind EventKind

	DraftID   model.DraftID
	Saving    bool
	LastSaved time.Time

	Online      bool
	LastChecked time.Time
}

type Client struct {
	Events chan Event

	// DraftID filters save events to one draft. Empty receives everything.
	DraftID model.DraftID
}

type Broadcaster struct {
	clients map[*Client]bool
	mu      sync.RWMutex
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		clients: make(map[*Client]bool),
	}
}

func (b *Broadcaster) Add(client *Client) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clients[client] = true
}

func (b *Broadcaster) Delete(client *Client) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.clients, client)
	close(client.Events)
}

func (b *Broadcaster) Broadcast(event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for client := range b.clients {
		if client.DraftID != "" && event.Kind == KindSave && event.DraftID != client.DraftID {
			continue
		}
		// Slow subscribers drop events instead of blocking the publisher.
		select {
		case client.Events <- event:
		default:
		}
	}
}
