package notify

import (
	"context"
	"encoding/json"
	"log"

	"machinery-rental-admin-api/internal/socket"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Watcher is the single process-wide live subscription on adminNotifications.
// Every insert or update re-delivers the full unread set: the watcher
// recomputes all derived counts from scratch and broadcasts them to every
// connected dashboard client. It must be stopped via its context or the
// change stream leaks and keeps firing recomputation.
type Watcher struct {
	Bookkeeper *Bookkeeper
	Hub        *socket.Hub
}

type countsEvent struct {
	Type   string       `json:"type"`
	Counts UnreadCounts `json:"counts"`
}

// Run blocks until ctx is cancelled or the change stream fails. An initial
// snapshot is pushed before the first event so freshly restarted servers do
// not show zero badges until something changes.
func (w *Watcher) Run(ctx context.Context) error {
	w.publish(ctx)

	stream, err := w.Bookkeeper.DB.Collection("adminNotifications").Watch(ctx,
		mongo.Pipeline{},
		options.ChangeStream().SetFullDocument(options.UpdateLookup),
	)
	if err != nil {
		return err
	}
	defer stream.Close(ctx)

	for stream.Next(ctx) {
		// The event payload is ignored on purpose: counts are always
		// recomputed from the full current unread set, never patched
		// from deltas.
		w.publish(ctx)
	}

	return stream.Err()
}

// PushSnapshot delivers the current counts to a single client. Called right
// after a dashboard connection registers, so its badges are correct before the
// next change event fires.
func (w *Watcher) PushSnapshot(ctx context.Context, userID string) error {
	payload, err := w.payload(ctx)
	if err != nil {
		return err
	}
	return w.Hub.Send(userID, payload)
}

func (w *Watcher) publish(ctx context.Context) {
	payload, err := w.payload(ctx)
	if err != nil {
		log.Printf("Failed to recompute unread counts: %v", err)
		return
	}
	w.Hub.Broadcast(payload)
}

func (w *Watcher) payload(ctx context.Context) ([]byte, error) {
	counts, err := w.Bookkeeper.UnreadCounts(ctx)
	if err != nil {
		return nil, err
	}
	return json.Marshal(countsEvent{Type: "unread_counts", Counts: counts})
}
