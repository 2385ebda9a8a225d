// Package notify owns the notification collections: fan-out on admin actions,
// the unread/read bookkeeping, and the single process-wide change-stream
// subscription that pushes recomputed unread counts to dashboard clients.
package notify

import (
	"context"
	"sync"
	"time"

	"machinery-rental-admin-api/internal/chatid"
	"machinery-rental-admin-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	StatusUnread = "unread"
	StatusRead   = "read"

	TypeNewMessage = "new_message"
)

// Bookkeeper computes unread state over the adminNotifications collection.
// Every count is recomputed from the full current unread set; nothing here
// assumes incremental deltas.
type Bookkeeper struct {
	DB *mongo.Database
}

// UnreadCounts is the derived unread state for the dashboard: the two chat
// tabs plus per-conversation badges.
type UnreadCounts struct {
	GeneralSupport     int            `json:"generalSupport"`
	MachineryInquiries int            `json:"machineryInquiries"`
	Total              int            `json:"total"`
	PerChat            map[string]int `json:"perChat"`
}

// chatReadFilter selects the unread new_message notifications of one
// conversation, or of every conversation when chatID is empty. Scoping to
// unread is what makes marking idempotent: a second pass matches nothing.
func chatReadFilter(chatID string) bson.M {
	filter := bson.M{
		"type":   TypeNewMessage,
		"status": StatusUnread,
	}
	if chatID != "" {
		filter["chatId"] = chatID
	}
	return filter
}

// tally folds an unread new_message set into the dashboard counts. A
// notification belongs to the machinery tab when it carries a listing snapshot
// or a machinery_ chat id; everything else is general support.
func tally(notifications []models.AdminNotification) UnreadCounts {
	counts := UnreadCounts{PerChat: make(map[string]int)}
	for _, n := range notifications {
		counts.Total++
		if n.MachineryDetails != nil || chatid.IsMachinery(n.ChatID) {
			counts.MachineryInquiries++
		} else {
			counts.GeneralSupport++
		}
		if n.ChatID != "" {
			counts.PerChat[n.ChatID]++
		}
	}
	return counts
}

// UnreadCounts reads the full unread new_message set and classifies it by
// conversation class.
func (b *Bookkeeper) UnreadCounts(ctx context.Context) (UnreadCounts, error) {
	cursor, err := b.DB.Collection("adminNotifications").Find(ctx, chatReadFilter(""))
	if err != nil {
		return UnreadCounts{PerChat: make(map[string]int)}, err
	}
	defer cursor.Close(ctx)

	var notifications []models.AdminNotification
	if err = cursor.All(ctx, &notifications); err != nil {
		return UnreadCounts{PerChat: make(map[string]int)}, err
	}

	return tally(notifications), nil
}

// CountUnread returns the unread new_message count for one conversation.
func (b *Bookkeeper) CountUnread(ctx context.Context, chatID string) (int, error) {
	n, err := b.DB.Collection("adminNotifications").CountDocuments(ctx, chatReadFilter(chatID))
	return int(n), err
}

// MarkChatRead transitions every unread new_message notification for the
// given chat to read. Pass an empty chatID to mark the whole message class.
func (b *Bookkeeper) MarkChatRead(ctx context.Context, chatID string) error {
	return b.markRead(ctx, chatReadFilter(chatID))
}

// MarkAllRead marks every unread admin notification read, message
// notifications and the rest of the feed alike.
func (b *Bookkeeper) MarkAllRead(ctx context.Context) error {
	return b.markRead(ctx, bson.M{"status": StatusUnread})
}

// markRead transitions every notification matching filter to read.
//
// The per-document updates are issued concurrently and are not atomic as a
// batch: on partial failure some documents stay unread and the whole call
// reports an error. Retrying covers the remainder, because the predicate
// re-evaluates current state. Marking an already-read notification again is a
// no-op.
func (b *Bookkeeper) markRead(ctx context.Context, filter bson.M) error {
	collection := b.DB.Collection("adminNotifications")

	cursor, err := collection.Find(ctx, filter)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	var unread []models.AdminNotification
	if err = cursor.All(ctx, &unread); err != nil {
		return err
	}

	if len(unread) == 0 {
		return nil
	}

	readAt := time.Now()
	var wg sync.WaitGroup
	errs := make(chan error, len(unread))

	for _, n := range unread {
		wg.Add(1)
		go func(id interface{}) {
			defer wg.Done()
			_, err := collection.UpdateOne(ctx,
				bson.M{"_id": id, "status": StatusUnread},
				bson.M{"$set": bson.M{"status": StatusRead, "readAt": readAt}},
			)
			if err != nil {
				errs <- err
			}
		}(n.ID)
	}

	wg.Wait()
	close(errs)

	// Report the first failure; the rest were still attempted.
	for err := range errs {
		return err
	}
	return nil
}
