// Package chat groups the flat chatMessages stream into per-conversation
// summaries for the dashboard's two tabs: general support and machinery
// inquiries.
package chat

import (
	"context"
	"sort"
	"strings"
	"time"

	"machinery-rental-admin-api/internal/chatid"
	"machinery-rental-admin-api/internal/models"
	"machinery-rental-admin-api/internal/notify"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Conversation is one chat summary. A conversation exists only once at least
// one message has been written; there is no zero-message representation.
type Conversation struct {
	ChatID           string                    `json:"chatId"`
	UserID           string                    `json:"userId"`
	UserName         string                    `json:"userName"`
	UserEmail        string                    `json:"userEmail"`
	MachineryDetails *models.MachinerySnapshot `json:"machineryDetails,omitempty"`
	LastMessage      string                    `json:"lastMessage"`
	LastMessageTime  time.Time                 `json:"lastMessageTime"`
	UnreadCount      int                       `json:"unreadCount"`

	// adminAuthored marks summaries whose last message came from the admin
	// side, where the sender name is not the counterpart's.
	adminAuthored bool
}

type Assembler struct {
	DB         *mongo.Database
	Bookkeeper *notify.Bookkeeper
}

// Assemble reads the whole message stream and partitions it into the two
// disjoint conversation classes. Both lists are ordered by last message time,
// newest first; a missing timestamp sorts as epoch zero.
func (a *Assembler) Assemble(ctx context.Context) (general, machinery []Conversation, err error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := a.DB.Collection("chatMessages").Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, nil, err
	}
	defer cursor.Close(ctx)

	var messages []models.ChatMessage
	if err = cursor.All(ctx, &messages); err != nil {
		return nil, nil, err
	}

	counts, err := a.Bookkeeper.UnreadCounts(ctx)
	if err != nil {
		return nil, nil, err
	}

	general, machinery = partition(messages, counts)

	for i := range general {
		a.resolveProfile(ctx, &general[i])
	}
	for i := range machinery {
		a.resolveProfile(ctx, &machinery[i])
	}

	return general, machinery, nil
}

// partition walks the newest-first message stream, keeps the first message
// per chatId as that conversation's summary, and splits by class. Machinery
// conversations are the ones whose summary carries the listing snapshot or a
// machinery_ chat id; everything else is general support, including
// admin-initiated chats. Both lists come back sorted newest first.
func partition(messages []models.ChatMessage, counts notify.UnreadCounts) (general, machinery []Conversation) {
	seen := make(map[string]bool)
	general = []Conversation{}
	machinery = []Conversation{}

	for _, msg := range messages {
		if msg.ChatID == "" || seen[msg.ChatID] {
			continue
		}
		seen[msg.ChatID] = true

		parsed := chatid.Parse(msg.ChatID)
		isMachinery := msg.MachineryDetails != nil || parsed.Kind == chatid.KindMachinery

		conv := Conversation{
			ChatID:           msg.ChatID,
			UserID:           counterpartID(parsed, msg),
			UserName:         msg.SenderName,
			MachineryDetails: msg.MachineryDetails,
			LastMessage:      msg.Message,
			LastMessageTime:  msg.CreatedAt,
			UnreadCount:      counts.PerChat[msg.ChatID],
			adminAuthored:    parsed.Kind == chatid.KindAdminInitiated || msg.SenderType == "admin",
		}

		if isMachinery {
			machinery = append(machinery, conv)
		} else {
			general = append(general, conv)
		}
	}

	byLastMessage := func(list []Conversation) func(i, j int) bool {
		return func(i, j int) bool {
			return list[i].LastMessageTime.After(list[j].LastMessageTime)
		}
	}
	sort.SliceStable(general, byLastMessage(general))
	sort.SliceStable(machinery, byLastMessage(machinery))

	return general, machinery
}

// counterpartID resolves which user the admin is talking to. For
// admin-initiated and machinery conversations the id is encoded in the chatId;
// otherwise the sender field carries it.
func counterpartID(parsed chatid.ChatID, msg models.ChatMessage) string {
	switch parsed.Kind {
	case chatid.KindAdminInitiated, chatid.KindMachinery:
		if parsed.UserID != "" {
			return parsed.UserID
		}
	}
	return msg.SenderID
}

// resolveProfile looks up the counterpart's profile for email and, for
// admin-authored summaries, the display name (the summary message was written
// by the admin, so the sender name is not the user's). A missing profile keeps
// the fallbacks; joins here are sequential lookups, not snapshots.
func (a *Assembler) resolveProfile(ctx context.Context, conv *Conversation) {
	conv.UserEmail = "unknown@email.com"

	var user models.User
	err := a.DB.Collection("users").FindOne(ctx, bson.M{"uid": conv.UserID}).Decode(&user)
	if err != nil {
		return
	}

	conv.UserEmail = user.Email
	if conv.adminAuthored {
		if name := strings.TrimSpace(user.FirstName + " " + user.LastName); name != "" {
			conv.UserName = name
		}
	}
}

// Messages returns one conversation's messages ordered oldest first. Sorting
// happens client-side so the store needs no composite index.
func (a *Assembler) Messages(ctx context.Context, chatID string) ([]models.ChatMessage, error) {
	cursor, err := a.DB.Collection("chatMessages").Find(ctx, bson.M{"chatId": chatID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []models.ChatMessage
	if err = cursor.All(ctx, &messages); err != nil {
		return nil, err
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})

	if messages == nil {
		messages = []models.ChatMessage{}
	}
	return messages, nil
}
