package chat

import (
	"testing"
	"time"

	"machinery-rental-admin-api/internal/models"
	"machinery-rental-admin-api/internal/notify"
)

func at(day int) time.Time {
	return time.Date(2024, 6, day, 0, 0, 0, 0, time.UTC)
}

func TestPartitionClassification(t *testing.T) {
	messages := []models.ChatMessage{
		// Machinery prefix alone is enough, even without a snapshot.
		{ChatID: "machinery_m1_u1", SenderID: "u1", Message: "Is this available?", CreatedAt: at(5)},
		// Snapshot alone is enough, even on a general prefix.
		{ChatID: "general_u2", SenderID: "u2", Message: "About the crane", CreatedAt: at(4),
			MachineryDetails: &models.MachinerySnapshot{ID: "m2", Name: "Crane"}},
		{ChatID: "general_u3", SenderID: "u3", Message: "Hello", CreatedAt: at(3)},
		{ChatID: "admin_initiated_u4_1717000000000", SenderID: "admin", SenderType: "admin",
			Message: "Hello there", CreatedAt: at(2)},
	}

	general, machinery := partition(messages, notify.UnreadCounts{PerChat: map[string]int{}})

	if len(machinery) != 2 {
		t.Fatalf("len(machinery) = %d, want 2", len(machinery))
	}
	if len(general) != 2 {
		t.Fatalf("len(general) = %d, want 2", len(general))
	}
	for _, conv := range general {
		if conv.ChatID == "machinery_m1_u1" || conv.MachineryDetails != nil {
			t.Errorf("machinery conversation %q leaked into the general list", conv.ChatID)
		}
	}
	// Admin-initiated chats belong to general support.
	if general[1].ChatID != "admin_initiated_u4_1717000000000" {
		t.Errorf("general[1].ChatID = %q, want the admin-initiated chat", general[1].ChatID)
	}
}

func TestPartitionSummaryIsNewestMessage(t *testing.T) {
	// Input is newest first, as the assembler queries it.
	messages := []models.ChatMessage{
		{ChatID: "general_u1", SenderID: "u1", Message: "newest", CreatedAt: at(9)},
		{ChatID: "general_u1", SenderID: "u1", Message: "older", CreatedAt: at(1)},
	}

	general, machinery := partition(messages, notify.UnreadCounts{PerChat: map[string]int{}})

	if len(machinery) != 0 {
		t.Fatalf("len(machinery) = %d, want 0", len(machinery))
	}
	if len(general) != 1 {
		t.Fatalf("len(general) = %d, want 1 (one conversation per chatId)", len(general))
	}
	if general[0].LastMessage != "newest" || !general[0].LastMessageTime.Equal(at(9)) {
		t.Errorf("summary = %q at %v, want the newest message", general[0].LastMessage, general[0].LastMessageTime)
	}
}

func TestPartitionOrderingAndCounts(t *testing.T) {
	messages := []models.ChatMessage{
		{ChatID: "general_u1", SenderID: "u1", Message: "a", CreatedAt: at(2)},
		{ChatID: "general_u2", SenderID: "u2", Message: "b", CreatedAt: at(8)},
		// Messages without a chat id never form a conversation.
		{SenderID: "u9", Message: "stray", CreatedAt: at(9)},
	}
	counts := notify.UnreadCounts{PerChat: map[string]int{"general_u2": 3}}

	general, _ := partition(messages, counts)

	if len(general) != 2 {
		t.Fatalf("len(general) = %d, want 2", len(general))
	}
	if general[0].ChatID != "general_u2" || general[1].ChatID != "general_u1" {
		t.Errorf("order = [%s %s], want newest first", general[0].ChatID, general[1].ChatID)
	}
	if general[0].UnreadCount != 3 {
		t.Errorf("UnreadCount = %d, want 3", general[0].UnreadCount)
	}
	if general[1].UnreadCount != 0 {
		t.Errorf("UnreadCount = %d, want 0", general[1].UnreadCount)
	}
}

func TestPartitionCounterpart(t *testing.T) {
	messages := []models.ChatMessage{
		// Counterpart comes from the chat id when it is encoded there.
		{ChatID: "machinery_m1_u7", SenderID: "admin", SenderType: "admin", Message: "reply", CreatedAt: at(3)},
		{ChatID: "admin_initiated_u8_1717000000000", SenderID: "admin", SenderType: "admin", Message: "hi", CreatedAt: at(2)},
		// Otherwise the sender carries it.
		{ChatID: "general_u9", SenderID: "u9", Message: "help", CreatedAt: at(1)},
	}

	general, machinery := partition(messages, notify.UnreadCounts{PerChat: map[string]int{}})

	if machinery[0].UserID != "u7" {
		t.Errorf("machinery counterpart = %q, want u7", machinery[0].UserID)
	}
	if general[0].UserID != "u8" {
		t.Errorf("admin-initiated counterpart = %q, want u8", general[0].UserID)
	}
	if general[1].UserID != "u9" {
		t.Errorf("general counterpart = %q, want u9", general[1].UserID)
	}
}
