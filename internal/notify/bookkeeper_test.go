package notify

import (
	"testing"

	"machinery-rental-admin-api/internal/models"
)

func unreadSet() []models.AdminNotification {
	return []models.AdminNotification{
		{Type: TypeNewMessage, Status: StatusUnread, ChatID: "general_u1"},
		{Type: TypeNewMessage, Status: StatusUnread, ChatID: "general_u1"},
		{Type: TypeNewMessage, Status: StatusUnread, ChatID: "machinery_m1_u2"},
		{Type: TypeNewMessage, Status: StatusUnread, ChatID: "admin_initiated_u3_1717000000000"},
		// Snapshot presence alone puts a notification in the machinery tab.
		{Type: TypeNewMessage, Status: StatusUnread, ChatID: "general_u4",
			MachineryDetails: &models.MachinerySnapshot{ID: "m2", Name: "Excavator"}},
		// No chat reference: counted in the total, invisible per-chat.
		{Type: TypeNewMessage, Status: StatusUnread},
	}
}

func TestTallyClassification(t *testing.T) {
	counts := tally(unreadSet())

	if counts.Total != 6 {
		t.Errorf("Total = %d, want 6", counts.Total)
	}
	if counts.MachineryInquiries != 2 {
		t.Errorf("MachineryInquiries = %d, want 2", counts.MachineryInquiries)
	}
	if counts.GeneralSupport != 4 {
		t.Errorf("GeneralSupport = %d, want 4", counts.GeneralSupport)
	}
	if counts.PerChat["general_u1"] != 2 {
		t.Errorf("PerChat[general_u1] = %d, want 2", counts.PerChat["general_u1"])
	}
	if counts.PerChat["machinery_m1_u2"] != 1 {
		t.Errorf("PerChat[machinery_m1_u2] = %d, want 1", counts.PerChat["machinery_m1_u2"])
	}
	if len(counts.PerChat) != 4 {
		t.Errorf("len(PerChat) = %d, want 4", len(counts.PerChat))
	}
}

func TestChatReadFilterScope(t *testing.T) {
	scoped := chatReadFilter("general_u1")
	if scoped["chatId"] != "general_u1" {
		t.Errorf("scoped filter chatId = %v, want general_u1", scoped["chatId"])
	}
	if scoped["type"] != TypeNewMessage || scoped["status"] != StatusUnread {
		t.Errorf("scoped filter = %v, must select only unread new_message", scoped)
	}

	all := chatReadFilter("")
	if _, ok := all["chatId"]; ok {
		t.Error("empty chatID must not constrain the chat")
	}
	if all["type"] != TypeNewMessage || all["status"] != StatusUnread {
		t.Errorf("unscoped filter = %v, must select only unread new_message", all)
	}
}

// matchesChatRead mirrors chatReadFilter as an in-memory predicate.
func matchesChatRead(n models.AdminNotification, chatID string) bool {
	if n.Type != TypeNewMessage || n.Status != StatusUnread {
		return false
	}
	return chatID == "" || n.ChatID == chatID
}

func TestMarkChatReadZeroesOnlyThatChat(t *testing.T) {
	set := unreadSet()

	markOnce := func() int {
		marked := 0
		for i := range set {
			if matchesChatRead(set[i], "general_u1") {
				set[i].Status = StatusRead
				marked++
			}
		}
		return marked
	}

	if marked := markOnce(); marked != 2 {
		t.Fatalf("first pass marked %d notifications, want 2", marked)
	}

	var remaining []models.AdminNotification
	for _, n := range set {
		if n.Status == StatusUnread {
			remaining = append(remaining, n)
		}
	}
	counts := tally(remaining)

	if counts.PerChat["general_u1"] != 0 {
		t.Errorf("PerChat[general_u1] = %d after mark-read, want 0", counts.PerChat["general_u1"])
	}
	if counts.PerChat["machinery_m1_u2"] != 1 {
		t.Errorf("other chats changed: PerChat[machinery_m1_u2] = %d, want 1", counts.PerChat["machinery_m1_u2"])
	}
	if counts.Total != 4 {
		t.Errorf("Total = %d after mark-read, want 4", counts.Total)
	}

	// Second pass finds nothing: the filter only ever selects unread docs.
	if marked := markOnce(); marked != 0 {
		t.Errorf("second pass marked %d notifications, want 0", marked)
	}
}
