package chatid

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		raw           string
		wantKind      Kind
		wantUserID    string
		wantMachinery string
	}{
		{"machinery_abc123_user1", KindMachinery, "user1", "abc123"},
		{"machinery_abc123", KindMachinery, "", "abc123"},
		{"admin_initiated_user5_1717000000000", KindAdminInitiated, "user5", ""},
		{"general_user9", KindGeneral, "", ""},
		// Unknown prefixes bucket as general support.
		{"rent_approved_renter_xyz_1a2b3c4d", KindGeneral, "", ""},
		{"", KindGeneral, "", ""},
	}

	for _, tc := range cases {
		got := Parse(tc.raw)
		if got.Kind != tc.wantKind {
			t.Errorf("Parse(%q).Kind = %v, want %v", tc.raw, got.Kind, tc.wantKind)
		}
		if got.UserID != tc.wantUserID {
			t.Errorf("Parse(%q).UserID = %q, want %q", tc.raw, got.UserID, tc.wantUserID)
		}
		if got.MachineryID != tc.wantMachinery {
			t.Errorf("Parse(%q).MachineryID = %q, want %q", tc.raw, got.MachineryID, tc.wantMachinery)
		}
		if got.Raw != tc.raw {
			t.Errorf("Parse(%q).Raw = %q", tc.raw, got.Raw)
		}
	}
}

func TestIsMachinery(t *testing.T) {
	if !IsMachinery("machinery_abc_user1") {
		t.Error("IsMachinery(machinery_...) = false, want true")
	}
	if IsMachinery("general_user1") {
		t.Error("IsMachinery(general_...) = true, want false")
	}
}

func TestConstructorsRoundTrip(t *testing.T) {
	parsed := Parse(NewMachinery("m42", "u7"))
	if parsed.Kind != KindMachinery || parsed.MachineryID != "m42" || parsed.UserID != "u7" {
		t.Errorf("NewMachinery round trip = %+v", parsed)
	}

	parsed = Parse(NewGeneral("u7"))
	if parsed.Kind != KindGeneral {
		t.Errorf("NewGeneral round trip kind = %v", parsed.Kind)
	}

	parsed = Parse(NewAdminInitiated("u7"))
	if parsed.Kind != KindAdminInitiated || parsed.UserID != "u7" {
		t.Errorf("NewAdminInitiated round trip = %+v", parsed)
	}
}

func TestNewRentApprovalChatID(t *testing.T) {
	id := NewRentApprovalChatID("renter", "req123")
	if !strings.HasPrefix(id, "rent_approved_renter_req123_") {
		t.Errorf("unexpected id %q", id)
	}
	// The suffix makes every approval a fresh one-off conversation.
	if id == NewRentApprovalChatID("renter", "req123") {
		t.Error("expected distinct ids for repeated calls")
	}
	// These one-off chats must land in the general tab.
	if Parse(id).Kind != KindGeneral {
		t.Errorf("Parse(%q).Kind = %v, want KindGeneral", id, Parse(id).Kind)
	}
}
