// Package chatid parses the string-encoded conversation ids used by the
// mobile app. The prefix carries the conversation class and, for some classes,
// participant ids:
//
//	general_{userId}
//	admin_initiated_{userId}_{unixMillis}
//	machinery_{machineryId}_{userId}
//
// The scheme is deliberately informal; parse once at the boundary and pass the
// result around instead of re-splitting the raw id at each use site.
package chatid

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind is the conversation class. Everything that is not a machinery inquiry
// belongs to the general-support class.
type Kind int

const (
	KindGeneral Kind = iota
	KindAdminInitiated
	KindMachinery
)

const (
	prefixGeneral        = "general_"
	prefixAdminInitiated = "admin_initiated_"
	prefixMachinery      = "machinery_"
)

// ChatID is the parsed form of a conversation id.
type ChatID struct {
	Raw         string
	Kind        Kind
	UserID      string // set for admin_initiated_ and machinery_ ids
	MachineryID string // set for machinery_ ids
}

// Parse never fails: ids with an unknown prefix are treated as general
// support, matching how the dashboard has always bucketed them.
func Parse(raw string) ChatID {
	switch {
	case strings.HasPrefix(raw, prefixMachinery):
		rest := strings.TrimPrefix(raw, prefixMachinery)
		parts := strings.Split(rest, "_")
		id := ChatID{Raw: raw, Kind: KindMachinery}
		if len(parts) >= 1 {
			id.MachineryID = parts[0]
		}
		if len(parts) >= 2 {
			id.UserID = parts[1]
		}
		return id
	case strings.HasPrefix(raw, prefixAdminInitiated):
		rest := strings.TrimPrefix(raw, prefixAdminInitiated)
		parts := strings.Split(rest, "_")
		id := ChatID{Raw: raw, Kind: KindAdminInitiated}
		if len(parts) >= 1 {
			id.UserID = parts[0]
		}
		return id
	default:
		return ChatID{Raw: raw, Kind: KindGeneral}
	}
}

// IsMachinery reports whether the raw id belongs to the machinery-inquiry
// class.
func IsMachinery(raw string) bool {
	return strings.HasPrefix(raw, prefixMachinery)
}

// NewAdminInitiated builds the id for a chat the admin starts with a user.
func NewAdminInitiated(userID string) string {
	return fmt.Sprintf("%s%s_%d", prefixAdminInitiated, userID, time.Now().UnixMilli())
}

// NewGeneral builds the id for a user-opened general support chat.
func NewGeneral(userID string) string {
	return prefixGeneral + userID
}

// NewMachinery builds the id for a machinery inquiry chat.
func NewMachinery(machineryID, userID string) string {
	return fmt.Sprintf("%s%s_%s", prefixMachinery, machineryID, userID)
}

// NewRentApprovalChatID builds the one-off ids used for the contact-card
// messages sent on rent approval. audience is "renter" or "publisher".
func NewRentApprovalChatID(audience, requestID string) string {
	return fmt.Sprintf("rent_approved_%s_%s_%s", audience, requestID, uuid.New().String()[:8])
}
