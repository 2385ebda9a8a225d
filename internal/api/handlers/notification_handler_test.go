package handlers

import (
	"testing"
	"time"

	"machinery-rental-admin-api/internal/notify"

	"go.mongodb.org/mongo-driver/bson"
)

func TestMarkReadUpdate(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	pipeline := markReadUpdate(now)
	if len(pipeline) != 1 || len(pipeline[0]) != 1 || pipeline[0][0].Key != "$set" {
		t.Fatalf("pipeline = %v, want a single $set stage", pipeline)
	}

	set, ok := pipeline[0][0].Value.(bson.M)
	if !ok {
		t.Fatalf("$set value has type %T", pipeline[0][0].Value)
	}
	if set["status"] != notify.StatusRead {
		t.Errorf("status = %v, want %q", set["status"], notify.StatusRead)
	}

	// readAt keeps its existing value once set, so re-marking is a no-op on
	// the timestamp.
	readAt, ok := set["readAt"].(bson.M)
	if !ok {
		t.Fatalf("readAt update has type %T", set["readAt"])
	}
	ifNull, ok := readAt["$ifNull"].(bson.A)
	if !ok || len(ifNull) != 2 {
		t.Fatalf("readAt = %v, want $ifNull with two branches", readAt)
	}
	if ifNull[0] != "$readAt" {
		t.Errorf("first branch = %v, want the stored $readAt", ifNull[0])
	}
	if ifNull[1] != now {
		t.Errorf("fallback = %v, want the mark time", ifNull[1])
	}
}
