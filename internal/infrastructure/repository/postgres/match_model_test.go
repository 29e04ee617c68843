package postgres

import (
	"testing"
	"time"

	"github.com/futsalhq/leaderboard/internal/domain/match"
)

func TestDecodeEventsEmptyLog(t *testing.T) {
	events, err := decodeEvents(nil)
	if err != nil {
		t.Fatalf("decode nil: %v", err)
	}
	if events == nil || len(events) != 0 {
		t.Fatalf("expected empty slice, got %#v", events)
	}

	events, err = decodeEvents([]byte("[]"))
	if err != nil {
		t.Fatalf("decode empty array: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}
}

func TestEncodeEventsOmitsAbsentFields(t *testing.T) {
	minute := 12
	raw, err := encodeEvents([]match.Event{
		{
			Timestamp: time.Date(2026, 3, 1, 19, 30, 0, 0, time.UTC),
			Type:      match.EventGoal,
			TeamID:    "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
			PlayerID:  "11111111111111111111111111111111",
			Minute:    &minute,
		},
		{Type: match.EventSubstitution},
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := decodeEvents(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("expected 2 events, got %d", len(decoded))
	}
	if decoded[0].Minute == nil || *decoded[0].Minute != 12 {
		t.Fatalf("minute lost: %#v", decoded[0])
	}
	if decoded[1].SecondaryPlayerID != "" || decoded[1].Minute != nil {
		t.Fatalf("absent fields not empty after round trip: %#v", decoded[1])
	}
}
