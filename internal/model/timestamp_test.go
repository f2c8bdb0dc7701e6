package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestamp_MarshalJSON_UTCWithMillis(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	ts := Timestamp{Time: time.Date(2024, 3, 1, 16, 30, 0, 123456789, loc)}

	b, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	if got, want := string(b), `"2024-03-01T09:30:00.123Z"`; got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestTimestamp_MarshalJSON_ZeroIsNull(t *testing.T) {
	b, err := json.Marshal(Timestamp{})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(b) != "null" {
		t.Errorf("expected null, got %s", b)
	}
}

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte(`"2024-03-01T09:30:00.123Z"`), &ts); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	want := time.Date(2024, 3, 1, 9, 30, 0, 123000000, time.UTC)
	if !ts.Time.Equal(want) {
		t.Errorf("expected %v, got %v", want, ts.Time)
	}

	if err := json.Unmarshal([]byte(`"yesterday"`), &ts); err == nil {
		t.Errorf("expected error for unparsable timestamp")
	}
	if err := json.Unmarshal([]byte(`42`), &ts); err == nil {
		t.Errorf("expected error for non-string timestamp")
	}
}

func TestNewBookID_Length(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id, err := NewBookID()
		if err != nil {
			t.Fatalf("NewBookID returned error: %v", err)
		}
		if len(id) != BookIDLength {
			t.Fatalf("expected id of length %d, got %q", BookIDLength, id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
