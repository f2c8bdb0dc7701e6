package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimestampLayout renders UTC instants with millisecond precision, e.g.
// 2024-03-01T09:30:00.000Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("invalid timestamp format (string expected): %w", err)
	}

	if s == "" {
		t.Time = time.Time{}
		return nil
	}

	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("cannot parse timestamp: %s", s)
	}

	t.Time = parsed
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		return []byte(`null`), nil
	}

	return json.Marshal(t.Time.UTC().Format(TimestampLayout))
}
