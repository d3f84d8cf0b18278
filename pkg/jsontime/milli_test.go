package jsontime

import (
	"encoding/json"
	"testing"
	"time"
)

func TestMilliMarshal(t *testing.T) {
	tm := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	data, err := json.Marshal(Milli(tm))
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}

	var got int64
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal result error: %v", err)
	}
	if got != tm.UnixMilli() {
		t.Errorf("got=%d want=%d", got, tm.UnixMilli())
	}
}

func TestMilliUnmarshal(t *testing.T) {
	ms := int64(1705315800000) // 2024-01-15 10:30:00 UTC

	var ep Milli
	if err := json.Unmarshal([]byte("1705315800000"), &ep); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if !ep.Time().Equal(time.UnixMilli(ms)) {
		t.Errorf("got=%v want=%v", ep.Time(), time.UnixMilli(ms))
	}
}

func TestMilliRoundTrip(t *testing.T) {
	original := NowEpochMilli()

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}

	var restored Milli
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if original.Time().UnixMilli() != restored.Time().UnixMilli() {
		t.Errorf("original=%v restored=%v", original, restored)
	}
}
