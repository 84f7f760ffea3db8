package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDate_MarshalJSON(t *testing.T) {
	d := NewDate(2026, time.March, 5)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"2026-03-05"` {
		t.Errorf("Expected \"2026-03-05\", got %s", data)
	}

	data, err = json.Marshal(Date{})
	if err != nil {
		t.Fatalf("Marshal zero failed: %v", err)
	}
	if string(data) != "null" {
		t.Errorf("Expected null for zero date, got %s", data)
	}
}

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    string
		wantErr bool
	}{
		{"date", `"2026-03-05"`, "2026-03-05", false},
		{"null", `null`, "", false},
		{"empty_string", `""`, "", false},
		{"timestamp_rejected", `"2026-03-05T10:00:00Z"`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.data), &d)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if d.String() != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, d.String())
			}
		})
	}
}
