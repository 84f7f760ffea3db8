package pagination

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

type item struct {
	Name string `json:"name"`
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantLen  int
		wantName string
		wantErr  bool
	}{
		{
			name:     "envelope",
			data:     `{"count": 2, "next": null, "previous": null, "results": [{"name": "Asha"}, {"name": "Meera"}]}`,
			wantLen:  2,
			wantName: "Asha",
		},
		{
			name:     "bare_array",
			data:     `[{"name": "Asha"}]`,
			wantLen:  1,
			wantName: "Asha",
		},
		{
			name:    "envelope_null_results",
			data:    `{"count": 0, "next": null, "previous": null, "results": null}`,
			wantLen: 0,
		},
		{
			name:    "object_without_results",
			data:    `{"detail": "something"}`,
			wantLen: 0,
		},
		{
			name:    "empty_body",
			data:    ``,
			wantLen: 0,
		},
		{
			name:    "scalar",
			data:    `42`,
			wantLen: 0,
		},
		{
			name:    "malformed_array",
			data:    `[{"name": }]`,
			wantErr: true,
		},
		{
			name:    "malformed_envelope",
			data:    `{"results": [},`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := Normalize[item]([]byte(tt.data))
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if items == nil {
				t.Fatal("Normalize must never return a nil slice")
			}
			if len(items) != tt.wantLen {
				t.Errorf("Expected %d items, got %d", tt.wantLen, len(items))
			}
			if tt.wantName != "" && items[0].Name != tt.wantName {
				t.Errorf("Expected first item %q, got %q", tt.wantName, items[0].Name)
			}
		})
	}
}

func TestFetchAll_FollowsNextLinks(t *testing.T) {
	pages := map[string]string{
		"":       `{"count": 3, "next": "http://api/customers/?page=2", "previous": null, "results": [{"name": "A"}]}`,
		"http://api/customers/?page=2": `{"count": 3, "next": "http://api/customers/?page=3", "previous": "http://api/customers/", "results": [{"name": "B"}]}`,
		"http://api/customers/?page=3": `{"count": 3, "next": null, "previous": "http://api/customers/?page=2", "results": [{"name": "C"}]}`,
	}

	var fetched []string
	items, err := FetchAll[item](context.Background(), func(_ context.Context, next string) ([]byte, error) {
		fetched = append(fetched, next)
		body, ok := pages[next]
		if !ok {
			return nil, fmt.Errorf("unexpected page %q", next)
		}
		return []byte(body), nil
	})
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}

	if len(items) != 3 {
		t.Errorf("Expected 3 items, got %d", len(items))
	}
	if len(fetched) != 3 || fetched[0] != "" {
		t.Errorf("Unexpected fetch sequence: %v", fetched)
	}
}

func TestFetchAll_BareArrayEndsWalk(t *testing.T) {
	calls := 0
	items, err := FetchAll[item](context.Background(), func(context.Context, string) ([]byte, error) {
		calls++
		return []byte(`[{"name": "A"}, {"name": "B"}]`), nil
	})
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}
	if calls != 1 {
		t.Errorf("Bare array must end the walk after 1 call, got %d", calls)
	}
	if len(items) != 2 {
		t.Errorf("Expected 2 items, got %d", len(items))
	}
}

func TestFetchAll_FetchErrorPropagates(t *testing.T) {
	fetchErr := errors.New("network down")
	_, err := FetchAll[item](context.Background(), func(context.Context, string) ([]byte, error) {
		return nil, fetchErr
	})
	if !errors.Is(err, fetchErr) {
		t.Errorf("Expected fetch error to propagate, got %v", err)
	}
}

func TestFetchAll_CycleBounded(t *testing.T) {
	_, err := FetchAll[item](context.Background(), func(context.Context, string) ([]byte, error) {
		return []byte(`{"count": 1, "next": "http://api/loop/", "previous": null, "results": []}`), nil
	})
	if err == nil {
		t.Error("Expected an error for a pagination cycle")
	}
}
