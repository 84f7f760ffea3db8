package query

import (
	"net/url"
	"testing"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		name string
		key  Key
		want string
	}{
		{
			name: "list",
			key:  NewKey("customers", nil),
			want: "sd:customers",
		},
		{
			name: "record",
			key:  NewRecordKey("orders", "7f9c0001"),
			want: "sd:orders:id=7f9c0001",
		},
		{
			name: "filtered_list",
			key:  NewKey("orders", url.Values{"status": []string{"PENDING"}}),
			want: "sd:orders:status=PENDING",
		},
		{
			name: "params_sorted",
			key: NewKey("orders", url.Values{
				"status":   []string{"PENDING"},
				"customer": []string{"7f9c0001"},
			}),
			want: "sd:orders:customer=7f9c0001:status=PENDING",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.key.String(); got != tt.want {
				t.Errorf("Key.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeyString_ParamOrderIrrelevant(t *testing.T) {
	a := NewKey("orders", url.Values{"status": []string{"READY"}, "page": []string{"2"}})
	b := NewKey("orders", url.Values{"page": []string{"2"}, "status": []string{"READY"}})

	if a.String() != b.String() {
		t.Errorf("Same params in different order must share a key: %q vs %q", a, b)
	}
}

func TestMatchesResource(t *testing.T) {
	tests := []struct {
		keyStr   string
		resource string
		want     bool
	}{
		{"sd:orders", "orders", true},
		{"sd:orders:status=PENDING", "orders", true},
		{"sd:orders:id=7f9c0001", "orders", true},
		{"sd:order-materials", "orders", false},
		{"sd:customers", "orders", false},
	}

	for _, tt := range tests {
		if got := matchesResource(tt.keyStr, tt.resource); got != tt.want {
			t.Errorf("matchesResource(%q, %q) = %v, want %v",
				tt.keyStr, tt.resource, got, tt.want)
		}
	}
}
