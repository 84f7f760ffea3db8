package guard

import (
	"context"
	"errors"
	"testing"

	"github.com/remnowwebdevelopmentprojects/Stitch-Desk-sub001/pkg/models"
	"github.com/remnowwebdevelopmentprojects/Stitch-Desk-sub001/pkg/session"
)

// failingStore simulates a broken persistence backend.
type failingStore struct{}

func (failingStore) Load(context.Context) (session.Credentials, error) {
	return session.Credentials{}, errors.New("disk error")
}
func (failingStore) Save(context.Context, session.Credentials) error { return nil }
func (failingStore) Clear(context.Context) error                     { return nil }

func storeWith(t *testing.T, creds session.Credentials) session.Store {
	t.Helper()
	store := session.NewMemoryStore()
	if err := store.Save(context.Background(), creds); err != nil {
		t.Fatal(err)
	}
	return store
}

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name  string
		creds session.Credentials
		want  Decision
	}{
		{
			name:  "no_token",
			creds: session.Credentials{},
			want:  Denied,
		},
		{
			name:  "token_present",
			creds: session.Credentials{Token: "tok"},
			want:  Allowed,
		},
		{
			name: "token_without_profile",
			// Validity is not checked; presence alone admits.
			creds: session.Credentials{Token: "possibly-expired"},
			want:  Allowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(storeWith(t, tt.creds))
			if got := g.RequireAuth(context.Background()); got != tt.want {
				t.Errorf("RequireAuth() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRequireAuth_StoreFailure(t *testing.T) {
	g := New(failingStore{})
	if got := g.RequireAuth(context.Background()); got != Denied {
		t.Errorf("Expected Denied on store failure, got %s", got)
	}
}

func TestRequireSuperuser(t *testing.T) {
	tests := []struct {
		name  string
		creds session.Credentials
		want  Decision
	}{
		{
			name:  "no_token",
			creds: session.Credentials{},
			want:  Denied,
		},
		{
			name: "profile_not_loaded_yet",
			// Right after login the token may land before the profile;
			// the page renders nothing until the answer is known.
			creds: session.Credentials{Token: "tok"},
			want:  Loading,
		},
		{
			name: "regular_user",
			creds: session.Credentials{
				Token: "tok",
				User:  &models.User{Email: "staff@example.com"},
			},
			want: Denied,
		},
		{
			name: "superuser",
			creds: session.Credentials{
				Token: "tok",
				User:  &models.User{Email: "admin@example.com", IsSuperuser: true},
			},
			want: Allowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(storeWith(t, tt.creds))
			if got := g.RequireSuperuser(context.Background()); got != tt.want {
				t.Errorf("RequireSuperuser() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNew_NilStorePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for nil store")
		}
	}()
	New(nil)
}

func TestDecisionString(t *testing.T) {
	tests := []struct {
		decision Decision
		want     string
	}{
		{Loading, "loading"},
		{Allowed, "allowed"},
		{Denied, "denied"},
		{Decision(9), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.decision.String(); got != tt.want {
			t.Errorf("Decision(%d).String() = %q, want %q", tt.decision, got, tt.want)
		}
	}
}
