package main

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/remnowwebdevelopmentprojects/Stitch-Desk-sub001/pkg/session"
)

func TestRun_UnknownCommand(t *testing.T) {
	t.Setenv("STITCHDESK_SESSION_FILE", filepath.Join(t.TempDir(), "session.json"))

	err := run([]string{"frobnicate"})
	if err == nil {
		t.Fatal("Expected error for unknown command")
	}
	if !strings.Contains(err.Error(), "frobnicate") {
		t.Errorf("Expected the command name in the error, got %v", err)
	}
}

func TestRun_NoArgsPrintsUsage(t *testing.T) {
	t.Setenv("STITCHDESK_SESSION_FILE", filepath.Join(t.TempDir(), "session.json"))

	if err := run(nil); err != nil {
		t.Errorf("Bare invocation must not fail, got %v", err)
	}
}

func TestRequireAuth(t *testing.T) {
	ctx := context.Background()

	store := session.NewMemoryStore()
	if err := requireAuth(ctx, store); err == nil {
		t.Error("Expected error without a stored session")
	}

	store.Save(ctx, session.Credentials{Token: "tok"})
	if err := requireAuth(ctx, store); err != nil {
		t.Errorf("Expected no error with a stored token, got %v", err)
	}
}
