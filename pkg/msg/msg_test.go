package msg

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetMessageReplacesPlaceholders(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "messages.yml")

	catalog := []byte("greeting:\n  hello: \"Hello {0}, you have {1} items\"\nplain: \"No placeholders\"\n")
	if err := os.WriteFile(path, catalog, 0o600); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}

	Init(path)

	got := GetMessage("greeting.hello", "Ana", 3)
	want := "Hello Ana, you have 3 items"
	if got != want {
		t.Fatalf("GetMessage = %q, want %q", got, want)
	}

	if got := GetMessage("plain"); got != "No placeholders" {
		t.Fatalf("GetMessage(plain) = %q", got)
	}
}

func TestGetMessageUnknownKey(t *testing.T) {
	got := GetMessage("does.not.exist")
	if got == "" {
		t.Fatal("unknown keys should still return a diagnostic string")
	}
}
