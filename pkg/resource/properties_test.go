package resource

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitResolvesPlaceholders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "application.yml")
	content := `
app:
  server:
    port: "${TEST_RESOURCE_PORT:8080}"
  name: "plain-value"
  retries: 3
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write properties: %v", err)
	}

	t.Setenv("TEST_RESOURCE_PORT", "9090")
	if err := Init(path); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if got := GetString("app.server.port"); got != "9090" {
		t.Errorf("port = %q, want 9090 from env", got)
	}
	if got := GetString("app.name"); got != "plain-value" {
		t.Errorf("name = %q", got)
	}
	if got := GetInt("app.retries"); got != 3 {
		t.Errorf("retries = %d", got)
	}
}

func TestInitPlaceholderDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "application.yml")
	if err := os.WriteFile(path, []byte("key: \"${TEST_RESOURCE_UNSET:fallback}\"\n"), 0o600); err != nil {
		t.Fatalf("write properties: %v", err)
	}

	if err := Init(path); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if got := GetString("key"); got != "fallback" {
		t.Errorf("key = %q, want fallback", got)
	}
}
