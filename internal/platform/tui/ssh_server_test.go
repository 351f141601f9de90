package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-arcade/internal/config"
)

func TestResolveHostKeyPathCreatesDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys", "nested", "host_key")

	got, err := resolveHostKeyPath(path)
	if err != nil {
		t.Fatalf("resolveHostKeyPath() failed: %v", err)
	}
	if got != path {
		t.Errorf("resolveHostKeyPath() = %q, expected %q", got, path)
	}
	if info, err := os.Stat(filepath.Dir(path)); err != nil || !info.IsDir() {
		t.Error("Host key directory should be created")
	}
}

func TestNewSSHServer(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")

	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	defer srv.closeStore()

	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}
	if srv.store == nil {
		t.Error("Server should share a round journal")
	}
}

func TestNewSSHServerRejectsBadConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")
	cfg.Snake = config.SnakeConfig{}

	if _, err := NewSSHServer(cfg, log.New(io.Discard)); err == nil {
		t.Error("Expected error for a config without levels")
	}
}
