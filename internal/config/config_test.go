package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"habitly/internal/constants"
	apperrors "habitly/internal/errors"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.RemoteFileName != constants.RemoteFileName {
		t.Errorf("expected default remote file name, got %q", cfg.RemoteFileName)
	}
	if cfg.DataDir != dir {
		t.Errorf("expected data dir %q, got %q", dir, cfg.DataDir)
	}
	if cfg.SyncConfigured() {
		t.Error("expected sync to be unconfigured")
	}
}

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := "client_id: cid\nclient_secret: secret\nrefresh_token: rt\nremote_file_name: other.json\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ClientID != "cid" || cfg.ClientSecret != "secret" || cfg.RefreshToken != "rt" {
		t.Errorf("unexpected credentials: %+v", cfg)
	}
	if cfg.RemoteFileName != "other.json" {
		t.Errorf("expected remote file name override, got %q", cfg.RemoteFileName)
	}
	if !cfg.SyncConfigured() {
		t.Error("expected sync to be configured")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(path, []byte("client_id: from-file\n"), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Setenv("HABITLY_CLIENT_ID", "from-env")
	t.Setenv("HABITLY_ACCESS_TOKEN", "tok")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ClientID != "from-env" {
		t.Errorf("expected env override, got %q", cfg.ClientID)
	}
	if !cfg.SyncConfigured() {
		t.Error("expected access token alone to configure sync")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(path, []byte(":\n\t-bad"), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected Load to fail on malformed YAML")
	}
}

func TestCheckSync(t *testing.T) {
	cfg := &Config{}
	if err := cfg.CheckSync(); !errors.Is(err, apperrors.ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}

	cfg.AccessToken = "tok"
	if err := cfg.CheckSync(); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := &Config{ClientID: "cid", RemoteFileName: "x.json", DataDir: dir}
	if err := cfg.Write(path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.ClientID != "cid" || got.RemoteFileName != "x.json" {
		t.Errorf("round trip mismatch: %+v", got)
	}
}
