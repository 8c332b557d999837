package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	cfg, err := Load(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Path != "" {
		t.Fatalf("expected empty Path for missing file, got %q", cfg.Path)
	}
	if cfg.BannerTTL != 3*time.Second {
		t.Fatalf("expected default banner ttl 3s, got %s", cfg.BannerTTL)
	}
	if cfg.LocaleTag() != language.English {
		t.Fatalf("expected english locale, got %s", cfg.LocaleTag())
	}
	if !strings.HasSuffix(cfg.DBPath, ".crmquest.db") {
		t.Fatalf("expected default db path, got %q", cfg.DBPath)
	}
}

func TestLoadParsesYaml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	configYAML := strings.TrimSpace(`
db_path: ` + filepath.Join(dir, "quest.db") + `
locale: sv
banner_ttl: 5s
log:
  level: debug
  file: ` + filepath.Join(dir, "cq.log") + `
`)
	if err := os.WriteFile(path, []byte(configYAML), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Path != path {
		t.Fatalf("expected Path %q, got %q", path, cfg.Path)
	}
	if cfg.DBPath != filepath.Join(dir, "quest.db") {
		t.Fatalf("unexpected db path %q", cfg.DBPath)
	}
	if cfg.LocaleTag() != language.Swedish {
		t.Fatalf("expected swedish locale, got %s", cfg.LocaleTag())
	}
	if cfg.BannerTTL != 5*time.Second {
		t.Fatalf("expected 5s banner ttl, got %s", cfg.BannerTTL)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("expected debug log level, got %q", cfg.Log.Level)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("locale: sv\nbanner_ttl: 5s\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CQ_LOCALE", "de")
	t.Setenv("CQ_BANNER_TTL", "750ms")
	t.Setenv("CQ_DB_PATH", filepath.Join(dir, "env.db"))
	t.Setenv("CQ_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LocaleTag() != language.German {
		t.Fatalf("expected german locale, got %s", cfg.LocaleTag())
	}
	if cfg.BannerTTL != 750*time.Millisecond {
		t.Fatalf("expected 750ms, got %s", cfg.BannerTTL)
	}
	if cfg.DBPath != filepath.Join(dir, "env.db") {
		t.Fatalf("unexpected db path %q", cfg.DBPath)
	}
	if cfg.Log.Level != "warn" {
		t.Fatalf("expected warn, got %q", cfg.Log.Level)
	}
}

func TestLoadRejectsBadLocale(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("locale: not_a_locale!!\ndb_path: x.db\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for invalid locale")
	}
}

func TestWriteDefaultKeepsExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}
	if err := os.WriteFile(path, []byte("locale: fr\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault second call: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "locale: fr\n" {
		t.Fatalf("existing config overwritten: %q", data)
	}
}

func TestDefaultConfigYAMLParses(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HOME", dir)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load default yaml: %v", err)
	}
	if cfg.Log.Level != "info" || cfg.BannerTTL != 3*time.Second {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}
