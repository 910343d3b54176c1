package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "./sfx.db" {
			t.Errorf("expected database path ./sfx.db, got %s", config.Database.Path)
		}

		if config.Server.BaseURL != "http://127.0.0.1:5001" {
			t.Errorf("expected server base URL http://127.0.0.1:5001, got %s", config.Server.BaseURL)
		}

		if config.Search.DebounceMS != 500 {
			t.Errorf("expected debounce 500ms, got %d", config.Search.DebounceMS)
		}

		if config.Search.MinQueryLen != 2 {
			t.Errorf("expected min query length 2, got %d", config.Search.MinQueryLen)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[server]
base_url = "https://senflix.example.com"
timeout_seconds = 30

[profile]
user_id = 3
cookie_path = "/home/me/.config/sfx/session.curl"

[database]
path = "/custom/path.db"
max_open_conns = 20
max_idle_conns = 10

[search]
debounce_ms = 250
min_query_len = 3
rate_per_sec = 2.0
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Server.BaseURL != "https://senflix.example.com" {
			t.Errorf("expected base URL https://senflix.example.com, got %s", config.Server.BaseURL)
		}

		if config.Profile.UserID != 3 {
			t.Errorf("expected profile user id 3, got %d", config.Profile.UserID)
		}

		if config.Database.Path != "/custom/path.db" {
			t.Errorf("expected database path /custom/path.db, got %s", config.Database.Path)
		}

		if config.Search.DebounceMS != 250 {
			t.Errorf("expected debounce 250ms, got %d", config.Search.DebounceMS)
		}
	})

	t.Run("LoadConfig Missing File", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/config.toml")
		if err == nil {
			t.Error("expected error for missing config file")
		}
	})
}
