package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if !strings.Contains(configDir, "bitread") {
		t.Errorf("GetConfigDir() = %v, should contain 'bitread'", configDir)
	}

	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("macOS config dir should contain '.config', got: %v", configDir)
		}
	}

	t.Logf("Config directory: %s", configDir)
}

func TestGetConfigDirXDG(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG_CONFIG_HOME is only used on Linux and other Unix systems")
	}

	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if want := filepath.Join(xdg, "bitread", "config.yaml"); configPath != want {
		t.Errorf("GetConfigPath() = %v, want %v", configPath, want)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Version != CurrentVersion {
		t.Errorf("Default().Version = %v, want %v", cfg.Version, CurrentVersion)
	}
	if cfg.Logging.Level != "" {
		t.Errorf("Default() should leave logging disabled, got level %q", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid level", func(c *Config) { c.Logging.Level = "DEBUG" }, ""},
		{"bad version", func(c *Config) { c.Version = 2 }, "unsupported config version"},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"negative size", func(c *Config) { c.Logging.MaxSizeMB = -1 }, "max_size_mb"},
		{"negative backups", func(c *Config) { c.Logging.MaxBackups = -1 }, "max_backups"},
		{"negative age", func(c *Config) { c.Logging.MaxAgeDays = -1 }, "max_age_days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv(DatabaseEnv, "/opt/prjxray-db")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Database.Dir != "/opt/prjxray-db" {
		t.Errorf("Database.Dir = %q, want value from %s", cfg.Database.Dir, DatabaseEnv)
	}
	if cfg.Logging.MaxBackups != Default().Logging.MaxBackups {
		t.Errorf("Logging.MaxBackups = %d, want default", cfg.Logging.MaxBackups)
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv(DatabaseEnv, "/from/env")

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `version: 1
database:
  dir: /data/prjxray-db
logging:
  level: info
  file: /tmp/bitread.log
  compress: true
sample:
  seed: 42
`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Database.Dir != "/data/prjxray-db" {
		t.Errorf("Database.Dir = %q, file value should win over env", cfg.Database.Dir)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.File != "/tmp/bitread.log" || !cfg.Logging.Compress {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if cfg.Logging.MaxSizeMB != Default().Logging.MaxSizeMB {
		t.Errorf("Logging.MaxSizeMB = %d, unset fields should keep defaults", cfg.Logging.MaxSizeMB)
	}
	if cfg.Sample.Seed != 42 {
		t.Errorf("Sample.Seed = %d, want 42", cfg.Sample.Seed)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"bad yaml", "version: [1", "failed to parse"},
		{"bad version", "version: 3\n", "unsupported config version"},
		{"negative rotation", "version: 1\nlogging:\n  max_backups: -2\n", "max_backups"},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0600); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("case %d: Load() error = %v, want containing %q", i, err, tt.wantErr)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Database.Dir = "/data/db"
	cfg.Logging.Level = "debug"
	cfg.Sample.Seed = 7

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should not remain after Save()")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# bitread configuration file") {
		t.Error("saved file should start with the header comment")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Database.Dir != "/data/db" || loaded.Logging.Level != "debug" || loaded.Sample.Seed != 7 {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestSaveRejectsInvalid(t *testing.T) {
	cfg := Default()
	cfg.Version = 0
	if err := cfg.Save(filepath.Join(t.TempDir(), "config.yaml")); err == nil {
		t.Error("Save() should reject an invalid config")
	}
}

func TestInit(t *testing.T) {
	t.Setenv(DatabaseEnv, "/env/db")
	path := filepath.Join(t.TempDir(), "config.yaml")

	got, err := Init(path, false)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if got != path {
		t.Errorf("Init() = %q, want %q", got, path)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Database.Dir != "/env/db" {
		t.Errorf("Database.Dir = %q, want %q", cfg.Database.Dir, "/env/db")
	}

	if _, err := Init(path, false); err == nil {
		t.Error("Init() over an existing file should fail without force")
	}
	if _, err := Init(path, true); err != nil {
		t.Errorf("Init(force) error = %v", err)
	}
}
