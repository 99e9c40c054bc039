package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if cfg.DBPath != def.DBPath || cfg.WorkspacePath != def.WorkspacePath {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, def)
	}
	if len(cfg.Palette) != 8 {
		t.Errorf("palette has %d entries, want 8", len(cfg.Palette))
	}
}

func TestLoadMergesPalette(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "db_path: /tmp/x.db\npalette:\n  1: \"15\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "/tmp/x.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.WorkspacePath != Default().WorkspacePath {
		t.Errorf("WorkspacePath = %q, want default", cfg.WorkspacePath)
	}
	if cfg.Palette[1] != "15" {
		t.Errorf("Palette[1] = %q, want 15", cfg.Palette[1])
	}
	if cfg.Palette[2] != DefaultPalette()[2] {
		t.Errorf("Palette[2] = %q, want default kept", cfg.Palette[2])
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad yaml", "db_path: [", "failed to parse"},
		{"empty db path", "db_path: \"\"\n", "db_path is required"},
		{"palette out of range", "palette:\n  9: red\n", "out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load() error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := Default()
	cfg.DBPath = "/data/cubes.db"
	cfg.Palette[7] = "#123456"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.DBPath != cfg.DBPath || got.Palette[7] != "#123456" {
		t.Errorf("round trip = %+v", got)
	}
}
