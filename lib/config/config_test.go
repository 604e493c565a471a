// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rayliner.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_DefaultsWhenUnset(t *testing.T) {
	t.Setenv("RAYLINER_CONFIG", "")

	configuration, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if configuration.Server.URL != "http://localhost:8081/api" {
		t.Errorf("default server URL = %q", configuration.Server.URL)
	}
	if configuration.Timeout() != 15*time.Second {
		t.Errorf("default timeout = %v", configuration.Timeout())
	}
}

func TestLoad_FlagPathWins(t *testing.T) {
	envPath := writeConfig(t, "server:\n  url: http://env.example/api\n")
	flagPath := writeConfig(t, "server:\n  url: http://flag.example/api\n")
	t.Setenv("RAYLINER_CONFIG", envPath)

	configuration, err := Load(flagPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if configuration.Server.URL != "http://flag.example/api" {
		t.Errorf("server URL = %q, want flag file value", configuration.Server.URL)
	}
}

func TestLoadFile_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "server:\n  url: http://rail.example/api\n")

	configuration, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if configuration.Server.URL != "http://rail.example/api" {
		t.Errorf("server URL = %q", configuration.Server.URL)
	}
	if configuration.Paths.State == "" {
		t.Error("state dir default lost when file omits paths")
	}
}

func TestLoadFile_Timeout(t *testing.T) {
	path := writeConfig(t, "server:\n  url: http://rail.example/api\n  request_timeout: 3s\n")

	configuration, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if configuration.Timeout() != 3*time.Second {
		t.Errorf("timeout = %v, want 3s", configuration.Timeout())
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFile_InvalidValues(t *testing.T) {
	path := writeConfig(t, "server:\n  url: \"\"\n")
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for empty server URL")
	}
}
