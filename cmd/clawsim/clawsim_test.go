package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/decker502/funclaw/pkg/config"
)

func TestSimulateRunsAllAttempts(t *testing.T) {
	var out bytes.Buffer
	result, err := simulate(config.DefaultClawConfig(), simOptions{Seed: 7, Attempts: 4, Interval: 300 * time.Millisecond}, &out)
	if err != nil {
		t.Fatalf("simulate error: %v", err)
	}

	if result.Attempts != 4 {
		t.Errorf("Attempts = %d, want 4", result.Attempts)
	}
	if result.Score < 0 || result.Score > 4 {
		t.Errorf("Score = %d, want within [0, 4]", result.Score)
	}

	caught := 0
	for _, item := range result.Session.Items {
		if item.Caught {
			caught++
		}
	}
	if caught != result.Score {
		t.Errorf("caught items = %d, score = %d", caught, result.Score)
	}

	if lines := strings.Count(out.String(), "\n"); lines != 4 {
		t.Errorf("printed %d attempt lines, want 4:\n%s", lines, out.String())
	}
}

func TestSimulateDeterministic(t *testing.T) {
	opts := simOptions{Seed: 99, Attempts: 3, Interval: 250 * time.Millisecond}

	var a, b bytes.Buffer
	ra, err := simulate(config.DefaultClawConfig(), opts, &a)
	if err != nil {
		t.Fatalf("simulate error: %v", err)
	}
	rb, _ := simulate(config.DefaultClawConfig(), opts, &b)

	if a.String() != b.String() {
		t.Errorf("same seed produced different runs:\n%s\nvs\n%s", a.String(), b.String())
	}
	if ra.Score != rb.Score || ra.Elapsed != rb.Elapsed {
		t.Errorf("results differ: %+v vs %+v", ra, rb)
	}
}

func TestSimulateRejectsZeroAttempts(t *testing.T) {
	if _, err := simulate(config.DefaultClawConfig(), simOptions{Seed: 1}, &bytes.Buffer{}); err == nil {
		t.Error("expected error for zero attempts")
	}
}

func TestPrintField(t *testing.T) {
	cfg := config.DefaultClawConfig()
	cfg.ItemCount = 3

	var out bytes.Buffer
	if err := printField(cfg, 5, &out); err != nil {
		t.Fatalf("printField error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	// 区域说明 + 表头 + 3 个物品
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[1], "ID") {
		t.Errorf("header = %q", lines[1])
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "claw.yaml")
	if err := os.WriteFile(path, []byte("itemCount: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	configPath = path
	defer func() { configPath = "" }()

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig error: %v", err)
	}
	if cfg.ItemCount != 4 {
		t.Errorf("ItemCount = %d, want 4", cfg.ItemCount)
	}
	if cfg.DescendMs != 1500 {
		t.Errorf("DescendMs = %d, want default 1500", cfg.DescendMs)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	configPath = filepath.Join(t.TempDir(), "missing.yaml")
	defer func() { configPath = "" }()

	if _, err := loadConfig(); err == nil {
		t.Error("expected error for missing config")
	}
}
