package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadYAML_ValidPresetOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "preset.yaml")
	contents := `
chunk_size_blocks: 8
cluster_size_chunks: 32
cache_size_blocks: 1024
prefetch_window_blocks: 8
block_range: 5000
n_events: 2000
workload_kind: kernel
seed: 7
engine: ra
epoch_size: 500
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	cfg, err := LoadYAML(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ChunkSizeBlocks != 8 {
		t.Errorf("ChunkSizeBlocks = %d, want 8", cfg.ChunkSizeBlocks)
	}
	if cfg.CacheSizeBlocks != 1024 {
		t.Errorf("CacheSizeBlocks = %d, want 1024", cfg.CacheSizeBlocks)
	}
	if string(cfg.WorkloadKind) != "kernel" {
		t.Errorf("WorkloadKind = %q, want kernel", cfg.WorkloadKind)
	}
	if string(cfg.Engine) != "ra" {
		t.Errorf("Engine = %q, want ra", cfg.Engine)
	}
}

func TestLoadYAML_UnknownFieldIsRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "typo.yaml")
	contents := "chunk_size_blcoks: 8\n" // typo'd key
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	_, err := LoadYAML(path)
	if err == nil {
		t.Fatal("expected an error for an unrecognized YAML key")
	}
}

func TestLoadYAML_MissingFileIsRejected(t *testing.T) {
	_, err := LoadYAML("/nonexistent/path/does-not-exist.yaml")
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadYAML_PartialPresetKeepsRemainingDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")
	contents := "seed: 99\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	cfg, err := LoadYAML(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Seed != 99 {
		t.Errorf("Seed = %d, want 99", cfg.Seed)
	}
	if cfg.ChunkSizeBlocks != 16 {
		t.Errorf("ChunkSizeBlocks = %d, want unchanged default 16", cfg.ChunkSizeBlocks)
	}
}
