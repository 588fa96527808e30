package registry

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoadDirFiltersIndexFiles(t *testing.T) {
	dir := t.TempDir()
	writeTempFile(t, dir, "model.safetensors.index.json",
		`{"weight_map":{"text_emb.weight":"model-00001.safetensors","model.layers.0.mlp.up.weight":"model-00002.safetensors","model.layers.1.mlp.up.weight":"model-00002.safetensors"}}`)
	writeTempFile(t, dir, "model-00001.safetensors", "")
	writeTempFile(t, dir, "config.json", "{}")
	if err := os.Mkdir(filepath.Join(dir, "sub.safetensors.index.json"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	files, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("scan error: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 index file, got %d", len(files))
	}
	f := files[0]
	if f.ID != "model.safetensors.index.json" {
		t.Fatalf("unexpected id: %s", f.ID)
	}
	if f.Tensors != 3 || f.Shards != 2 || f.Layers != 2 {
		t.Fatalf("unexpected summary: %+v", f)
	}
}

func TestLoadDirSkipsUnreadableIndex(t *testing.T) {
	dir := t.TempDir()
	writeTempFile(t, dir, "good.safetensors.index.json", `{"weight_map":{"a.weight":"s"}}`)
	writeTempFile(t, dir, "bad.safetensors.index.json", "not json")
	writeTempFile(t, dir, "nomap.safetensors.index.json", `{"metadata":{}}`)

	files, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("scan error: %v", err)
	}
	if len(files) != 1 || files[0].ID != "good.safetensors.index.json" {
		t.Fatalf("unexpected files: %+v", files)
	}
}

func TestLoadDirMissing(t *testing.T) {
	if _, err := LoadDir(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatalf("expected error for missing dir")
	}
}
