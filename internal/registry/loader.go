package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"weightidx/internal/common/fsutil"
	"weightidx/internal/index"
	"weightidx/internal/inspect"
	"weightidx/pkg/types"
)

// indexSuffix matches sharded HF checkouts (model.safetensors.index.json and
// variants like model-fp16.safetensors.index.json).
const indexSuffix = ".safetensors.index.json"

// LoadDir scans a directory for safetensors index manifests and summarizes
// each one. Manifests that fail to load are logged and skipped; the scan
// itself fails only if the directory cannot be read.
func LoadDir(dir string) ([]types.IndexFile, error) {
	base, err := fsutil.ExpandHome(dir)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("abs path: %w", err)
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	var files []types.IndexFile
	for _, e := range entries {
		if e.IsDir() { continue }
		name := e.Name()
		if !strings.HasSuffix(strings.ToLower(name), indexSuffix) { continue }
		p := filepath.Join(abs, name)
		idx, err := index.Load(p)
		if err != nil {
			logSkip(p, err)
			continue
		}
		shards, _ := idx.Shards()
		files = append(files, types.IndexFile{
			ID:      name,
			Path:    p,
			Tensors: len(idx.WeightMap),
			Shards:  len(shards),
			Layers:  len(inspect.LayerSuffixes(idx.Keys())),
		})
	}
	return files, nil
}
