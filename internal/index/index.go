package index

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"weightidx/internal/common/fsutil"
)

// Index is a parsed safetensors index manifest. Only weight_map is decoded;
// other fields of the document (metadata etc.) are ignored.
type Index struct {
	WeightMap map[string]string `json:"weight_map"`
}

// Load reads and parses the index manifest at path. It fails if the file is
// unreadable, is not valid JSON, or lacks a weight_map mapping.
func Load(path string) (*Index, error) {
	p, err := fsutil.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("read index: %w", err)
	}
	var idx Index
	if err := json.Unmarshal(b, &idx); err != nil {
		return nil, fmt.Errorf("parse index: %w", err)
	}
	if idx.WeightMap == nil {
		return nil, ErrInvalidIndex("Invalid index: missing weight_map")
	}
	return &idx, nil
}

// Keys returns the tensor names of the weight_map in sorted order.
func (idx *Index) Keys() []string {
	keys := make([]string, 0, len(idx.WeightMap))
	for k := range idx.WeightMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Shards returns the distinct shard file names referenced by the weight_map,
// sorted, together with the tensor count per shard.
func (idx *Index) Shards() ([]string, map[string]int) {
	counts := make(map[string]int)
	for _, shard := range idx.WeightMap {
		counts[shard]++
	}
	names := make([]string, 0, len(counts))
	for s := range counts {
		names = append(names, s)
	}
	sort.Strings(names)
	return names, counts
}
