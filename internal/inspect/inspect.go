// Package inspect derives parameter-group coverage reports from the key set
// of a safetensors index manifest.
package inspect

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"weightidx/internal/config"
	"weightidx/internal/index"
)

var (
	audioEmbRe = regexp.MustCompile(`^audio_emb\.[0-9]+\.weight$`)
	audioOutRe = regexp.MustCompile(`^audio_out_heads\.[0-9]+\.weight$`)
	layerRe    = regexp.MustCompile(`^(transformer|layers|model\.layers)\.([0-9]+)\.(.+)$`)
)

// RequiredKey is the presence check result for one expected tensor name.
type RequiredKey struct {
	Name    string
	Present bool
}

// LayerCoverage holds the block-coverage flags for one transformer layer.
type LayerCoverage struct {
	Index int
	Attn  bool
	MLP   bool
	Norm1 bool
	Norm2 bool
}

// PrefixCount is one unrecognized top-level prefix and how often it occurs.
type PrefixCount struct {
	Prefix string
	Count  int
}

// Report is the coverage summary derived from one index manifest.
type Report struct {
	TotalTensors  int
	Required      []RequiredKey
	AudioEmbCount int
	AudioOutCount int
	LayerCount    int
	FirstLayers   []LayerCoverage
	Unknown       []PrefixCount
}

// Analyze runs the fixed analysis passes over the key set of idx using the
// expectations in prof. The key set is treated as an immutable snapshot.
func Analyze(idx *index.Index, prof config.Profile) Report {
	keys := idx.Keys()
	have := make(map[string]bool, len(keys))
	for _, k := range keys {
		have[k] = true
	}

	r := Report{TotalTensors: len(keys)}

	for _, name := range prof.Required {
		r.Required = append(r.Required, RequiredKey{Name: name, Present: have[name]})
	}

	for _, k := range keys {
		if audioEmbRe.MatchString(k) {
			r.AudioEmbCount++
		}
		if audioOutRe.MatchString(k) {
			r.AudioOutCount++
		}
	}

	layers := LayerSuffixes(keys)
	r.LayerCount = len(layers)
	idxs := make([]int, 0, len(layers))
	for i := range layers {
		idxs = append(idxs, i)
	}
	sort.Ints(idxs)
	if len(idxs) > 2 {
		idxs = idxs[:2]
	}
	for _, i := range idxs {
		r.FirstLayers = append(r.FirstLayers, coverageFor(i, layers[i]))
	}

	r.Unknown = unknownPrefixes(keys, prof.KnownPrefixes)
	return r
}

// LayerSuffixes groups the suffix after "<layer prefix>.<n>." under each
// layer index n, for keys under transformer., layers., or model.layers.
func LayerSuffixes(keys []string) map[int][]string {
	layers := make(map[int][]string)
	for _, k := range keys {
		m := layerRe.FindStringSubmatch(k)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		layers[n] = append(layers[n], m[3])
	}
	return layers
}

func coverageFor(layer int, suffixes []string) LayerCoverage {
	has := func(prefixes ...string) bool {
		for _, s := range suffixes {
			for _, p := range prefixes {
				if strings.HasPrefix(s, p) {
					return true
				}
			}
		}
		return false
	}
	return LayerCoverage{
		Index: layer,
		Attn:  has("self_attn.", "attention.", "attn."),
		MLP:   has("mlp.", "feed_forward.", "ffn."),
		Norm1: has("norm1", "attention_norm"),
		Norm2: has("norm2", "ffn_norm", "post_attention_layernorm"),
	}
}

// unknownPrefixes tallies top-level prefixes and keeps those whose first
// dot-segment matches no allow-list entry's first dot-segment. The
// first-segment-only comparison is intentional: a stray model.* key counts
// as known because model.layers starts with "model".
func unknownPrefixes(keys, known []string) []PrefixCount {
	knownSeg := make(map[string]bool, len(known))
	for _, p := range known {
		knownSeg[firstSegment(p)] = true
	}
	counts := make(map[string]int)
	for _, k := range keys {
		counts[firstSegment(k)]++
	}
	var out []PrefixCount
	for p, c := range counts {
		if !knownSeg[p] {
			out = append(out, PrefixCount{Prefix: p, Count: c})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Prefix < out[j].Prefix
	})
	if len(out) > 10 {
		out = out[:10]
	}
	return out
}

func firstSegment(s string) string {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i]
	}
	return s
}
