package types

// IndexFile summarizes one safetensors index manifest found on disk.
type IndexFile struct {
	// File name of the manifest.
	// example: model.safetensors.index.json
	ID string `json:"id"`
	// Absolute path to the manifest.
	Path string `json:"path"`
	// Number of tensor entries in weight_map.
	Tensors int `json:"tensors"`
	// Number of distinct shard files referenced by weight_map.
	Shards int `json:"shards"`
	// Number of distinct transformer layer indices seen in tensor names.
	Layers int `json:"layers"`
}
