package inspect

import (
	"fmt"
	"io"
)

// Render writes the report as the line-oriented text existing consumers
// scrape. Booleans render Python-style (True/False) for compatibility.
func Render(w io.Writer, r Report) {
	fmt.Fprintf(w, "Total tensors: %d\n", r.TotalTensors)
	for _, req := range r.Required {
		status := "MISSING"
		if req.Present {
			status = "OK"
		}
		fmt.Fprintf(w, "%28s: %s\n", req.Name, status)
	}
	fmt.Fprintf(w, "audio_emb.*.weight count: %d\n", r.AudioEmbCount)
	fmt.Fprintf(w, "audio_out_heads.*.weight count: %d\n", r.AudioOutCount)
	if r.LayerCount > 0 {
		fmt.Fprintf(w, "Found %d layers with any params\n", r.LayerCount)
		for _, lc := range r.FirstLayers {
			fmt.Fprintf(w, "Layer %d: attn: %s, mlp: %s, norms: %s/%s\n",
				lc.Index, pyBool(lc.Attn), pyBool(lc.MLP), pyBool(lc.Norm1), pyBool(lc.Norm2))
		}
	} else {
		fmt.Fprintln(w, "No transformer layer prefixes found.")
	}
	if len(r.Unknown) > 0 {
		fmt.Fprintln(w, "Unknown top-level prefixes:")
		for _, pc := range r.Unknown {
			fmt.Fprintf(w, "  %s: %d\n", pc.Prefix, pc.Count)
		}
	}
	fmt.Fprintln(w, "Done.")
}

func pyBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
