package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"weightidx/internal/registry"
)

// runScan summarizes every index manifest under dir as a table.
func runScan(out io.Writer, dir string) error {
	files, err := registry.LoadDir(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintf(out, "No safetensors index manifests found in %s\n", dir)
		return nil
	}

	var data [][]string
	for _, f := range files {
		data = append(data, []string{
			f.ID,
			strconv.Itoa(f.Tensors),
			strconv.Itoa(f.Shards),
			strconv.Itoa(f.Layers),
		})
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"FILE", "TENSORS", "SHARDS", "LAYERS"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	return nil
}
