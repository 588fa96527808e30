package cli

import (
	"fmt"
	"io"

	"weightidx/internal/common/fsutil"
	"weightidx/internal/config"
	"weightidx/internal/index"
	"weightidx/internal/inspect"
)

// runInspect loads the manifest, analyzes it against the profile, and writes
// the textual report to out.
func runInspect(out io.Writer, indexPath, profilePath string) error {
	prof := config.Default()
	if profilePath != "" {
		pp, err := fsutil.ExpandHome(profilePath)
		if err != nil {
			return err
		}
		if !fsutil.PathExists(pp) {
			return fmt.Errorf("profile not found: %s", pp)
		}
		p, err := config.Load(pp)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		prof = p
	}
	idx, err := index.Load(indexPath)
	if err != nil {
		return err
	}
	logger.Debug().Str("index", indexPath).Int("tensors", len(idx.WeightMap)).Msg("index loaded")
	inspect.Render(out, inspect.Analyze(idx, prof))
	return nil
}
