package render

import (
	"fmt"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
)

// Write stores docs under dir, creating it when needed, and returns the
// paths written. Every document is attempted; failures are combined.
func Write(fs afero.Fs, dir string, docs []Document) ([]string, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	var written []string
	var result *multierror.Error
	for _, d := range docs {
		path := filepath.Join(dir, d.Name)
		if err := afero.WriteFile(fs, path, d.Content, 0o644); err != nil {
			result = multierror.Append(result, fmt.Errorf("writing %s: %w", path, err))
			continue
		}
		written = append(written, path)
	}
	return written, result.ErrorOrNil()
}
