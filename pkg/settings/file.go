package settings

import (
	"context"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/corkboard/corkboard/pkg/canvas"
	"github.com/corkboard/corkboard/pkg/errors"
	"github.com/corkboard/corkboard/pkg/observability"
)

// gridDoc is the TOML shape the file backend reads. It matches the [grid]
// table of the application config file, so the same file can back both.
type gridDoc struct {
	Grid struct {
		SnapToGrid bool    `toml:"snap_to_grid"`
		GridSize   float64 `toml:"grid_size"`
	} `toml:"grid"`
}

// File is a policy provider that decodes a TOML file on every read. Edits to
// the file take effect on the next drag update; nothing is cached or
// watched. Missing or invalid files fall back to the default policy.
type File struct {
	path     string
	fallback canvas.GridPolicy
}

// NewFile creates a file-backed provider reading path. fallback is returned
// whenever the file cannot be read or fails validation.
func NewFile(path string, fallback canvas.GridPolicy) *File {
	return &File{path: path, fallback: fallback}
}

// GridPolicy implements canvas.PolicyProvider.
func (f *File) GridPolicy() canvas.GridPolicy {
	ctx := context.Background()
	start := time.Now()

	var doc gridDoc
	if _, err := toml.DecodeFile(f.path, &doc); err != nil {
		observability.Settings().OnPolicyFallback(ctx,
			BackendFile, errors.Wrap(errors.ErrCodeSettingsBackend, err, "decode %s", f.path))
		return f.fallback
	}

	policy := canvas.GridPolicy{
		SnapToGrid: doc.Grid.SnapToGrid,
		GridSize:   doc.Grid.GridSize,
	}
	if err := errors.ValidateGridPolicy(policy.SnapToGrid, policy.GridSize); err != nil {
		observability.Settings().OnPolicyFallback(ctx, BackendFile, err)
		return f.fallback
	}

	observability.Settings().OnPolicyRead(ctx, BackendFile, time.Since(start))
	return policy
}
