package render

import (
	"context"
	"fmt"

	"github.com/compose-spec/compose-go/v2/cli"
	composetypes "github.com/compose-spec/compose-go/v2/types"
)

// CheckCompose loads a written compose file the way docker compose would
// and returns the resulting project. Undeclared volumes or networks and
// services without an image fail here.
func CheckCompose(ctx context.Context, path string) (*composetypes.Project, error) {
	opts, err := cli.NewProjectOptions(
		[]string{path},
		cli.WithName("cado"),
		cli.WithInterpolation(false),
	)
	if err != nil {
		return nil, fmt.Errorf("project options: %w", err)
	}

	project, err := cli.ProjectFromOptions(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return project, nil
}
