package migrate

import (
	"context"
	"fmt"
	"log/slog"

	"ariga.io/atlas-go-sdk/atlasexec"
)

const DefaultDirURL = "file://migrations"

// Applier is the subset of *atlasexec.Client used here.
type Applier interface {
	MigrateApply(ctx context.Context, params *atlasexec.MigrateApplyParams) (*atlasexec.MigrateApply, error)
}

type Result struct {
	Applied []string
	Current string
	Target  string
}

type Runner struct {
	applier Applier
	dirURL  string
}

// NewRunner shells out to the atlas binary found on PATH.
func NewRunner(workDir, dirURL string) (*Runner, error) {
	client, err := atlasexec.NewClient(workDir, "atlas")
	if err != nil {
		return nil, fmt.Errorf("failed to init atlas client: %w", err)
	}
	return NewRunnerWithApplier(client, dirURL), nil
}

func NewRunnerWithApplier(applier Applier, dirURL string) *Runner {
	if dirURL == "" {
		dirURL = DefaultDirURL
	}
	return &Runner{applier: applier, dirURL: dirURL}
}

func (r *Runner) Apply(ctx context.Context, dsn string) (*Result, error) {
	res, err := r.applier.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    dsn,
		DirURL: r.dirURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to apply migrations from %s: %w", r.dirURL, err)
	}

	out := &Result{Current: res.Current, Target: res.Target}
	for _, f := range res.Applied {
		out.Applied = append(out.Applied, f.Name)
	}
	slog.Info("migrations applied", "count", len(out.Applied), "current", out.Current, "target", out.Target)
	return out, nil
}
