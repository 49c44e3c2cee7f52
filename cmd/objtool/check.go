package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/Faultbox/objkit/pkg/wavefront"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file.obj>...",
		Short: "Parse and flatten OBJ files, reporting every failure",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := checkFiles(args, a.cfg.Check.Workers, a.mesh)
			failed := printResults(cmd.OutOrStdout(), results)
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&a.overrides.Workers, "workers", "j", 0, "Number of files checked in parallel")
	return cmd
}

type checkResult struct {
	Path      string
	Triangles int
	Err       error
}

// checkFiles runs load over paths with at most workers calls in flight.
// Results keep the order of paths.
func checkFiles(paths []string, workers int, load func(string) (*wavefront.Mesh, error)) []checkResult {
	results := make([]checkResult, len(paths))

	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, path := range paths {
		g.Go(func() error {
			m, err := load(path)
			results[i] = checkResult{Path: path, Err: err}
			if err == nil {
				results[i].Triangles = m.TriangleCount()
			}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func printResults(w io.Writer, results []checkResult) int {
	failed := 0
	for _, r := range results {
		if r.Err == nil {
			fmt.Fprintf(w, "OK    %s (%d triangles)\n", r.Path, r.Triangles)
			continue
		}
		failed++
		fmt.Fprintf(w, "FAIL  %s: %v\n", r.Path, r.Err)

		var perr *wavefront.ParseError
		if errors.As(r.Err, &perr) && errors.Is(perr, wavefront.ErrUnknownKeyword) {
			if s := suggestKeyword(perr.Token); s != "" {
				fmt.Fprintf(w, "      did you mean %q?\n", s)
			}
		}
	}
	return failed
}
