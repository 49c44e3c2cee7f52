package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Faultbox/objkit/pkg/meshfmt"
	"github.com/Faultbox/objkit/pkg/wavefront"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newFlattenCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "flatten <file.obj>",
		Short: "Flatten an OBJ file into a vertex and index buffer",
		Long: `Flatten parses an OBJ file and writes one interleaved vertex
(position, normal, texcoord) per face corner plus a sequential index
buffer. The output format is cbor or json.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := args[0]
			format, err := meshfmt.ParseFormat(a.cfg.Export.Format)
			if err != nil {
				return err
			}

			m, err := a.mesh(src)
			if err != nil {
				return err
			}

			dst := output
			if dst == "" {
				dst = outputPath(src, format)
			}

			if err := writeMesh(dst, cmd.OutOrStdout(), m, format); err != nil {
				return err
			}

			a.log.Info("flattened mesh",
				zap.String("source", src),
				zap.String("output", dst),
				zap.Int("triangles", m.TriangleCount()),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (- for stdout, default <file>.<format>)")
	cmd.Flags().StringVarP(&a.overrides.Format, "format", "f", "", "Output format: cbor or json")
	return cmd
}

// writeMesh encodes m to dst, or to stdout when dst is "-". A file that
// fails to encode or close is removed.
func writeMesh(dst string, stdout io.Writer, m *wavefront.Mesh, format meshfmt.Format) error {
	if dst == "-" {
		return meshfmt.Encode(stdout, m, format)
	}

	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := meshfmt.Encode(f, m, format); err != nil {
		f.Close()
		os.Remove(dst)
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(dst)
		return fmt.Errorf("closing %s: %w", dst, err)
	}
	return nil
}

// outputPath replaces the source extension with the format name.
func outputPath(src string, f meshfmt.Format) string {
	return strings.TrimSuffix(src, filepath.Ext(src)) + "." + string(f)
}
