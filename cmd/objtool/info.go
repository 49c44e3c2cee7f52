package main

import (
	"io"

	"github.com/Faultbox/objkit/pkg/wavefront"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <file.obj>",
		Short: "Display geometry statistics of an OBJ file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			g, err := a.parse(path)
			if err != nil {
				return err
			}
			m, err := wavefront.FlattenWith(g, a.flattenOptions())
			if err != nil {
				return err
			}
			printInfo(cmd.OutOrStdout(), path, g, m)
			return nil
		},
	}
}

func printInfo(w io.Writer, path string, g *wavefront.Geometry, m *wavefront.Mesh) {
	p := message.NewPrinter(language.English)

	p.Fprintf(w, "File:       %s\n", path)
	p.Fprintf(w, "Positions:  %d\n", len(g.Positions))
	p.Fprintf(w, "TexCoords:  %d\n", len(g.TexCoords))
	p.Fprintf(w, "Normals:    %d\n", len(g.Normals))
	p.Fprintf(w, "Faces:      %d\n", len(g.Faces))
	p.Fprintf(w, "Vertices:   %d\n", len(m.Vertices))
	p.Fprintf(w, "Indices:    %d\n", len(m.Indices))

	if len(m.Vertices) == 0 {
		return
	}

	b := m.Bounds()
	size := b.Size()
	p.Fprintf(w, "Bounds min: (%.4f, %.4f, %.4f)\n", b.Min.X, b.Min.Y, b.Min.Z)
	p.Fprintf(w, "Bounds max: (%.4f, %.4f, %.4f)\n", b.Max.X, b.Max.Y, b.Max.Z)
	p.Fprintf(w, "Size:       %.4f x %.4f x %.4f (diagonal %.4f)\n", size.X, size.Y, size.Z, size.Length())

	var noNormal, noTex int
	for _, v := range m.Vertices {
		if v.Normal.IsZero() {
			noNormal++
		}
		if v.TexCoord.IsZero() {
			noTex++
		}
	}
	if noNormal > 0 {
		p.Fprintf(w, "Warning:    %d vertices have a zero normal\n", noNormal)
	}
	if noTex > 0 && len(g.TexCoords) > 0 {
		p.Fprintf(w, "Warning:    %d vertices have zero texture coordinates\n", noTex)
	}
}
