package wavefront

import (
	"bufio"
	"fmt"
	"io"
	gomath "math"
	"strconv"
)

// WriteTo writes g as OBJ text: positions, texture coordinates, normals,
// then faces. Numbers are written in plain decimal notation so the output
// parses back to the same records. Geometry holding NaN or infinite values
// is rejected before anything is written.
func (g *Geometry) WriteTo(w io.Writer) (int64, error) {
	if err := g.checkFinite(); err != nil {
		return 0, err
	}

	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	var line []byte

	for _, p := range g.Positions {
		line = appendFloats(append(line[:0], 'v'), p.X, p.Y, p.Z)
		bw.Write(line)
	}
	for _, t := range g.TexCoords {
		line = appendFloats(append(line[:0], "vt"...), t.X, t.Y)
		bw.Write(line)
	}
	for _, n := range g.Normals {
		line = appendFloats(append(line[:0], "vn"...), n.X, n.Y, n.Z)
		bw.Write(line)
	}
	for _, f := range g.Faces {
		line = append(line[:0], 'f')
		for _, c := range f {
			line = appendCorner(append(line, ' '), c)
		}
		line = append(line, '\n')
		bw.Write(line)
	}

	err := bw.Flush()
	return cw.n, err
}

func (g *Geometry) checkFinite() error {
	for i, p := range g.Positions {
		if !finite(p.X, p.Y, p.Z) {
			return fmt.Errorf("%w: position %d is not finite", ErrStructural, i+1)
		}
	}
	for i, t := range g.TexCoords {
		if !finite(t.X, t.Y) {
			return fmt.Errorf("%w: texture coordinate %d is not finite", ErrStructural, i+1)
		}
	}
	for i, n := range g.Normals {
		if !finite(n.X, n.Y, n.Z) {
			return fmt.Errorf("%w: normal %d is not finite", ErrStructural, i+1)
		}
	}
	return nil
}

func finite(vs ...float32) bool {
	for _, v := range vs {
		f := float64(v)
		if gomath.IsNaN(f) || gomath.IsInf(f, 0) {
			return false
		}
	}
	return true
}

func appendFloats(dst []byte, vs ...float32) []byte {
	for _, v := range vs {
		dst = append(dst, ' ')
		dst = strconv.AppendFloat(dst, float64(v), 'f', -1, 32)
	}
	return append(dst, '\n')
}

func appendCorner(dst []byte, c Corner) []byte {
	dst = strconv.AppendUint(dst, uint64(c.V), 10)
	if !c.HasTexCoord() && !c.HasNormal() {
		return dst
	}
	dst = append(dst, '/')
	if c.HasTexCoord() {
		dst = strconv.AppendUint(dst, uint64(c.T), 10)
	}
	if c.HasNormal() {
		dst = append(dst, '/')
		dst = strconv.AppendUint(dst, uint64(c.N), 10)
	}
	return dst
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
