// Package meshfmt encodes flattened meshes for hand-off to other tools.
//
// Vertices are stored interleaved, FloatsPerVertex floats each:
// position xyz, normal xyz, texcoord uv. This is the layout a GPU vertex
// buffer upload expects.
package meshfmt

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Faultbox/objkit/pkg/math"
	"github.com/Faultbox/objkit/pkg/wavefront"
	"github.com/fxamacker/cbor/v2"
)

// FloatsPerVertex is the stride of the interleaved vertex array.
const FloatsPerVertex = 8

// Version is the payload layout version.
const Version = 1

// Format names an output encoding.
type Format string

// Supported formats.
const (
	FormatCBOR Format = "cbor"
	FormatJSON Format = "json"
)

// Payload errors.
var (
	ErrUnknownFormat   = errors.New("unknown mesh format")
	ErrPayloadVersion  = errors.New("unsupported mesh payload version")
	ErrPayloadTruncate = errors.New("truncated vertex array")
)

// ParseFormat converts a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatCBOR, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Payload is the wire form of a mesh.
type Payload struct {
	Version  int       `cbor:"1,keyasint" json:"version"`
	Vertices []float32 `cbor:"2,keyasint" json:"vertices"`
	Indices  []uint32  `cbor:"3,keyasint" json:"indices"`
}

// FromMesh interleaves m into a payload.
func FromMesh(m *wavefront.Mesh) *Payload {
	p := &Payload{
		Version:  Version,
		Vertices: make([]float32, 0, len(m.Vertices)*FloatsPerVertex),
		Indices:  m.Indices,
	}
	for _, v := range m.Vertices {
		p.Vertices = append(p.Vertices,
			v.Position.X, v.Position.Y, v.Position.Z,
			v.Normal.X, v.Normal.Y, v.Normal.Z,
			v.TexCoord.X, v.TexCoord.Y,
		)
	}
	return p
}

// Mesh converts the payload back into a mesh.
func (p *Payload) Mesh() (*wavefront.Mesh, error) {
	if p.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrPayloadVersion, p.Version)
	}
	if len(p.Vertices)%FloatsPerVertex != 0 {
		return nil, fmt.Errorf("%w: %d floats", ErrPayloadTruncate, len(p.Vertices))
	}

	m := &wavefront.Mesh{
		Vertices: make([]wavefront.Vertex, 0, len(p.Vertices)/FloatsPerVertex),
		Indices:  p.Indices,
	}
	for i := 0; i < len(p.Vertices); i += FloatsPerVertex {
		f := p.Vertices[i : i+FloatsPerVertex]
		m.Vertices = append(m.Vertices, wavefront.Vertex{
			Position: math.Vec3{X: f[0], Y: f[1], Z: f[2]},
			Normal:   math.Vec3{X: f[3], Y: f[4], Z: f[5]},
			TexCoord: math.Vec2{X: f[6], Y: f[7]},
		})
	}
	return m, nil
}

var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("meshfmt: creating CBOR encoder: %v", err))
	}
}

// MarshalCBOR encodes m as deterministic CBOR.
func MarshalCBOR(m *wavefront.Mesh) ([]byte, error) {
	data, err := encMode.Marshal(FromMesh(m))
	if err != nil {
		return nil, fmt.Errorf("CBOR encoding failed: %w", err)
	}
	return data, nil
}

// UnmarshalCBOR decodes a mesh written by MarshalCBOR.
func UnmarshalCBOR(data []byte) (*wavefront.Mesh, error) {
	var p Payload
	if err := cbor.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("CBOR decoding failed: %w", err)
	}
	return p.Mesh()
}

// Encode writes m to w in format f.
func Encode(w io.Writer, m *wavefront.Mesh, f Format) error {
	switch f {
	case FormatCBOR:
		data, err := MarshalCBOR(m)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		return enc.Encode(FromMesh(m))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// Decode reads a mesh in format f from r.
func Decode(r io.Reader, f Format) (*wavefront.Mesh, error) {
	switch f {
	case FormatCBOR:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return UnmarshalCBOR(data)
	case FormatJSON:
		var p Payload
		if err := json.NewDecoder(r).Decode(&p); err != nil {
			return nil, fmt.Errorf("JSON decoding failed: %w", err)
		}
		return p.Mesh()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}
