package meshfmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Faultbox/objkit/pkg/math"
	"github.com/Faultbox/objkit/pkg/wavefront"
	"github.com/fxamacker/cbor/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMesh() *wavefront.Mesh {
	return &wavefront.Mesh{
		Vertices: []wavefront.Vertex{
			{Position: math.Vec3{X: 1, Y: 2, Z: 3}, Normal: math.Vec3{Z: 1}, TexCoord: math.Vec2{X: 0.5, Y: 0.25}},
			{Position: math.Vec3{X: -1.5}, Normal: math.Vec3{Y: -1}},
			{Position: math.Vec3{Y: 1e-3}, TexCoord: math.Vec2{X: 1, Y: 1}},
		},
		Indices: []uint32{0, 1, 2},
	}
}

func TestFromMesh_Layout(t *testing.T) {
	p := FromMesh(testMesh())
	assert.Equal(t, Version, p.Version)
	require.Len(t, p.Vertices, 3*FloatsPerVertex)
	assert.Equal(t, []float32{1, 2, 3, 0, 0, 1, 0.5, 0.25}, p.Vertices[:FloatsPerVertex])
	assert.Equal(t, []uint32{0, 1, 2}, p.Indices)
}

func TestEncodeDecode(t *testing.T) {
	for _, f := range []Format{FormatCBOR, FormatJSON} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, testMesh(), f))

			got, err := Decode(&buf, f)
			require.NoError(t, err)
			if diff := cmp.Diff(testMesh(), got); diff != "" {
				t.Errorf("mesh mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeDecode_Empty(t *testing.T) {
	data, err := MarshalCBOR(&wavefront.Mesh{})
	require.NoError(t, err)

	got, err := UnmarshalCBOR(data)
	require.NoError(t, err)
	if diff := cmp.Diff(&wavefront.Mesh{}, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("mesh mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshalCBOR_Deterministic(t *testing.T) {
	a, err := MarshalCBOR(testMesh())
	require.NoError(t, err)
	b, err := MarshalCBOR(testMesh())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestUnmarshalCBOR_Errors(t *testing.T) {
	future, err := cbor.Marshal(Payload{Version: Version + 1})
	require.NoError(t, err)
	_, err = UnmarshalCBOR(future)
	assert.ErrorIs(t, err, ErrPayloadVersion)

	short, err := cbor.Marshal(Payload{Version: Version, Vertices: make([]float32, FloatsPerVertex+3)})
	require.NoError(t, err)
	_, err = UnmarshalCBOR(short)
	assert.ErrorIs(t, err, ErrPayloadTruncate)

	_, err = UnmarshalCBOR([]byte{0xff, 0x00})
	assert.Error(t, err)
}

func TestDecode_BadJSON(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"version":`), FormatJSON)
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"cbor", FormatCBOR, false},
		{"JSON", FormatJSON, false},
		{"Cbor", FormatCBOR, false},
		{"gltf", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnknownFormat, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, Encode(&buf, testMesh(), Format("obj")), ErrUnknownFormat)
	_, err := Decode(&buf, Format("obj"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
