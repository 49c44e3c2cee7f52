package encoding

import (
	"bytes"
	"io"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"plain", []byte("v 1 2 3\n"), "v 1 2 3\n"},
		{"utf8 bom", []byte("\xef\xbb\xbfv 1 2 3\n"), "v 1 2 3\n"},
		{"utf16le bom", []byte("\xff\xfev\x00 \x001\x00\n\x00"), "v 1\n"},
		{"utf16be bom", []byte("\xfe\xff\x00v\x00 \x001\x00\n"), "v 1\n"},
		{"latin1 comment", []byte("# caf\xe9\n"), "# caf\xe9\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.in)
			if string(got) != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNewSourceReader(t *testing.T) {
	r := NewSourceReader(bytes.NewReader([]byte("\xef\xbb\xbff 1 2 3\n")))
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(got) != "f 1 2 3\n" {
		t.Errorf("got %q, want %q", got, "f 1 2 3\n")
	}
}
