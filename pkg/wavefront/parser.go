// Package wavefront parses the Wavefront OBJ geometry subset used for
// rendering (v, vt, vn and triangular f lines) with a table-driven byte
// automaton, and flattens the result into vertex and index buffers.
package wavefront

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/objkit/pkg/encoding"
	"go.uber.org/zap"
)

// DefaultBufferSize is the size of the read buffer the automaton is fed
// from.
const DefaultBufferSize = 256

type options struct {
	logger     *zap.Logger
	bufferSize int
}

// Option configures a parse call.
type Option func(*options)

// WithLogger sets the logger used for debug output. The default discards.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithBufferSize sets the read buffer size. Values below 1 are ignored.
func WithBufferSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.bufferSize = n
		}
	}
}

// parser is the state of a single parse call.
type parser struct {
	reg   registers
	state State
	geo   *Geometry
	log   *zap.Logger
	buf   []byte

	offset  int64
	line    int
	column  int
	skipped int
}

func newParser(g *Geometry, opts []Option) *parser {
	o := options{logger: zap.NewNop(), bufferSize: DefaultBufferSize}
	for _, opt := range opts {
		opt(&o)
	}
	p := &parser{
		state: StateStart,
		geo:   g,
		log:   o.logger,
		buf:   make([]byte, o.bufferSize),
		line:  1,
	}
	p.reg.resetLine()
	return p
}

// fail moves the automaton to StateError and describes the failure at the
// current byte.
func (p *parser) fail(kind error, format string, args ...any) *ParseError {
	err := &ParseError{
		Kind:   kind,
		Msg:    fmt.Sprintf(format, args...),
		State:  p.state,
		Line:   p.line,
		Column: p.column + 1,
		Offset: p.offset,
	}
	p.state = StateError
	return err
}

// feed runs one byte through the automaton.
func (p *parser) feed(b byte, c ByteClass) error {
	tr := Step(p.state, c)
	if tr.Next == StateError {
		return p.fail(ErrStructural, "%s", tr.Message)
	}

	next, err := p.execute(tr.Action, b, tr.Next)
	if err != nil {
		return err
	}
	p.state = next

	p.offset++
	if c == ClassLineFeed {
		p.line++
		p.column = 0
	} else {
		p.column++
	}
	return nil
}

// run consumes r until the automaton reaches a terminal state.
func (p *parser) run(r io.Reader) error {
	for {
		n, err := r.Read(p.buf)
		for i := 0; i < n; i++ {
			b := p.buf[i]
			if ferr := p.feed(b, Classify(b)); ferr != nil {
				return ferr
			}
			if p.state == StateEnd {
				return nil
			}
		}
		if errors.Is(err, io.EOF) {
			return p.feed(0, ClassNil)
		}
		if err != nil {
			return fmt.Errorf("reading OBJ source: %w", err)
		}
	}
}

// ParseInto parses r and appends the records to g. On error g may hold a
// partial result that must not be used.
func ParseInto(r io.Reader, g *Geometry, opts ...Option) error {
	p := newParser(g, opts)
	if err := p.run(r); err != nil {
		p.log.Debug("OBJ parse failed", zap.Error(err))
		return err
	}
	p.log.Debug("parsed OBJ",
		zap.Int("positions", len(g.Positions)),
		zap.Int("texcoords", len(g.TexCoords)),
		zap.Int("normals", len(g.Normals)),
		zap.Int("faces", len(g.Faces)),
		zap.Int("skipped_lines", p.skipped),
		zap.Int64("bytes", p.offset),
	)
	return nil
}

// Parse parses an OBJ stream into a new Geometry.
func Parse(r io.Reader, opts ...Option) (*Geometry, error) {
	g := &Geometry{}
	if err := ParseInto(r, g, opts...); err != nil {
		return nil, err
	}
	return g, nil
}

// ParseBytes parses OBJ data held in memory.
func ParseBytes(data []byte, opts ...Option) (*Geometry, error) {
	return Parse(bytes.NewReader(data), opts...)
}

// ParseFile parses an OBJ file from disk. A leading byte order mark is
// honored, so UTF-16 exports parse like plain ASCII files.
func ParseFile(path string, opts ...Option) (*Geometry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening OBJ file: %w", err)
	}
	defer f.Close()

	g, err := Parse(encoding.NewSourceReader(f), opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return g, nil
}

// LoadFile parses an OBJ file and flattens it.
func LoadFile(path string, opts ...Option) (*Mesh, error) {
	g, err := ParseFile(path, opts...)
	if err != nil {
		return nil, err
	}
	m, err := Flatten(g)
	if err != nil {
		return nil, fmt.Errorf("flattening %s: %w", path, err)
	}
	return m, nil
}
