package wavefront

import (
	gomath "math"

	"github.com/Faultbox/objkit/pkg/math"
	"go.uber.org/zap"
)

const (
	maxFields  = 4 // v x y z w
	maxCorners = 3

	// Largest mantissa that still takes another decimal digit.
	maxMantissa = (gomath.MaxUint64 - 9) / 10

	pendingNone = KeywordInvalid
)

// registers is the mutable parse state between bytes. Number registers are
// reset after each commit, line registers after each finished line.
type registers struct {
	mantissa uint64 // significant decimal digits
	exp      int    // value = mantissa * 10^exp
	negative bool
	digits   int

	keyword keywordBuffer
	pending KeywordKind

	fields  [maxFields]float64
	nfields int

	corners  [maxCorners]Corner
	ncorners int
	slot     int
}

func (r *registers) resetNumber() {
	r.mantissa = 0
	r.exp = 0
	r.negative = false
	r.digits = 0
}

func (r *registers) resetLine() {
	r.resetNumber()
	r.pending = pendingNone
	r.nfields = 0
	r.ncorners = 0
	r.slot = 0
	r.corners = [maxCorners]Corner{}
}

func (r *registers) number() float64 {
	v := float64(r.mantissa)
	switch {
	case r.mantissa == 0:
	case r.exp > 0:
		v *= gomath.Pow10(r.exp)
	case r.exp < 0:
		v /= gomath.Pow10(-r.exp)
	}
	if r.negative {
		v = -v
	}
	return v
}

// addIntegral appends an integral digit. Once the mantissa is full the
// digit is dropped and only its magnitude kept.
func (r *registers) addIntegral(d uint64) {
	if r.mantissa > maxMantissa {
		r.exp++
	} else {
		r.mantissa = r.mantissa*10 + d
	}
	r.digits++
}

// addFractional appends a fractional digit. Leading zeros only shift the
// exponent; digits past the mantissa's precision are dropped.
func (r *registers) addFractional(d uint64) {
	if r.mantissa <= maxMantissa {
		r.mantissa = r.mantissa*10 + d
		r.exp--
	}
	r.digits++
}

// closesLine reports whether b, the byte that committed a token, also ends
// the line.
func closesLine(b byte) bool {
	return Classify(b) != ClassSpace
}

// execute performs action a for byte b. next is the state chosen by the
// table; keyword resolution may redirect it.
func (p *parser) execute(a Action, b byte, next State) (State, error) {
	r := &p.reg
	switch a {
	case ActionHalt, ActionSkip:

	case ActionAccumulateKeywordChar:
		r.keyword.add(b)

	case ActionResolveKeyword:
		return p.resolveKeyword(b, next)

	case ActionSetSignPositive:
		r.negative = false

	case ActionSetSignNegative:
		r.negative = true

	case ActionAccumulateInteger:
		r.addIntegral(uint64(b - '0'))

	case ActionAccumulateDecimal:
		r.addFractional(uint64(b - '0'))

	case ActionCommitNumber:
		if r.digits == 0 {
			return next, p.fail(ErrStructural, "number has no digits")
		}
		if r.nfields == maxFields {
			return next, p.fail(ErrStructural, "too many values for %s line", r.pending)
		}
		v := r.number()
		if gomath.IsInf(float64(float32(v)), 0) {
			return next, p.fail(ErrStructural, "number out of float32 range")
		}
		r.fields[r.nfields] = v
		r.nfields++
		r.resetNumber()
		if closesLine(b) {
			return next, p.finishLine()
		}

	case ActionCommitIndex:
		return next, p.commitIndex(b)

	case ActionEndLine:
		return next, p.finishLine()
	}
	return next, nil
}

func (p *parser) resolveKeyword(b byte, next State) (State, error) {
	r := &p.reg
	kind := r.keyword.kind()
	switch kind {
	case KeywordInvalid:
		err := p.fail(ErrUnknownKeyword, "unrecognized keyword")
		err.Token = r.keyword.token()
		return next, err

	case KeywordUnsupported:
		p.skipped++
		if ce := p.log.Check(zap.DebugLevel, "skipping unsupported keyword"); ce != nil {
			ce.Write(zap.String("keyword", r.keyword.token()), zap.Int("line", p.line))
		}
		r.keyword.reset()
		if next == StateAfterKeyword {
			return StateComment, nil
		}
		return next, nil
	}

	r.keyword.reset()
	r.resetLine()
	r.pending = kind
	if kind == KeywordFace && next == StateAfterKeyword {
		next = StateBetweenIndexes
	}
	if closesLine(b) {
		return next, p.finishLine()
	}
	return next, nil
}

// commitIndex stores the index register into the current slot. A slash
// moves to the next slot; anything else closes the corner.
func (p *parser) commitIndex(b byte) error {
	r := &p.reg
	if r.slot >= 3 {
		return p.fail(ErrMalformedFace, "too many indices in face corner")
	}
	if r.ncorners == maxCorners {
		return p.fail(ErrMalformedFace, "face has more than %d corners", maxCorners)
	}
	if r.digits == 0 && r.slot == 0 {
		return p.fail(ErrMalformedFace, "face corner is missing its vertex index")
	}

	c := &r.corners[r.ncorners]
	if r.digits > 0 {
		if r.exp != 0 || r.mantissa > gomath.MaxUint32 {
			return p.fail(ErrStructural, "face index too large")
		}
		idx := uint32(r.mantissa)
		switch r.slot {
		case 0:
			c.V = idx
			c.Slots |= SlotVertex
		case 1:
			c.T = idx
			c.Slots |= SlotTexCoord
		case 2:
			c.N = idx
			c.Slots |= SlotNormal
		}
	}
	r.resetNumber()

	if b == '/' {
		r.slot++
		return nil
	}
	r.ncorners++
	r.slot = 0
	if closesLine(b) {
		return p.finishLine()
	}
	return nil
}

// finishLine validates the pending record and appends it to the geometry.
// Nothing is appended for a rejected line.
func (p *parser) finishLine() error {
	r := &p.reg
	f := &r.fields
	g := p.geo

	switch r.pending {
	case KeywordVertex:
		if r.nfields < 3 {
			return p.fail(ErrStructural, "vertex needs 3 or 4 values, got %d", r.nfields)
		}
		g.Positions = append(g.Positions, math.Vec3{X: float32(f[0]), Y: float32(f[1]), Z: float32(f[2])})

	case KeywordTexCoord:
		if r.nfields < 2 || r.nfields > 3 {
			return p.fail(ErrStructural, "texture coordinate needs 2 or 3 values, got %d", r.nfields)
		}
		g.TexCoords = append(g.TexCoords, math.Vec2{X: float32(f[0]), Y: float32(f[1])})

	case KeywordNormal:
		if r.nfields != 3 {
			return p.fail(ErrStructural, "normal needs 3 values, got %d", r.nfields)
		}
		g.Normals = append(g.Normals, math.Vec3{X: float32(f[0]), Y: float32(f[1]), Z: float32(f[2])})

	case KeywordFace:
		if r.ncorners != maxCorners {
			return p.fail(ErrMalformedFace, "face needs exactly %d corners, got %d", maxCorners, r.ncorners)
		}
		g.Faces = append(g.Faces, Face(r.corners))
	}

	r.resetLine()
	return nil
}
