package wavefront

import "fmt"

// KeywordKind is the meaning of a line keyword.
type KeywordKind uint8

// Keyword kinds. Only the four data kinds produce geometry; every other
// known keyword is Unsupported and its line is skipped.
const (
	KeywordInvalid KeywordKind = iota
	KeywordUnsupported
	KeywordVertex
	KeywordTexCoord
	KeywordNormal
	KeywordFace
)

// String returns the kind name.
func (k KeywordKind) String() string {
	switch k {
	case KeywordInvalid:
		return "Invalid"
	case KeywordUnsupported:
		return "Unsupported"
	case KeywordVertex:
		return "Vertex"
	case KeywordTexCoord:
		return "TexCoord"
	case KeywordNormal:
		return "Normal"
	case KeywordFace:
		return "Face"
	default:
		return fmt.Sprintf("KeywordKind(%d)", k)
	}
}

// Perfect hash over the keyword vocabulary:
//
//	hash = len + assoc[tok[0]]                  (len == 1)
//	hash = len + assoc[tok[0]] + assoc[tok[1]]  (len >= 2)
//
// Bytes outside the vocabulary map to assocMiss, which pushes the hash
// past maxHash.
const (
	maxKeywordLen = 10 // "shadow_obj"
	maxHash       = 72
	assocMiss     = maxHash + 1
)

type keywordEntry struct {
	key  string
	kind KeywordKind
}

var (
	assoc          [256]uint8
	keywordEntries [maxHash + 1]keywordEntry
)

// keywordVocabulary is the whole Wavefront keyword set, in the order it is
// listed by Keywords.
var keywordVocabulary = []keywordEntry{
	{"v", KeywordVertex},
	{"vt", KeywordTexCoord},
	{"vn", KeywordNormal},
	{"f", KeywordFace},

	{"vp", KeywordUnsupported},
	{"deg", KeywordUnsupported},
	{"bmat", KeywordUnsupported},
	{"step", KeywordUnsupported},
	{"cstype", KeywordUnsupported},
	{"p", KeywordUnsupported},
	{"l", KeywordUnsupported},
	{"curv", KeywordUnsupported},
	{"curv2", KeywordUnsupported},
	{"surf", KeywordUnsupported},
	{"parm", KeywordUnsupported},
	{"trim", KeywordUnsupported},
	{"hole", KeywordUnsupported},
	{"scrv", KeywordUnsupported},
	{"sp", KeywordUnsupported},
	{"end", KeywordUnsupported},
	{"con", KeywordUnsupported},
	{"g", KeywordUnsupported},
	{"s", KeywordUnsupported},
	{"mg", KeywordUnsupported},
	{"o", KeywordUnsupported},
	{"bevel", KeywordUnsupported},
	{"c_interp", KeywordUnsupported},
	{"d_interp", KeywordUnsupported},
	{"lod", KeywordUnsupported},
	{"usemtl", KeywordUnsupported},
	{"mtllib", KeywordUnsupported},
	{"shadow_obj", KeywordUnsupported},
	{"trace_obj", KeywordUnsupported},
	{"ctech", KeywordUnsupported},
	{"stech", KeywordUnsupported},
}

func initKeywords() {
	for i := range assoc {
		assoc[i] = assocMiss
	}
	for c, v := range map[byte]uint8{
		'_': 5, 'a': 10, 'b': 5, 'c': 10, 'd': 0, 'e': 0, 'f': 45, 'g': 40,
		'h': 15, 'l': 30, 'm': 30, 'n': 5, 'o': 25, 'p': 20, 'r': 20, 's': 0,
		't': 0, 'u': 5, 'v': 5,
	} {
		assoc[c] = v
	}

	for _, e := range keywordVocabulary {
		h := hashKeyword([]byte(e.key), len(e.key))
		if h > maxHash || keywordEntries[h].key != "" {
			panic(fmt.Sprintf("wavefront: keyword %q is not perfectly hashed (slot %d)", e.key, h))
		}
		keywordEntries[h] = e
	}
}

func hashKeyword(tok []byte, n int) uint {
	h := uint(n) + uint(assoc[tok[0]])
	if n > 1 {
		h += uint(assoc[tok[1]])
	}
	return h
}

// resolve looks up the first n bytes of tok. n may exceed len(tok) when
// the keyword register overflowed; such tokens are always invalid.
func resolve(tok []byte, n int) KeywordKind {
	if n == 0 || n > maxKeywordLen || n > len(tok) {
		return KeywordInvalid
	}
	h := hashKeyword(tok, n)
	if h > maxHash {
		return KeywordInvalid
	}
	e := &keywordEntries[h]
	if len(e.key) != n {
		return KeywordInvalid
	}
	for i := 0; i < n; i++ {
		if tok[i] != e.key[i] {
			return KeywordInvalid
		}
	}
	return e.kind
}

// Resolve returns the kind of a keyword token. It does not allocate.
func Resolve(tok []byte) KeywordKind {
	return resolve(tok, len(tok))
}

// Keywords returns every recognized keyword, data keywords first.
func Keywords() []string {
	out := make([]string, len(keywordVocabulary))
	for i, e := range keywordVocabulary {
		out[i] = e.key
	}
	return out
}

// keywordBuffer is the bounded keyword register. Bytes past the maximum
// keyword length are counted but not stored.
type keywordBuffer struct {
	buf [maxKeywordLen]byte
	n   int
}

func (k *keywordBuffer) add(b byte) {
	if k.n < maxKeywordLen {
		k.buf[k.n] = b
	}
	k.n++
}

func (k *keywordBuffer) kind() KeywordKind {
	return resolve(k.buf[:], k.n)
}

// token returns the stored bytes as a string, for diagnostics only.
func (k *keywordBuffer) token() string {
	if k.n > maxKeywordLen {
		return string(k.buf[:]) + "..."
	}
	return string(k.buf[:k.n])
}

func (k *keywordBuffer) reset() {
	k.n = 0
}
