package wavefront

import "fmt"

// ByteClass is the character class of a single input byte.
type ByteClass uint8

// Byte classes. Every byte value maps to exactly one class.
const (
	ClassNil            ByteClass = iota // 0x00, also used for end of input
	ClassControl                         // other bytes below 0x20, and 0x7f
	ClassOther                           // anything not listed below
	ClassSpace                           // ' ', '\t'
	ClassCarriageReturn                  // '\r'
	ClassLineFeed                        // '\n'
	ClassBackslash                       // '\\'
	ClassHash                            // '#'
	ClassKeywordChar                     // letters used by keywords, and '_'
	ClassExponentChar                    // 'e', 'E'
	ClassDigitTwo                        // '2'
	ClassDigit                           // '0'-'9' except '2'
	ClassPoint                           // '.'
	ClassPlus                            // '+'
	ClassMinus                           // '-'
	ClassSlash                           // '/'

	numByteClasses
)

var classNames = [numByteClasses]string{
	"Nil", "Control", "Other", "Space", "CarriageReturn", "LineFeed",
	"Backslash", "Hash", "KeywordChar", "ExponentChar", "DigitTwo", "Digit",
	"Point", "Plus", "Minus", "Slash",
}

// String returns the class name.
func (c ByteClass) String() string {
	if c < numByteClasses {
		return classNames[c]
	}
	return fmt.Sprintf("ByteClass(%d)", c)
}

// keywordLetters are all lowercase letters appearing in the keyword
// vocabulary, minus 'e' which has its own class.
const keywordLetters = "_abcdfghijlmnoprstuvwy"

var byteClasses [256]ByteClass

func initByteClasses() {
	for i := range byteClasses {
		b := byte(i)
		switch {
		case b == 0:
			byteClasses[i] = ClassNil
		case b == '\t' || b == ' ':
			byteClasses[i] = ClassSpace
		case b == '\r':
			byteClasses[i] = ClassCarriageReturn
		case b == '\n':
			byteClasses[i] = ClassLineFeed
		case b < 0x20 || b == 0x7f:
			byteClasses[i] = ClassControl
		case b == '2':
			byteClasses[i] = ClassDigitTwo
		case b >= '0' && b <= '9':
			byteClasses[i] = ClassDigit
		default:
			byteClasses[i] = ClassOther
		}
	}

	for i := 0; i < len(keywordLetters); i++ {
		byteClasses[keywordLetters[i]] = ClassKeywordChar
	}
	byteClasses['e'] = ClassExponentChar
	byteClasses['E'] = ClassExponentChar
	byteClasses['\\'] = ClassBackslash
	byteClasses['#'] = ClassHash
	byteClasses['.'] = ClassPoint
	byteClasses['+'] = ClassPlus
	byteClasses['-'] = ClassMinus
	byteClasses['/'] = ClassSlash
}

// Classify returns the class of b.
func Classify(b byte) ByteClass {
	return byteClasses[b]
}
