package wavefront

import "fmt"

// State is a state of the OBJ automaton.
type State uint8

// Automaton states. StateStart is initial; StateError and StateEnd are
// terminal.
const (
	StateStart State = iota
	StateError
	StateEnd
	StateComment
	StateReturn
	StateEscape
	StateKeyword
	StateAfterKeyword
	StateBetweenIndexes
	StateIndex
	StatePlus
	StateMinus
	StateInteger
	StateDecimal

	numStates
)

var stateNames = [numStates]string{
	"Start", "Error", "End", "Comment", "Return", "Escape", "Keyword",
	"AfterKeyword", "BetweenIndexes", "Index", "Plus", "Minus", "Integer",
	"Decimal",
}

// String returns the state name.
func (s State) String() string {
	if s < numStates {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", s)
}

// IsTerminal reports whether no further input is consumed in s.
func (s State) IsTerminal() bool {
	return s == StateError || s == StateEnd
}

// Action is the side effect attached to a transition.
type Action uint8

// Actions performed by the executor.
const (
	ActionHalt Action = iota
	ActionSkip
	ActionAccumulateKeywordChar
	ActionResolveKeyword
	ActionCommitNumber
	ActionSetSignPositive
	ActionSetSignNegative
	ActionAccumulateInteger
	ActionAccumulateDecimal
	ActionCommitIndex // closes a face index slot on '/', a corner otherwise
	ActionEndLine     // finishes a data line after trailing whitespace

	numActions
)

var actionNames = [numActions]string{
	"Halt", "Skip", "AccumulateKeywordChar", "ResolveKeyword", "CommitNumber",
	"SetSignPositive", "SetSignNegative", "AccumulateInteger",
	"AccumulateDecimal", "CommitIndex", "EndLine",
}

// String returns the action name.
func (a Action) String() string {
	if a < numActions {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", a)
}

// Transition is one cell of the transition table. Message is set only on
// transitions into StateError.
type Transition struct {
	Next    State
	Action  Action
	Message string
}

var transitions [numStates][numByteClasses]Transition

// Step returns the transition taken from s on a byte of class c.
func Step(s State, c ByteClass) Transition {
	return transitions[s][c]
}

// row fills every class of s with an error transition carrying msg.
func row(s State, msg string) *[numByteClasses]Transition {
	r := &transitions[s]
	for c := range r {
		r[c] = Transition{Next: StateError, Action: ActionHalt, Message: msg}
	}
	return r
}

func set(r *[numByteClasses]Transition, next State, action Action, classes ...ByteClass) {
	for _, c := range classes {
		r[c] = Transition{Next: next, Action: action}
	}
}

func fail(r *[numByteClasses]Transition, msg string, classes ...ByteClass) {
	for _, c := range classes {
		r[c] = Transition{Next: StateError, Action: ActionHalt, Message: msg}
	}
}

// lineEnds sets the four ways a line can end from a data state: space
// keeps the line open, the rest close it.
func lineEnds(r *[numByteClasses]Transition, open State, action Action) {
	set(r, open, action, ClassSpace)
	set(r, StateStart, action, ClassLineFeed)
	set(r, StateReturn, action, ClassCarriageReturn)
	set(r, StateEnd, action, ClassNil)
	set(r, StateEscape, action, ClassBackslash)
}

const (
	msgInlineComment = "comment must begin at start of line"
	msgExponent      = "exponent notation is not supported"
)

func initTransitions() {
	var r *[numByteClasses]Transition

	r = row(StateStart, "invalid character found at start of line")
	set(r, StateEnd, ActionHalt, ClassNil)
	set(r, StateStart, ActionSkip, ClassSpace, ClassLineFeed)
	set(r, StateReturn, ActionSkip, ClassCarriageReturn)
	set(r, StateEscape, ActionSkip, ClassBackslash)
	set(r, StateComment, ActionSkip, ClassHash)
	set(r, StateKeyword, ActionAccumulateKeywordChar, ClassKeywordChar, ClassExponentChar)
	fail(r, "control character found at start of line", ClassControl)
	fail(r, "number found at start of line", ClassDigit, ClassDigitTwo)
	fail(r, "dot found at start of line", ClassPoint)
	fail(r, "sign found at start of line", ClassPlus, ClassMinus)
	fail(r, "slash found at start of line", ClassSlash)

	r = &transitions[StateError]
	for c := range r {
		r[c] = Transition{Next: StateError, Action: ActionHalt}
	}
	r = &transitions[StateEnd]
	for c := range r {
		r[c] = Transition{Next: StateEnd, Action: ActionHalt}
	}

	r = &transitions[StateComment]
	for c := range r {
		r[c] = Transition{Next: StateComment, Action: ActionSkip}
	}
	set(r, StateEnd, ActionHalt, ClassNil)
	set(r, StateReturn, ActionSkip, ClassCarriageReturn)
	set(r, StateStart, ActionSkip, ClassLineFeed)

	r = row(StateReturn, "expected line feed after carriage return")
	set(r, StateStart, ActionSkip, ClassLineFeed)

	r = row(StateEscape, "expected line feed after backslash")
	set(r, StateEscape, ActionSkip, ClassSpace)
	set(r, StateReturn, ActionSkip, ClassCarriageReturn)
	set(r, StateStart, ActionSkip, ClassLineFeed)
	set(r, StateEnd, ActionHalt, ClassNil)

	r = row(StateKeyword, "invalid character in keyword")
	set(r, StateKeyword, ActionAccumulateKeywordChar, ClassKeywordChar, ClassExponentChar, ClassDigitTwo)
	lineEnds(r, StateAfterKeyword, ActionResolveKeyword)
	fail(r, "control character in keyword", ClassControl)
	fail(r, msgInlineComment, ClassHash)

	r = row(StateAfterKeyword, "invalid character, expected number")
	lineEnds(r, StateAfterKeyword, ActionEndLine)
	set(r, StateAfterKeyword, ActionSkip, ClassSpace)
	set(r, StateInteger, ActionAccumulateInteger, ClassDigit, ClassDigitTwo)
	set(r, StateDecimal, ActionSkip, ClassPoint)
	set(r, StatePlus, ActionSetSignPositive, ClassPlus)
	set(r, StateMinus, ActionSetSignNegative, ClassMinus)
	fail(r, "control character in data line", ClassControl)
	fail(r, msgInlineComment, ClassHash)

	for _, s := range []State{StatePlus, StateMinus} {
		r = row(s, "expected digit after sign")
		set(r, StateInteger, ActionAccumulateInteger, ClassDigit, ClassDigitTwo)
		set(r, StateDecimal, ActionSkip, ClassPoint)
	}

	r = row(StateInteger, "invalid character in number")
	lineEnds(r, StateAfterKeyword, ActionCommitNumber)
	set(r, StateInteger, ActionAccumulateInteger, ClassDigit, ClassDigitTwo)
	set(r, StateDecimal, ActionSkip, ClassPoint)
	fail(r, msgExponent, ClassExponentChar)
	fail(r, msgInlineComment, ClassHash)

	r = row(StateDecimal, "invalid character in number")
	lineEnds(r, StateAfterKeyword, ActionCommitNumber)
	set(r, StateDecimal, ActionAccumulateDecimal, ClassDigit, ClassDigitTwo)
	fail(r, "second decimal point in number", ClassPoint)
	fail(r, msgExponent, ClassExponentChar)
	fail(r, msgInlineComment, ClassHash)

	r = row(StateBetweenIndexes, "invalid character in face")
	lineEnds(r, StateBetweenIndexes, ActionEndLine)
	set(r, StateBetweenIndexes, ActionSkip, ClassSpace)
	set(r, StateIndex, ActionAccumulateInteger, ClassDigit, ClassDigitTwo)
	set(r, StateIndex, ActionCommitIndex, ClassSlash)
	fail(r, "face indices must be unsigned", ClassPlus, ClassMinus)
	fail(r, "face indices must be integers", ClassPoint)
	fail(r, msgInlineComment, ClassHash)

	r = row(StateIndex, "invalid character in face")
	lineEnds(r, StateBetweenIndexes, ActionCommitIndex)
	set(r, StateIndex, ActionAccumulateInteger, ClassDigit, ClassDigitTwo)
	set(r, StateIndex, ActionCommitIndex, ClassSlash)
	fail(r, "face indices must be unsigned", ClassPlus, ClassMinus)
	fail(r, "face indices must be integers", ClassPoint)
	fail(r, msgInlineComment, ClassHash)
}

func init() {
	initByteClasses()
	initTransitions()
	initKeywords()
}
