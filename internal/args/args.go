// Package args holds the raw command-line tokens handed to rgit.
package args

// Sequence is an immutable list of raw tokens. The first token names the
// command.
type Sequence struct {
	tokens []string
}

// New copies tokens into a Sequence.
func New(tokens []string) Sequence {
	return Sequence{tokens: append([]string(nil), tokens...)}
}

// Command returns the leading token. Calling it on an empty Sequence is a
// programming error and panics.
func (s Sequence) Command() string {
	if len(s.tokens) == 0 {
		panic("args: command requested from empty argument sequence")
	}
	return s.tokens[0]
}

func (s Sequence) Empty() bool { return len(s.tokens) == 0 }

func (s Sequence) Len() int { return len(s.tokens) }

// Rest returns a copy of the tokens after the command.
func (s Sequence) Rest() []string {
	if len(s.tokens) < 2 {
		return nil
	}
	return append([]string(nil), s.tokens[1:]...)
}

// Tokens returns a copy of every token.
func (s Sequence) Tokens() []string {
	return append([]string(nil), s.tokens...)
}
