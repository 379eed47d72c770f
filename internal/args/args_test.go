package args

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequence(t *testing.T) {
	t.Run("command is the first token", func(t *testing.T) {
		s := New([]string{"init"})
		assert.Equal(t, "init", s.Command())
		assert.False(t, s.Empty())
		assert.Equal(t, 1, s.Len())
		assert.Nil(t, s.Rest())
	})

	t.Run("rest excludes the command", func(t *testing.T) {
		s := New([]string{"commit", "-m", "msg"})
		assert.Equal(t, "commit", s.Command())
		assert.Equal(t, []string{"-m", "msg"}, s.Rest())
	})

	t.Run("empty sequence panics", func(t *testing.T) {
		s := New(nil)
		assert.True(t, s.Empty())
		assert.PanicsWithValue(t, "args: command requested from empty argument sequence", func() {
			s.Command()
		})
		assert.PanicsWithValue(t, "args: command requested from empty argument sequence", func() {
			New([]string{}).Command()
		})
	})

	t.Run("input and outputs are copies", func(t *testing.T) {
		raw := []string{"add", "file.txt"}
		s := New(raw)
		raw[0] = "push"
		assert.Equal(t, "add", s.Command())

		toks := s.Tokens()
		toks[1] = "other.txt"
		rest := s.Rest()
		rest[0] = "changed"
		assert.Equal(t, []string{"add", "file.txt"}, s.Tokens())
	})
}
