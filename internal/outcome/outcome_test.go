package outcome_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rgit/internal/outcome"
)

var errBoom = errors.New("boom")

func mustNotCall[T, R any](t *testing.T) func(T) R {
	return func(T) R {
		t.Helper()
		panic("function must not be called")
	}
}

func TestConstructors(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		o := outcome.Success[int, error](42)
		assert.True(t, o.IsSuccess())
		assert.False(t, o.IsFailure())
		assert.Equal(t, 42, o.Value())
		assert.PanicsWithValue(t, "outcome: Err called on success", func() { o.Err() })
	})

	t.Run("failure", func(t *testing.T) {
		o := outcome.Failure[int](errBoom)
		assert.True(t, o.IsFailure())
		assert.Equal(t, errBoom, o.Err())
		assert.Panics(t, func() { o.Value() })
	})

	t.Run("zero value holds neither variant", func(t *testing.T) {
		var o outcome.Outcome[int, error]
		assert.Panics(t, func() { o.IsSuccess() })
		assert.Panics(t, func() { o.Value() })
		assert.Panics(t, func() { o.Err() })
		assert.Equal(t, "Outcome(<unset>)", o.String())
	})

	t.Run("from result", func(t *testing.T) {
		assert.Equal(t, 7, outcome.FromResult(7, nil).Value())
		assert.ErrorIs(t, outcome.FromResult(0, errBoom).Err(), errBoom)
	})

	t.Run("get", func(t *testing.T) {
		v, _, ok := outcome.Success[string, int]("x").Get()
		assert.True(t, ok)
		assert.Equal(t, "x", v)

		_, e, ok := outcome.Failure[string](3).Get()
		assert.False(t, ok)
		assert.Equal(t, 3, e)
	})
}

func TestMatch(t *testing.T) {
	t.Run("success uses onSuccess only", func(t *testing.T) {
		got := outcome.Match(outcome.Success[int, error](2),
			func(v int) string { return strconv.Itoa(v * 10) },
			mustNotCall[error, string](t),
		)
		assert.Equal(t, "20", got)
	})

	t.Run("failure uses onFailure only", func(t *testing.T) {
		got := outcome.Match(outcome.Failure[int](errBoom),
			mustNotCall[int, string](t),
			func(e error) string { return e.Error() },
		)
		assert.Equal(t, "boom", got)
	})
}

func TestMap(t *testing.T) {
	t.Run("maps success", func(t *testing.T) {
		o := outcome.Map(outcome.Success[int, error](3), strconv.Itoa)
		assert.Equal(t, "3", o.Value())
	})

	t.Run("failure is untouched", func(t *testing.T) {
		o := outcome.Map(outcome.Failure[int](errBoom), mustNotCall[int, string](t))
		require.True(t, o.IsFailure())
		assert.Equal(t, errBoom, o.Err())
	})
}

func TestMapFailure(t *testing.T) {
	t.Run("maps failure", func(t *testing.T) {
		o := outcome.MapFailure(outcome.Failure[int](errBoom), func(e error) string { return "wrapped " + e.Error() })
		assert.Equal(t, "wrapped boom", o.Err())
	})

	t.Run("success is untouched", func(t *testing.T) {
		o := outcome.MapFailure(outcome.Success[int, error](9), mustNotCall[error, string](t))
		assert.Equal(t, 9, o.Value())
	})
}

func TestBind(t *testing.T) {
	half := func(v int) outcome.Outcome[int, error] {
		if v%2 != 0 {
			return outcome.Failure[int](errors.New("odd: " + strconv.Itoa(v)))
		}
		return outcome.Success[int, error](v / 2)
	}

	t.Run("chains successes", func(t *testing.T) {
		o := outcome.Bind(outcome.Bind(outcome.Success[int, error](8), half), half)
		assert.Equal(t, 2, o.Value())
	})

	t.Run("stops at first failure", func(t *testing.T) {
		calls := 0
		counted := func(v int) outcome.Outcome[int, error] {
			calls++
			return half(v)
		}
		o := outcome.Bind(outcome.Bind(outcome.Bind(outcome.Success[int, error](6), counted), counted), counted)
		assert.EqualError(t, o.Err(), "odd: 3")
		assert.Equal(t, 2, calls)
	})

	t.Run("failure short-circuits", func(t *testing.T) {
		o := outcome.Bind(outcome.Failure[int](errBoom), mustNotCall[int, outcome.Outcome[int, error]](t))
		assert.Equal(t, errBoom, o.Err())
	})

	t.Run("associative", func(t *testing.T) {
		f := func(v int) outcome.Outcome[int, error] { return outcome.Success[int, error](v + 1) }
		g := half
		inputs := []outcome.Outcome[int, error]{
			outcome.Success[int, error](1),
			outcome.Success[int, error](2),
			outcome.Success[int, error](5),
			outcome.Failure[int](errBoom),
		}
		for _, o := range inputs {
			left := outcome.Bind(outcome.Bind(o, f), g)
			right := outcome.Bind(o, func(v int) outcome.Outcome[int, error] {
				return outcome.Bind(f(v), g)
			})
			assert.Equal(t, left.String(), right.String(), "input %s", o)
		}
	})
}
