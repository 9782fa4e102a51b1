package uncontrolled

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[V any](v V) *V { return &v }

func nonEmpty(s string) bool { return s != "" }

func TestNewUsesValidDefault(t *testing.T) {
	t.Parallel()

	c := New(Options[string]{Default: ptr("hello"), Final: "final", Validate: nonEmpty})
	require.Equal(t, "hello", c.Value())
	require.Equal(t, ModeUncontrolled, c.Mode())
}

func TestNewReplacesInvalidDefaultWithFinal(t *testing.T) {
	t.Parallel()

	c := New(Options[string]{Default: ptr(""), Final: "final", Validate: nonEmpty})
	require.Equal(t, "final", c.Value())
}

func TestNewWithoutDefaultUsesFinal(t *testing.T) {
	t.Parallel()

	c := New(Options[int]{Final: 7})
	require.Equal(t, 7, c.Value())
}

func TestNewWithValueStartsControlled(t *testing.T) {
	t.Parallel()

	c := New(Options[int]{Value: ptr(3), Default: ptr(1)})
	require.True(t, c.Controlled())
	require.Equal(t, 3, c.Value())
}

func TestSetRejectsInvalidCandidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		controlled bool
	}{
		{"uncontrolled", false},
		{"controlled", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			calls := 0
			c := New(Options[string]{
				Default:  ptr("keep"),
				Validate: nonEmpty,
				OnChange: func(string) { calls++ },
			})
			if tt.controlled {
				c.Control("owner")
			}
			before := c.Value()

			outcome := c.Set("")

			assert.Equal(t, Rejected, outcome)
			assert.False(t, outcome.Accepted())
			assert.Equal(t, before, c.Value())
			assert.Zero(t, calls)
		})
	}
}

func TestSetStoresWhenUncontrolled(t *testing.T) {
	t.Parallel()

	var seen []string
	c := New(Options[string]{OnChange: func(v string) { seen = append(seen, v) }})

	require.Equal(t, Stored, c.Set("a"))
	require.Equal(t, "a", c.Value())
	require.Equal(t, Stored, c.Set("b"))
	require.Equal(t, "b", c.Value())
	require.Equal(t, []string{"a", "b"}, seen)
}

func TestSetForwardsWhenControlled(t *testing.T) {
	t.Parallel()

	var seen []int
	c := New(Options[int]{Default: ptr(1), OnChange: func(v int) { seen = append(seen, v) }})
	c.Control(10)

	require.Equal(t, Forwarded, c.Set(11))
	require.Equal(t, 10, c.Value(), "owner has not re-supplied the value yet")
	require.Equal(t, []int{11}, seen)

	c.Control(11)
	require.Equal(t, 11, c.Value())
}

func TestControlledValueWinsOverPriorSets(t *testing.T) {
	t.Parallel()

	c := New(Options[int]{})
	c.Set(4)
	c.Set(5)
	c.Control(9)
	c.Set(6)

	require.Equal(t, 9, c.Value())
}

func TestReleaseResetsToFinal(t *testing.T) {
	t.Parallel()

	c := New(Options[string]{Default: ptr("typed"), Final: ""})
	c.Control("owner")
	c.Release()

	require.Equal(t, ModeUncontrolled, c.Mode())
	require.Equal(t, "", c.Value())
}

func TestReleaseWhenUncontrolledIsNoop(t *testing.T) {
	t.Parallel()

	c := New(Options[string]{Default: ptr("typed")})
	c.Release()
	require.Equal(t, "typed", c.Value())
}

func TestSyncSwitchesModes(t *testing.T) {
	t.Parallel()

	c := New(Options[int]{Final: -1})
	c.Sync(ptr(2))
	require.True(t, c.Controlled())
	require.Equal(t, 2, c.Value())

	c.Sync(nil)
	require.False(t, c.Controlled())
	require.Equal(t, -1, c.Value())
}

func TestModeAndOutcomeStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "controlled", ModeControlled.String())
	assert.Equal(t, "uncontrolled", ModeUncontrolled.String())
	assert.Equal(t, "rejected", Rejected.String())
	assert.Equal(t, "forwarded", Forwarded.String())
	assert.Equal(t, "stored", Stored.String())
}

func TestStoreReplacesSilently(t *testing.T) {
	t.Parallel()

	var changes []string
	c := New(Options[string]{Final: "a", Validate: nonEmpty, OnChange: func(v string) { changes = append(changes, v) }})

	require.True(t, c.Store("b"))
	require.Equal(t, "b", c.Value())

	require.False(t, c.Store(""))
	require.Equal(t, "b", c.Value())
	require.Empty(t, changes)
}
