package strlist

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultCapacity(t *testing.T) {
	l := New[string](0)
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, DefaultCapacity, l.Cap())

	l = New[string](-3)
	assert.Equal(t, DefaultCapacity, l.Cap())

	l = New[string](12)
	assert.Equal(t, 12, l.Cap())
}

func TestAppend_PreservesOrder(t *testing.T) {
	l := New[string](3)
	tokens := []string{"-a", "b", "--long", "c", "-"}
	for _, tok := range tokens {
		require.NoError(t, l.Append(tok))
	}

	assert.Equal(t, len(tokens), l.Len())
	assert.Equal(t, tokens, l.Data())
	for i, tok := range tokens {
		assert.Equal(t, tok, l.At(i))
	}
}

func TestAppend_GrowsBeyondDefaultCapacity(t *testing.T) {
	l := New[string](0)
	require.Equal(t, DefaultCapacity, l.Cap())

	var want []string
	for i := 0; i < DefaultCapacity*4; i++ {
		tok := fmt.Sprintf("token-%d", i)
		want = append(want, tok)
		require.NoError(t, l.Append(tok))
	}

	assert.Equal(t, DefaultCapacity*4, l.Len())
	assert.GreaterOrEqual(t, l.Cap(), l.Len())
	assert.Equal(t, want, l.Data(), "growth must not lose or reorder elements")
}

func TestAppend_FixedCapacityOverflow(t *testing.T) {
	l := NewFixed[string](2)
	require.NoError(t, l.Append("a"))
	require.NoError(t, l.Append("b"))

	err := l.Append("c")
	require.Error(t, err)
	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, 2, capErr.Capacity)

	// The overflowing element must not be silently truncated in.
	assert.Equal(t, []string{"a", "b"}, l.Data())
}

func TestRelease(t *testing.T) {
	l := New[string](2)
	require.NoError(t, l.Append("a"))

	l.Release()
	assert.Equal(t, 0, l.Len())
	assert.Nil(t, l.Data())

	err := l.Append("b")
	assert.ErrorIs(t, err, ErrReleased)

	// Double release is a no-op.
	l.Release()
}

func TestNilList_Observers(t *testing.T) {
	var l *List[string]
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 0, l.Cap())
	assert.Nil(t, l.Data())
	l.Release()
}
