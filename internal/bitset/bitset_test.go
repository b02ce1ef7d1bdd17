package bitset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_AllClear(t *testing.T) {
	s := New(130)
	assert.Equal(t, 130, s.Len())
	assert.Equal(t, 0, s.Count())
	for i := 0; i < s.Len(); i++ {
		require.False(t, s.Test(i), "bit %d", i)
	}
}

func TestSetAll_KeepsPaddingClear(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{name: "empty", n: 0},
		{name: "one", n: 1},
		{name: "word aligned", n: 128},
		{name: "partial word", n: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.n)
			s.SetAll()
			assert.Equal(t, tt.n, s.Count())
		})
	}
}

func TestSetClearTest(t *testing.T) {
	s := New(70)
	s.Set(0)
	s.Set(63)
	s.Set(64)
	s.Set(69)
	assert.True(t, s.Test(0))
	assert.True(t, s.Test(63))
	assert.True(t, s.Test(64))
	assert.True(t, s.Test(69))
	assert.False(t, s.Test(1))
	assert.Equal(t, 4, s.Count())

	s.Clear(63)
	s.Clear(63)
	assert.False(t, s.Test(63))
	assert.True(t, s.Test(64))
	assert.Equal(t, 3, s.Count())
}

func TestOutOfRangePanics(t *testing.T) {
	s := New(10)
	assert.Panics(t, func() { s.Test(10) })
	assert.Panics(t, func() { s.Set(-1) })
	assert.Panics(t, func() { s.Clear(63) })
}
