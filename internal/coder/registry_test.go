package coder_test

import (
	"sync"
	"testing"

	"github.com/AndrewDonelson/memoize/internal/coder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterGet(t *testing.T) {
	r := coder.NewRegistry()
	require.NoError(t, r.Register("json", coder.JSON{}))

	c, ok := r.Get("json")
	require.True(t, ok)
	assert.Equal(t, "json", c.Name())
}

func TestRegistry_GetMissing(t *testing.T) {
	r := coder.NewRegistry()
	c, ok := r.Get("nope")
	assert.False(t, ok)
	assert.Nil(t, c)
}

func TestRegistry_Overwrite(t *testing.T) {
	r := coder.NewRegistry()
	require.NoError(t, r.Register("bin", coder.Gob{}))
	require.NoError(t, r.Register("bin", coder.MsgPack{}))

	c, ok := r.Get("bin")
	require.True(t, ok)
	assert.Equal(t, "msgpack", c.Name())
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_RegisterInvalid(t *testing.T) {
	r := coder.NewRegistry()
	err := r.Register("bad", 123)
	assert.ErrorIs(t, err, coder.ErrInvalidCoder)
	_, ok := r.Get("bad")
	assert.False(t, ok)
}

func TestRegistry_Builtins(t *testing.T) {
	r := coder.NewRegistry()
	coder.RegisterBuiltins(r)

	for _, name := range []string{"", "none", "json", "gob", "msgpack"} {
		_, ok := r.Get(name)
		assert.True(t, ok, "builtin %q missing", name)
	}
}

// Registries are independent: populating one leaves another untouched.
func TestRegistry_Isolation(t *testing.T) {
	a := coder.NewRegistry()
	b := coder.NewRegistry()
	require.NoError(t, a.Register("only-a", coder.JSON{}))

	_, ok := b.Get("only-a")
	assert.False(t, ok)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := coder.NewRegistry()
	coder.RegisterBuiltins(r)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = r.Register("spin", coder.JSON{})
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, _ = r.Get("json")
			}
		}()
	}
	wg.Wait()
}
