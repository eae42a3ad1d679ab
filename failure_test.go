package objpool

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("init exploded")

func TestInitErrorRollsBack(t *testing.T) {
	var dtors atomic.Int64
	p, err := New[counted](1)
	require.NoError(t, err)
	defer p.Release()

	h, err := p.Make(func(c *counted) error {
		c.dtors = &dtors
		return errBoom
	})
	require.ErrorIs(t, err, errBoom, "init failure must propagate unchanged")
	require.Nil(t, h)

	assert.Equal(t, 0, p.Used())
	assert.Equal(t, int64(0), dtors.Load(), "a failed construction must not be torn down")
}

func TestInitErrorSlotReused(t *testing.T) {
	p, err := New[counted](2)
	require.NoError(t, err)
	defer p.Release()

	var failedAddr *counted
	_, err = p.Make(func(c *counted) error {
		failedAddr = c
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)
	require.Equal(t, 0, p.Used())

	h, err := p.Make(nil)
	require.NoError(t, err)
	defer h.Reset()

	assert.Same(t, failedAddr, h.Get(), "the rolled-back slot must be reused first")
}

func TestRepeatedInitFailuresDoNotExhaust(t *testing.T) {
	p, err := New[counted](1)
	require.NoError(t, err)
	defer p.Release()

	for i := 0; i < 5; i++ {
		_, err := p.Make(func(*counted) error { return errBoom })
		require.ErrorIs(t, err, errBoom)
		require.Equal(t, 0, p.Used())
	}

	h, err := p.Make(nil)
	require.NoError(t, err)
	require.True(t, h.Valid())
	h.Reset()
}

func TestInitFailureDoesNotLeakCapacity(t *testing.T) {
	p, err := New[counted](2)
	require.NoError(t, err)
	defer p.Release()

	_, err = p.Make(func(*counted) error { return errBoom })
	require.ErrorIs(t, err, errBoom)
	require.Equal(t, 0, p.Used())

	h1, err := p.Make(nil)
	require.NoError(t, err)
	h2, err := p.Make(nil)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Used())

	h1.Reset()
	h2.Reset()
}

func TestInitPanicRollsBack(t *testing.T) {
	p, err := New[counted](1)
	require.NoError(t, err)
	defer p.Release()

	func() {
		defer func() {
			r := recover()
			require.Equal(t, "ctor panic", r, "the panic must propagate unchanged")
		}()
		_, _ = p.Make(func(*counted) error { panic("ctor panic") })
		t.Error("Make must not return after a panicking init")
	}()

	assert.Equal(t, 0, p.Used())

	// The slot went back onto the free list and is usable again.
	h, err := p.Make(nil)
	require.NoError(t, err)
	require.True(t, h.Valid())
	h.Reset()
}
