package objpool

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// callbackRecorder captures error-callback invocations for assertions.
type callbackRecorder struct {
	calls    int
	lastMsg  string
	lastCode int
}

func (r *callbackRecorder) record(msg string, code int) {
	r.calls++
	r.lastMsg = msg
	r.lastCode = code
}

func TestErrorCallbackOnExhaustion(t *testing.T) {
	var rec callbackRecorder
	p, err := New[counted](1, WithErrorCallback(rec.record))
	require.NoError(t, err)
	defer p.Release()

	h1, err := p.Make(nil)
	require.NoError(t, err)
	require.True(t, h1.Valid())

	h2, err := p.Make(nil)
	require.NoError(t, err, "with a callback registered, exhaustion is not an error")
	require.NotNil(t, h2)
	assert.False(t, h2.Valid(), "exhaustion yields an empty handle")

	assert.Equal(t, 1, rec.calls)
	assert.Equal(t, CodeExhausted, rec.lastCode)
	assert.NotZero(t, rec.lastCode)
	assert.Equal(t, "object pool exhausted", rec.lastMsg)
	assert.Equal(t, 1, p.Used())

	h1.Reset()
}

func TestErrorCallbackOnZeroCapacity(t *testing.T) {
	var rec callbackRecorder
	p, err := New[counted](0, WithErrorCallback(rec.record))

	require.NoError(t, err)
	require.Nil(t, p, "the pool is never brought into existence")
	assert.Equal(t, 1, rec.calls)
	assert.Equal(t, CodeZeroCapacity, rec.lastCode)
	assert.Equal(t, "pool capacity cannot be 0", rec.lastMsg)
}

func TestErrorCallbackOnSizeOverflow(t *testing.T) {
	var rec callbackRecorder
	p, err := New[[64]byte](math.MaxInt/2, WithErrorCallback(rec.record))

	require.NoError(t, err)
	require.Nil(t, p)
	assert.Equal(t, 1, rec.calls)
	assert.Equal(t, CodeSizeOverflow, rec.lastCode)
	assert.Equal(t, "object pool size overflow", rec.lastMsg)
}

func TestErrorCallbackNotCalledOnInitFailure(t *testing.T) {
	var rec callbackRecorder
	p, err := New[counted](1, WithErrorCallback(rec.record))
	require.NoError(t, err)
	defer p.Release()

	_, err = p.Make(func(*counted) error { return errBoom })
	require.ErrorIs(t, err, errBoom, "construction failures always propagate, never reach the callback")
	assert.Zero(t, rec.calls)
}

func TestErrorCallbackPoolRemainsUsable(t *testing.T) {
	var rec callbackRecorder
	p, err := New[counted](1, WithErrorCallback(rec.record))
	require.NoError(t, err)
	defer p.Release()

	h1, err := p.Make(nil)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		empty, err := p.Make(nil)
		require.NoError(t, err)
		require.False(t, empty.Valid())
	}
	assert.Equal(t, 3, rec.calls, "one callback invocation per exhausted Make")

	h1.Reset()
	h2, err := p.Make(nil)
	require.NoError(t, err)
	require.True(t, h2.Valid())
	h2.Reset()
}
