package plot

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHandle struct {
	name      string
	destroyed bool
	events    *[]string
	err       error
}

func (f *fakeHandle) Target() Target { return Target{ID: f.name} }
func (f *fakeHandle) Config() Config { return Config{} }
func (f *fakeHandle) Destroy() error {
	f.destroyed = true
	*f.events = append(*f.events, "destroy "+f.name)
	return f.err
}

func TestRegistry_ReplaceDisposesBeforeBuild(t *testing.T) {
	var events []string
	r := NewRegistry()

	first := &fakeHandle{name: "first", events: &events}
	require.NoError(t, r.Replace("value", func() (Handle, error) {
		events = append(events, "build first")
		return first, nil
	}))

	second := &fakeHandle{name: "second", events: &events}
	require.NoError(t, r.Replace("value", func() (Handle, error) {
		events = append(events, "build second")
		return second, nil
	}))

	assert.Equal(t, []string{"build first", "destroy first", "build second"}, events)
	assert.True(t, first.destroyed)

	h, ok := r.Get("value")
	require.True(t, ok)
	assert.Same(t, second, h)
}

func TestRegistry_BuildFailureLeavesSlotEmpty(t *testing.T) {
	var events []string
	r := NewRegistry()
	require.NoError(t, r.Replace("value", func() (Handle, error) {
		return &fakeHandle{name: "a", events: &events}, nil
	}))

	err := r.Replace("value", func() (Handle, error) { return nil, errors.New("boom") })
	require.Error(t, err)

	_, ok := r.Get("value")
	assert.False(t, ok)
	assert.Equal(t, []string{"destroy a"}, events)
}

func TestRegistry_DisposeAndClose(t *testing.T) {
	var events []string
	r := NewRegistry()
	for _, name := range []Slot{"b", "a", "c"} {
		name := name
		require.NoError(t, r.Replace(name, func() (Handle, error) {
			return &fakeHandle{name: string(name), events: &events}, nil
		}))
	}

	assert.Equal(t, []Slot{"a", "b", "c"}, r.Slots())
	require.NoError(t, r.Dispose("b", "missing"))
	assert.Equal(t, []Slot{"a", "c"}, r.Slots())

	require.NoError(t, r.Close())
	assert.Empty(t, r.Slots())
	assert.Equal(t, []string{"destroy b", "destroy a", "destroy c"}, events)
}

func TestRegistry_DisposeError(t *testing.T) {
	var events []string
	r := NewRegistry()
	require.NoError(t, r.Replace("x", func() (Handle, error) {
		return &fakeHandle{name: "x", events: &events, err: errors.New("stuck")}, nil
	}))

	require.Error(t, r.Dispose("x"))
	_, ok := r.Get("x")
	assert.False(t, ok)
}
