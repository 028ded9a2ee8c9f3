// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggplot/color"
)

func recorderFactory(o Options) (Surface, error) { return newRecorder(o), nil }

func TestRegistryPriority(t *testing.T) {
	r := NewRegistry()
	r.Register(Backend{Name: "low", Priority: 1, Factory: recorderFactory})
	r.Register(Backend{Name: "high", Priority: 50, Factory: recorderFactory})
	r.Register(Backend{Name: "also-high", Priority: 50, Factory: recorderFactory})
	r.Register(Backend{Name: "off", Priority: 100, Factory: recorderFactory, Available: func() bool { return false }})

	assert.Equal(t, []string{"also-high", "high", "low"}, r.Backends())

	r.Unregister("also-high")
	r.Unregister("missing")
	assert.Equal(t, []string{"high", "low"}, r.Backends())
}

func TestRegistryErrors(t *testing.T) {
	r := NewRegistry()
	_, err := r.NewSurface(DefaultOptions(1, 1))
	assert.ErrorIs(t, err, ErrNoBackend)

	_, err = r.NewSurfaceByName("nope", DefaultOptions(1, 1))
	var be *BackendError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, "nope", be.Name)
	assert.False(t, be.Unavailable)
	assert.EqualError(t, err, "surface: backend not found: nope")

	r.Register(Backend{Name: "off", Factory: recorderFactory, Available: func() bool { return false }})
	_, err = r.NewSurfaceByName("off", DefaultOptions(1, 1))
	require.True(t, errors.As(err, &be))
	assert.True(t, be.Unavailable)
}

func TestRegistryFallsBack(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("boom")
	r.Register(Backend{Name: "broken", Priority: 9, Factory: func(Options) (Surface, error) { return nil, boom }})
	r.Register(Backend{Name: "rec", Factory: recorderFactory})

	s, err := r.NewSurface(DefaultOptions(1, 1))
	require.NoError(t, err)
	assert.IsType(t, &Recorder{}, s)

	r.Unregister("rec")
	_, err = r.NewSurface(DefaultOptions(1, 1))
	assert.ErrorIs(t, err, boom)
}

func TestDefaultRegistry(t *testing.T) {
	assert.Equal(t, []string{"image", "recorder"}, Backends())

	s, err := NewSurface(8, 4, WithTheme(color.Dark()))
	require.NoError(t, err)
	img, ok := s.(*ImageSurface)
	require.True(t, ok)
	assert.Equal(t, 8, img.Width())
	assert.Equal(t, color.Dark(), img.opts.Theme)

	s, err = NewSurfaceByName("recorder", 8, 4)
	require.NoError(t, err)
	assert.IsType(t, &Recorder{}, s)
}
