package probe

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBackend struct {
	name  string
	avail bool
}

func (s stubBackend) Name() string                          { return s.name }
func (s stubBackend) Probe(context.Context, string) Outcome { return Succeeded(s.name, nil, 0, 0) }
func (s stubBackend) Available() bool                       { return s.avail }

type plainBackend struct{ name string }

func (p plainBackend) Name() string                          { return p.name }
func (p plainBackend) Probe(context.Context, string) Outcome { return Succeeded(p.name, nil, 0, 0) }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestNewRegistryKeepsOrder(t *testing.T) {
	r, err := NewRegistry(plainBackend{"b"}, plainBackend{"a"}, plainBackend{"c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, r.Names())
	assert.Equal(t, 3, r.Len())
}

func TestNewRegistryRejectsEmpty(t *testing.T) {
	_, err := NewRegistry()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CONFIG_ERROR")
}

func TestNewRegistryRejectsDuplicates(t *testing.T) {
	_, err := NewRegistry(plainBackend{"dup"}, plainBackend{"dup"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dup")
}

func TestDetectFiltersUnavailable(t *testing.T) {
	r, err := Detect(quietLogger(),
		stubBackend{name: "here", avail: true},
		stubBackend{name: "gone", avail: false},
		plainBackend{"always"}, // no availability hook, kept unconditionally
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"here", "always"}, r.Names())
}

func TestDetectAllUnavailable(t *testing.T) {
	_, err := Detect(quietLogger(), stubBackend{name: "gone", avail: false})
	require.Error(t, err)
}
