package probe

import (
	"log/slog"

	"github.com/avelsher/pdfprobe/internal/common"
)

// availability is implemented by backends that depend on an external tool and
// may be missing on this host.
type availability interface {
	Available() bool
}

// Registry holds the ordered, fixed set of backends for a run. Order is
// registration order and drives both the per-file outcome sequence and
// recommendation tie-breaks.
type Registry struct {
	backends []Backend
}

// NewRegistry builds a registry from the given backends. Zero backends is a
// configuration error, not an empty registry.
func NewRegistry(backends ...Backend) (*Registry, error) {
	if len(backends) == 0 {
		return nil, common.NewAppError("CONFIG_ERROR", "at least one backend is required", common.ErrInvalidInput)
	}
	seen := make(map[string]struct{}, len(backends))
	for _, b := range backends {
		if _, dup := seen[b.Name()]; dup {
			return nil, common.NewAppError("CONFIG_ERROR", "duplicate backend name: "+b.Name(), common.ErrInvalidInput)
		}
		seen[b.Name()] = struct{}{}
	}
	return &Registry{backends: backends}, nil
}

// Detect filters out backends whose external tool is missing, logging each
// skip, and returns a registry of the rest.
func Detect(logger *slog.Logger, backends ...Backend) (*Registry, error) {
	if logger == nil {
		logger = slog.Default()
	}
	var avail []Backend
	for _, b := range backends {
		if a, ok := b.(availability); ok && !a.Available() {
			logger.Warn("registry.backend.unavailable", "backend", b.Name())
			continue
		}
		avail = append(avail, b)
	}
	return NewRegistry(avail...)
}

// Backends returns the registered backends in registration order.
func (r *Registry) Backends() []Backend { return r.backends }

// Names returns backend names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.backends))
	for i, b := range r.backends {
		names[i] = b.Name()
	}
	return names
}

func (r *Registry) Len() int { return len(r.backends) }
