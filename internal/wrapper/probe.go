package wrapper

import (
	"log/slog"
	"os/exec"
	"strings"

	"github.com/roach88/lichemtest/internal/logging"
)

// NotAvailable is the path reported for a program that could not be found.
const NotAvailable = "N/A"

// LookPathFunc locates an executable, in the manner of exec.LookPath.
type LookPathFunc func(file string) (string, error)

// Prober detects external programs on the host.
type Prober struct {
	lookPath LookPathFunc
	logger   *slog.Logger
}

// NewProber creates a prober. A nil lookPath uses exec.LookPath; a nil
// logger discards output.
func NewProber(lookPath LookPathFunc, logger *slog.Logger) *Prober {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Prober{lookPath: lookPath, logger: logger}
}

// Probe returns the resolved path of command, or NotAvailable.
// It never fails.
func (p *Prober) Probe(command string) string {
	path, err := p.lookPath(command)
	if err != nil || strings.TrimSpace(path) == "" {
		p.logger.Debug("probe: not found", "command", command, "error", err)
		return NotAvailable
	}
	path = strings.TrimSpace(path)
	p.logger.Debug("probe: found", "command", command, "path", path)
	return path
}

// Resolved is a wrapper together with the outcome of probing for it.
type Resolved struct {
	Wrapper
	Path string
}

// Present reports whether the wrapper's executable was found.
func (r Resolved) Present() bool {
	return r.Path != NotAvailable
}

// Resolve probes for w.
func (p *Prober) Resolve(w Wrapper) Resolved {
	return Resolved{Wrapper: w, Path: p.Probe(w.Command)}
}

// ResolveAll probes each wrapper in order.
func (p *Prober) ResolveAll(ws []Wrapper) []Resolved {
	out := make([]Resolved, 0, len(ws))
	for _, w := range ws {
		out = append(out, p.Resolve(w))
	}
	return out
}
