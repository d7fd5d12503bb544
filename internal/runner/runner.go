// Package runner stages input files, invokes lichem and cleans up after it.
//
// Each call runs one blocking subprocess in a pre-existing working
// directory. lichem's stdout and stderr are written together to
// [CaptureFile] in that directory and returned to the caller.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/roach88/lichemtest/internal/catalog"
	"github.com/roach88/lichemtest/internal/logging"
	"github.com/roach88/lichemtest/internal/wrapper"
)

const (
	// CaptureFile receives lichem's combined output.
	CaptureFile = "tests.out"

	// TrashFile is passed to lichem as the output structure and discarded.
	TrashFile = "trash.xyz"
)

// lichemScratch are files lichem itself may leave behind.
var lichemScratch = []string{
	"BASIS",
	CaptureFile,
	TrashFile,
	"BeadStartStruct.xyz",
	"BurstStruct.xyz",
}

// Driver runs lichem for one scenario at a time.
type Driver struct {
	binary  string
	threads int
	logger  *slog.Logger
}

// New creates a driver for the given lichem binary and thread count.
func New(binary string, threads int, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Driver{binary: binary, threads: threads, logger: logger}
}

// Args returns lichem's argument list for the given inputs.
func (d *Driver) Args(in catalog.Inputs) []string {
	return []string{
		"-n", strconv.Itoa(d.threads),
		"-x", in.Structure,
		"-r", in.Region,
		"-c", in.Config,
		"-o", TrashFile,
	}
}

// Stage copies each auxiliary file to its destination name inside dir,
// overwriting whatever an earlier scenario left there. All copies are
// attempted; the failures are joined.
func (d *Driver) Stage(dir string, copies []catalog.Copy) error {
	var errs []error
	for _, cp := range copies {
		src := filepath.Join(dir, cp.From)
		dst := filepath.Join(dir, cp.To)
		if err := copyFile(src, dst); err != nil {
			errs = append(errs, fmt.Errorf("stage %s -> %s: %w", cp.From, cp.To, err))
			continue
		}
		d.logger.Debug("staged file", "dir", dir, "from", cp.From, "to", cp.To)
	}
	return errors.Join(errs...)
}

// Execute runs lichem in dir and returns its combined output. A non-zero
// exit status is not an error: whatever lichem printed is returned for
// extraction. Errors mean lichem could not be run at all.
func (d *Driver) Execute(ctx context.Context, dir string, in catalog.Inputs) ([]byte, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("working directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("working directory %s is not a directory", dir)
	}

	capturePath := filepath.Join(dir, CaptureFile)
	capture, err := os.Create(capturePath)
	if err != nil {
		return nil, fmt.Errorf("create capture file: %w", err)
	}

	args := d.Args(in)
	cmd := exec.CommandContext(ctx, d.binary, args...)
	cmd.Dir = dir
	cmd.Stdout = capture
	cmd.Stderr = capture

	d.logger.Debug("running lichem", "dir", dir, "binary", d.binary, "args", args)
	runErr := cmd.Run()
	if cerr := capture.Close(); cerr != nil && runErr == nil {
		runErr = cerr
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		d.logger.Debug("lichem exited with error", "dir", dir, "code", exitErr.ExitCode())
		runErr = nil
	}
	if runErr != nil {
		return nil, fmt.Errorf("run %s: %w", d.binary, runErr)
	}

	out, err := os.ReadFile(capturePath)
	if err != nil {
		return nil, fmt.Errorf("read capture file: %w", err)
	}
	return out, nil
}

// Clean removes the capture file, lichem's scratch files and every
// wrapper's scratch files from dir. Missing files are not an error.
func (d *Driver) Clean(dir string) error {
	patterns := append([]string{}, lichemScratch...)
	for _, w := range wrapper.All() {
		patterns = append(patterns, w.Scratch...)
	}

	var errs []error
	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		for _, m := range matches {
			if err := os.Remove(m); err != nil && !os.IsNotExist(err) {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
