package cli

import (
	"encoding/json"
	"io"

	"github.com/roach88/lichemtest/internal/report"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Error codes carried in JSON error responses.
const (
	ErrCodeBadThreads      = "E001" // Thread count is not a positive integer
	ErrCodeUnknownWrapper  = "E002" // QM or MM name not recognized
	ErrCodeNoLichem        = "E003" // lichem binary not found
	ErrCodeMissingBinaries = "E004" // Explicit mode with an absent wrapper
	ErrCodeCatalog         = "E005" // Catalog file unreadable or invalid
	ErrCodeHistory         = "E006" // History database error
)

// OutputFormatter handles JSON vs text output for CLI commands.
//
// In text mode everything goes to Writer. In JSON mode Writer receives a
// single CLIResponse and the human-readable report goes to ErrWriter, so
// that stdout stays parseable.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// JSON reports whether the formatter emits JSON.
func (f *OutputFormatter) JSON() bool {
	return f.Format == FormatJSON
}

// Human returns the writer for the human-readable report.
func (f *OutputFormatter) Human() io.Writer {
	if f.JSON() && f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}

// Success emits data as an ok response. In text mode the report has
// already been written and nothing more is printed.
func (f *OutputFormatter) Success(data any) error {
	if !f.JSON() {
		return nil
	}
	return f.encode(CLIResponse{Status: "ok", Data: data})
}

// Error reports a fatal configuration error. Text mode prints the
// "Error: ..." line; JSON mode emits an error response as well.
func (f *OutputFormatter) Error(code, message string) error {
	report.Errorf(f.Human(), "%s", message)
	if !f.JSON() {
		return nil
	}
	return f.encode(CLIResponse{
		Status: "error",
		Error:  &CLIError{Code: code, Message: message},
	})
}

func (f *OutputFormatter) encode(resp CLIResponse) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
