package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputFormatter_JSONSuccess(t *testing.T) {
	out, human := &bytes.Buffer{}, &bytes.Buffer{}
	formatter := &OutputFormatter{Format: FormatJSON, Writer: out, ErrWriter: human}

	require.NoError(t, formatter.Success(map[string]int{"passed": 3}))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotNil(t, resp.Data)
	assert.Nil(t, resp.Error)
	assert.Empty(t, human.String())
}

func TestOutputFormatter_JSONError(t *testing.T) {
	out, human := &bytes.Buffer{}, &bytes.Buffer{}
	formatter := &OutputFormatter{Format: FormatJSON, Writer: out, ErrWriter: human}

	require.NoError(t, formatter.Error(ErrCodeNoLichem, "LICHEM binary not found!"))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E003", resp.Error.Code)
	assert.Equal(t, "LICHEM binary not found!", resp.Error.Message)
	assert.Equal(t, "Error: LICHEM binary not found!\n\n", human.String())
}

func TestOutputFormatter_TextSuccessPrintsNothing(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: FormatText, Writer: buf}

	require.NoError(t, formatter.Success("ignored"))
	assert.Empty(t, buf.String())
}

func TestOutputFormatter_TextError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: FormatText, Writer: buf}

	require.NoError(t, formatter.Error(ErrCodeMissingBinaries, "Missing binaries."))
	assert.Equal(t, "Error: Missing binaries.\n\n", buf.String())
}

func TestOutputFormatter_Human(t *testing.T) {
	out, errw := &bytes.Buffer{}, &bytes.Buffer{}

	text := &OutputFormatter{Format: FormatText, Writer: out, ErrWriter: errw}
	assert.Same(t, out, text.Human())

	js := &OutputFormatter{Format: FormatJSON, Writer: out, ErrWriter: errw}
	assert.Same(t, errw, js.Human())

	noErr := &OutputFormatter{Format: FormatJSON, Writer: out}
	assert.Same(t, out, noErr.Human())
}
