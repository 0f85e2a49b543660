package classify

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urfave/cli/v2"

	"github.com/nightconcept/citrine-go/internal/core/config"
)

// runClassifyCommand executes the classify command in a temporary working
// directory (so that a developer's own citr.toml cannot leak into the test)
// and captures stdout and stderr.
func runClassifyCommand(t *testing.T, tomlContent string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	tempDir := t.TempDir()
	if tomlContent != "" {
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, config.ConfigTomlName), []byte(tomlContent), 0644))
	}

	originalWD, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(tempDir))
	defer func() {
		require.NoError(t, os.Chdir(originalWD))
	}()

	var outBuf, errBuf bytes.Buffer
	app := &cli.App{
		Writer:    &outBuf,
		ErrWriter: &errBuf,
		Commands:  []*cli.Command{Cmd},
		// Keep urfave/cli from calling os.Exit during tests.
		ExitErrHandler: func(_ *cli.Context, _ error) {},
	}

	err = app.Run(append([]string{"citr", "classify"}, args...))
	return outBuf.String(), errBuf.String(), err
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var coder cli.ExitCoder
	require.ErrorAs(t, err, &coder)
	return coder.ExitCode()
}

func TestClassify_Report(t *testing.T) {
	stdout, stderr, err := runClassifyCommand(t, "", "--color", "never", "--", "./prog", "-a", "b", "-c")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	want := "execfile: ./prog\n" +
		"args:\n" +
		"  b\n" +
		"program options:\n" +
		"  -a\n" +
		"  -c\n" +
		"command options:\n" +
		"  (none)\n"
	assert.Equal(t, want, stdout)
}

func TestClassify_ColorAlwaysStylesReport(t *testing.T) {
	// Force the global detection to "no color" so the test shows the flag
	// winning over it, as it must in a non-TTY.
	originalNoColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = originalNoColor }()

	stdout, _, err := runClassifyCommand(t, "", "--color", "always", "--", "./prog", "-a", "b")
	require.NoError(t, err)
	assert.Contains(t, stdout, "\x1b[", "--color always must style the report even when color detection is off")
	assert.Contains(t, stdout, "./prog")

	_, stderr, err := runClassifyCommand(t, "", "--color", "always", "--", "./prog", "x", "--", "-a")
	require.Error(t, err)
	assert.Contains(t, stderr, "\x1b[", "the report and the diagnostics must follow the same color mode")
}

func TestClassify_ColorNeverKeepsReportPlain(t *testing.T) {
	stdout, stderr, err := runClassifyCommand(t, "", "--color", "never", "--", "./prog", "-a", "b")
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.NotContains(t, stdout, "\x1b[")
}

func TestClassify_ReportEmptySections(t *testing.T) {
	stdout, _, err := runClassifyCommand(t, "", "--color", "never", "--", "./prog")
	require.NoError(t, err)
	assert.Contains(t, stdout, "args:\n  (none)\n")
	assert.Contains(t, stdout, "command options:\n  (none)\n")
}

func TestClassify_JSON(t *testing.T) {
	stdout, _, err := runClassifyCommand(t, "", "--json", "--color", "never", "--", "./prog", "-v", "--", "-x", "file")
	require.NoError(t, err)

	var got struct {
		Execfile       string   `json:"execfile"`
		Args           []string `json:"args"`
		CmdOptions     []string `json:"cmd_options"`
		ProgramOptions []string `json:"program_options"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "./prog", got.Execfile)
	assert.Equal(t, []string{"file"}, got.Args)
	assert.Equal(t, []string{"-v"}, got.ProgramOptions)
	assert.Equal(t, []string{"-x"}, got.CmdOptions)
}

func TestClassify_JSONEmptySequencesAreArrays(t *testing.T) {
	stdout, _, err := runClassifyCommand(t, "", "--json", "--color", "never", "--", "./prog")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"args": []`)
	assert.NotContains(t, stdout, "null")
}

func TestClassify_DoubleDashAfterPositional(t *testing.T) {
	stdout, stderr, err := runClassifyCommand(t, "", "--color", "never", "--", "./prog", "x", "--", "-a")
	assert.Empty(t, stdout)
	assert.Equal(t, 1, exitCode(t, err))
	assert.Contains(t, stderr, `✖ CLI error: Double dash ("--") cannot be specified after the positional argument ("x").`)
}

func TestClassify_FixedCapacityOverflow(t *testing.T) {
	_, stderr, err := runClassifyCommand(t, "", "--color", "never", "--fixed", "--capacity", "2", "--", "./prog", "a", "b", "c")
	assert.Equal(t, 2, exitCode(t, err))
	assert.Contains(t, stderr, "✖ Memory error:")
}

func TestClassify_NoVector(t *testing.T) {
	_, _, err := runClassifyCommand(t, "", "--color", "never")
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(t, err))
	assert.Contains(t, err.Error(), "Usage: citr classify")
}

func TestClassify_ConfigSymbolsAndDefaults(t *testing.T) {
	cfgToml := `
[output]
color = "never"
error_symbol = "!"

[classifier]
initial_capacity = 2
fixed_capacity = true
`
	_, stderr, err := runClassifyCommand(t, cfgToml, "--", "./prog", "a", "b", "c")
	assert.Equal(t, 2, exitCode(t, err))
	assert.Contains(t, stderr, "! Memory error:")
}

func TestClassify_InvalidColorFlag(t *testing.T) {
	_, _, err := runClassifyCommand(t, "", "--color", "sometimes", "--", "./prog")
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(t, err))
	assert.Contains(t, err.Error(), "invalid --color")
}

func TestClassify_InvalidConfigFile(t *testing.T) {
	_, _, err := runClassifyCommand(t, "[output\ncolor = \"auto\"\n", "--", "./prog")
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(t, err))
}
