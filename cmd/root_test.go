// File: cmd/root_test.go
package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"promptpack/pkg/version"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// executeCommand runs the root command with the given stdin and arguments,
// returning everything written to its output streams.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	logger = zap.NewNop()
	logLevel = zap.NewAtomicLevel()

	if args == nil {
		args = []string{}
	}

	buf := new(bytes.Buffer)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestReadRootPath(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		interactive bool
		want        string
		wantPrompt  bool
		wantErr     string
	}{
		{
			name:  "piped path",
			input: "/tmp/project\n",
			want:  "/tmp/project",
		},
		{
			name:        "interactive session prints the prompt",
			input:       "/tmp/project\n",
			interactive: true,
			want:        "/tmp/project",
			wantPrompt:  true,
		},
		{
			name:  "surrounding whitespace is trimmed",
			input: "  /tmp/project \n",
			want:  "/tmp/project",
		},
		{
			name:  "final line without newline",
			input: "/tmp/project",
			want:  "/tmp/project",
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: "no folder path given",
		},
		{
			name:    "blank line",
			input:   "   \n",
			wantErr: "no folder path given",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := new(bytes.Buffer)

			got, err := readRootPath(strings.NewReader(tt.input), out, tt.interactive)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			if tt.wantPrompt {
				assert.Equal(t, "Enter the folder path: ", out.String())
			} else {
				assert.Empty(t, out.String())
			}
		})
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "", "version")

	require.NoError(t, err)
	assert.Equal(t, version.Get().String()+"\n", out)
}

func TestVersionCommandShort(t *testing.T) {
	out, err := executeCommand(t, "", "version", "--short")

	require.NoError(t, err)
	assert.Equal(t, version.Get().Version+"\n", out)
}

func TestRootCommandEnvOverride(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.ts"), []byte("let x = 1\n"), 0o644))

	output := filepath.Join(t.TempDir(), "from-env.md")
	t.Setenv("PROMPTPACK_OUTPUT", output)

	_, err := executeCommand(t, "", root)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "filename: `"+filepath.Join(root, "a.ts")+"`\n```ts\nlet x = 1\n```\n", string(data))
}

func TestRootCommandFlagOverridesEnv(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.ts"), []byte("let x = 1\n"), 0o644))

	scratch := t.TempDir()
	envOutput := filepath.Join(scratch, "from-env.md")
	flagOutput := filepath.Join(scratch, "from-flag.md")
	t.Setenv("PROMPTPACK_OUTPUT", envOutput)

	_, err := executeCommand(t, "", root, "--output", flagOutput)
	require.NoError(t, err)

	assert.FileExists(t, flagOutput)
	assert.NoFileExists(t, envOutput)
}

func TestRootCommandAggregates(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.ts"), []byte("let x = 1\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("# skip\n"), 0o644))

	output := filepath.Join(t.TempDir(), "prompt.md")

	_, err := executeCommand(t, "", root, "--output", output)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "filename: `"+filepath.Join(root, "a.ts")+"`\n```ts\nlet x = 1\n```\n", string(data))
}

func TestRootCommandReadsFolderFromStdin(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.ts"), []byte("let x = 1\n"), 0o644))

	output := filepath.Join(t.TempDir(), "prompt.md")

	_, err := executeCommand(t, root+"\n", "--output", output)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "filename: `"+filepath.Join(root, "a.ts")+"`")
}

func TestRootCommandMissingFolder(t *testing.T) {
	_, err := executeCommand(t, "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no folder path given")
}

func TestRootCommandNonexistentFolder(t *testing.T) {
	root := filepath.Join(t.TempDir(), "gone")

	_, err := executeCommand(t, "", root)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "stat root folder")
}

func TestDebugFlagRaisesVerbosity(t *testing.T) {
	_, err := executeCommand(t, "", "version", "--debug")

	require.NoError(t, err)
	assert.Equal(t, zap.DebugLevel, logLevel.Level())
}
