package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonemaro/numloc/internal/version"
	"github.com/sonemaro/numloc/pkg/linecount"
	"github.com/sonemaro/numloc/pkg/radix"
)

func execute(t *testing.T, files map[string]string, args ...string) (string, string, error) {
	t.Helper()

	for _, env := range []string{"NUMLOC_EXCLUDE", "NUMLOC_ALLOW_HIDDEN", "NUMLOC_STRICT",
		"NUMLOC_OUTPUT", "NUMLOC_TOTAL", "NUMLOC_NO_PROGRESS", "NUMLOC_NO_COLOR", "NUMLOC_VERBOSE"} {
		t.Setenv(env, "")
	}

	fs := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
	}

	var stdout, stderr bytes.Buffer
	cmd := newRootCommand(&Options{fs: fs, noSignals: true})
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestConvertCommands(t *testing.T) {
	tests := []struct {
		args    []string
		want    string
		wantErr error
	}{
		{args: []string{"hex", "255"}, want: "FF\n"},
		{args: []string{"hex", "0"}, want: "0\n"},
		{args: []string{"bin", "5"}, want: "101\n"},
		{args: []string{"bin", "0xff"}, want: "11111111\n"},
		{args: []string{"dec", "0b101"}, want: "5\n"},
		{args: []string{"dec", "0x10000000000000000"}, want: "18446744073709551616\n"},
		{args: []string{"hex", "0xg"}, wantErr: radix.ErrInvalidNumber},
		{args: []string{"dec", "12a"}, wantErr: radix.ErrInvalidNumber},
		{args: []string{"bin", ""}, wantErr: radix.ErrInvalidNumber},
	}

	for _, tt := range tests {
		t.Run(tt.args[0]+" "+tt.args[1], func(t *testing.T) {
			out, _, err := execute(t, nil, tt.args...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, out)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestConvertRequiresOneArgument(t *testing.T) {
	_, _, err := execute(t, nil, "hex")
	assert.Error(t, err)

	_, _, err = execute(t, nil, "hex", "1", "2")
	assert.Error(t, err)
}

func TestLocCommand(t *testing.T) {
	files := map[string]string{
		"/repo/a/x.txt":   "x\n\n",
		"/repo/b/y.txt":   "a\n\n  \nb\n",
		"/repo/.secret":   "s\n",
		"/repo/image.png": string([]byte{0x89, 'P', 'N', 'G', 0xff}),
	}

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr error
	}{
		{
			name: "default",
			args: []string{"loc", "/repo"},
			want: "1\t :: /repo/a/x.txt\n2\t :: /repo/b/y.txt\n",
		},
		{
			name: "exclude",
			args: []string{"loc", "/repo", "--exclude", "a"},
			want: "2\t :: /repo/b/y.txt\n",
		},
		{
			name: "repeated exclude",
			args: []string{"loc", "/repo", "-e", "a", "-e", "/repo/b"},
			want: "",
		},
		{
			name: "allow hidden",
			args: []string{"loc", "/repo", "--allow-hidden"},
			want: "1\t :: /repo/.secret\n1\t :: /repo/a/x.txt\n2\t :: /repo/b/y.txt\n",
		},
		{
			name: "single file",
			args: []string{"loc", "/repo/b/y.txt"},
			want: "2\t :: /repo/b/y.txt\n",
		},
		{
			name: "total",
			args: []string{"loc", "/repo", "--total"},
			want: "1\t :: /repo/a/x.txt\n2\t :: /repo/b/y.txt\n3\t :: total (2 files, 1 skipped, 1 pruned)\n",
		},
		{
			name:    "strict",
			args:    []string{"loc", "/repo", "--strict"},
			wantErr: linecount.ErrDecode,
		},
		{
			name:    "single binary file",
			args:    []string{"loc", "/repo/image.png"},
			wantErr: linecount.ErrDecode,
		},
		{
			name:    "missing path",
			args:    []string{"loc", "/nowhere"},
			wantErr: linecount.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, files, tt.args...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestLocYAMLOutput(t *testing.T) {
	out, _, err := execute(t, map[string]string{"/r/f.go": "package f\n"}, "loc", "/r", "-o", "yaml", "--total")
	require.NoError(t, err)
	assert.Contains(t, out, "path: /r/f.go")
	assert.Contains(t, out, "lines: 1")
	assert.Contains(t, out, "totalLines: 1")
}

func TestLocRejectsUnknownOutput(t *testing.T) {
	_, _, err := execute(t, map[string]string{"/r/f.go": "x\n"}, "loc", "/r", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestLocEnvironmentConfig(t *testing.T) {
	files := map[string]string{
		"/e/keep/a.txt": "a\n",
		"/e/drop/b.txt": "b\n",
	}

	t.Run("env exclusion", func(t *testing.T) {
		t.Setenv("NUMLOC_EXCLUDE", "drop")

		fs := afero.NewMemMapFs()
		for path, content := range files {
			require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
			require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
		}

		var stdout bytes.Buffer
		cmd := newRootCommand(&Options{fs: fs, noSignals: true})
		cmd.SetOut(&stdout)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"loc", "/e"})

		require.NoError(t, cmd.Execute())
		assert.Equal(t, "1\t :: /e/keep/a.txt\n", stdout.String())
	})
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, nil, "version")
	require.NoError(t, err)
	assert.Equal(t, version.Version+"\n", out)

	out, _, err = execute(t, nil, "version", "--full")
	require.NoError(t, err)
	assert.Contains(t, out, "Go Version:")
}

func TestVerboseFlagEnablesLogging(t *testing.T) {
	_, stderr, err := execute(t, nil, "-v", "hex", "10")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"message":"Converting number"`)

	_, stderr, err = execute(t, nil, "hex", "10")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}
