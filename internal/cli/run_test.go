package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/hackathon/internal/hackathon"
	"github.com/roach88/hackathon/internal/store"
	"github.com/roach88/hackathon/internal/testutil"
	"github.com/roach88/hackathon/internal/wordlist"
)

// writeWordLists creates a small data directory.
func writeWordLists(t *testing.T) string {
	t.Helper()
	return testutil.WriteDataDir(t, testutil.SmallWords)
}

// newTestRunCommand builds a run command with fixed run IDs and separate
// stdout/stderr buffers.
func newTestRunCommand(format string, ids ...string) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	cmd := newRunCommand(&RootOptions{Format: format}, hackathon.NewFixedGenerator(ids...))
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd, stdout, stderr
}

func TestRun_GoldenText(t *testing.T) {
	dataDir := writeWordLists(t)
	cmd, stdout, _ := newTestRunCommand("text", "run-golden-0001")
	cmd.SetArgs([]string{"4", "1", "10", "1", "2", "--data-dir", dataDir})

	require.NoError(t, cmd.Execute())

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "run_text", stdout.Bytes())
}

func TestRun_JSON(t *testing.T) {
	dataDir := writeWordLists(t)
	cmd, stdout, _ := newTestRunCommand("json", "run-json")
	cmd.SetArgs([]string{"--data-dir", dataDir, "--ideas", "8", "--idea-gen", "2", "--pkgs", "30", "--pkg-gen", "3", "--students", "3"})

	require.NoError(t, cmd.Execute())

	var resp struct {
		Status string           `json:"status"`
		RunID  string           `json:"run_id"`
		Data   hackathon.Report `json:"data"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "run-json", resp.RunID)
	assert.True(t, resp.Data.Verified())
	assert.Equal(t, int64(8), resp.Data.IdeasBuilt)
	assert.Equal(t, 3, resp.Data.TokensSent)
}

func TestRun_FlagsOverrideArgs(t *testing.T) {
	dataDir := writeWordLists(t)
	cmd, stdout, _ := newTestRunCommand("text", "run-override")
	cmd.SetArgs([]string{"4", "1", "10", "1", "2", "--students", "5", "--data-dir", dataDir})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "students=5")
	assert.Contains(t, stdout.String(), "5 termination tokens sent")
}

func TestRun_ConfigFile(t *testing.T) {
	dataDir := writeWordLists(t)
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	profile := filepath.Join(t.TempDir(), "run.yaml")
	content := "ideas: 6\nidea_generators: 2\npackages: 12\npackage_generators: 2\nstudents: 2\n" +
		"termination: best-effort\n" +
		"data:\n" +
		"  products: " + filepath.Join(dataDir, wordlist.ProductsFile) + "\n" +
		"  customers: " + filepath.Join(dataDir, wordlist.CustomersFile) + "\n" +
		"  packages: " + filepath.Join(dataDir, wordlist.PackagesFile) + "\n" +
		"database: " + dbPath + "\n"
	require.NoError(t, os.WriteFile(profile, []byte(content), 0644))

	cmd, stdout, _ := newTestRunCommand("text", "run-from-config")
	cmd.SetArgs([]string{"--config", profile})

	err := cmd.Execute()
	// Best-effort termination may strand ideas; the report is printed either way.
	if err != nil {
		assert.Equal(t, ExitFailure, GetExitCode(err))
	}
	assert.Contains(t, stdout.String(), "termination=best-effort")

	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()
	got, err := st.GetRun(context.Background(), "run-from-config")
	require.NoError(t, err)
	assert.Equal(t, 6, got.Config.Ideas)
}

func TestRun_RecordsToDatabase(t *testing.T) {
	dataDir := writeWordLists(t)
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	cmd, _, _ := newTestRunCommand("text", "run-db-1")
	cmd.SetArgs([]string{"4", "1", "10", "1", "2", "--data-dir", dataDir, "--db", dbPath})
	require.NoError(t, cmd.Execute())

	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()

	runs, err := st.ListRuns(context.Background(), store.ListOptions{})
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "run-db-1", runs[0].RunID)
	assert.True(t, runs[0].Verified())
}

func TestRun_InvalidConfiguration(t *testing.T) {
	dataDir := writeWordLists(t)
	cmd, stdout, _ := newTestRunCommand("text", "unused")
	cmd.SetArgs([]string{"4", "0", "10", "1", "2", "--data-dir", dataDir})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.True(t, hackathon.IsConfigurationError(err))
	assert.Empty(t, stdout.String())
}

func TestRun_NonNumericArgument(t *testing.T) {
	cmd, _, _ := newTestRunCommand("text", "unused")
	cmd.SetArgs([]string{"many"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "invalid count argument")
}

func TestRun_TooManyArguments(t *testing.T) {
	cmd, _, _ := newTestRunCommand("text", "unused")
	cmd.SetArgs([]string{"1", "1", "1", "1", "1", "1"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts at most 5 arg(s)")
}

func TestRun_MissingWordLists(t *testing.T) {
	cmd, _, _ := newTestRunCommand("text", "unused")
	cmd.SetArgs([]string{"--data-dir", filepath.Join(t.TempDir(), "nowhere")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.True(t, hackathon.IsDataSourceError(err))
}

func TestRun_EmptyProducts(t *testing.T) {
	dataDir := writeWordLists(t)
	testutil.WriteList(t, filepath.Join(dataDir, wordlist.ProductsFile), nil)

	cmd, _, _ := newTestRunCommand("text", "unused")
	cmd.SetArgs([]string{"--data-dir", dataDir})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.True(t, hackathon.IsDataSourceError(err))
}

func TestRun_VerboseLogsToStderr(t *testing.T) {
	dataDir := writeWordLists(t)
	rootOpts := &RootOptions{Format: "text", Verbose: true}
	cmd := NewRunCommand(rootOpts)
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs([]string{"2", "1", "2", "1", "1", "--data-dir", dataDir})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stderr.String(), "idea batch sent")
	assert.Contains(t, stderr.String(), "run complete")
	assert.NotContains(t, stdout.String(), "level=")
}
