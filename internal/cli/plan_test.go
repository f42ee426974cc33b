package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/hackathon/internal/hackathon"
)

func TestPlan_GoldenText(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewPlanCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"10", "3", "7", "2", "4"})

	require.NoError(t, cmd.Execute())

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "plan_text", buf.Bytes())
}

func TestPlan_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewPlanCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"4", "1", "10", "1", "2"})

	require.NoError(t, cmd.Execute())

	var resp struct {
		Status string         `json:"status"`
		Data   hackathon.Plan `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, []hackathon.IdeaAssignment{{Start: 0, Ideas: 4, Packages: 10, Students: 2}}, resp.Data.Ideas)
	assert.Equal(t, []hackathon.PackageAssignment{{Start: 0, Packages: 10}}, resp.Data.Packages)
}

func TestPlan_Invalid(t *testing.T) {
	cmd := NewPlanCommand(&RootOptions{Format: "text"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"0", "1", "5"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.True(t, hackathon.IsConfigurationError(err))
}
