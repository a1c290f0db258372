package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"which-portal/core/catalog"
	"which-portal/core/output"
	"which-portal/internal/errors"
)

type run struct {
	stdout string
	stderr string
	err    error
}

func execute(args ...string) run {
	var stdout, stderr bytes.Buffer
	err := Execute(context.Background(), args, &stdout, &stderr)
	return run{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestDirectRoute(t *testing.T) {
	r := execute("from", "500.0/500.0", "to", "505.0/505.0")

	require.NoError(t, r.err)
	assert.Equal(t,
		"Travel 7.1 directly through hyperspace to 505.0 / 505.0 (cost: 0.8 units of fuel)\n"+
			"Total fuel cost: 0.8 units of fuel\n",
		r.stdout)
	assert.Empty(t, r.stderr)
}

func TestPortalRoute(t *testing.T) {
	r := execute("from", "000.0 / 000.0", "to", "011.2 / 940.9")

	require.NoError(t, r.err)
	assert.Equal(t,
		"Use quasi-space portal at Q521 / 514 (cost: 10.0 units of fuel to use portal spawner)\n"+
			"Emerge in hyperspace at 011.2 / 940.9\n"+
			"Travel 0.0 to 011.2 / 940.9 (cost: 0.0 units of fuel)\n"+
			"Total fuel cost: 10.0 units of fuel\n",
		r.stdout)
	assert.Equal(t, errors.ExitOK, errors.ExitCode(r.err))
}

func TestMalformedArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "three arguments", args: []string{"from", "175.3/145.4", "to"}},
		{name: "no arguments", args: nil},
		{name: "five arguments", args: []string{"from", "175.3/145.4", "to", "468.1/091.6", "now"}},
		{name: "missing from", args: []string{"at", "175.3/145.4", "to", "468.1/091.6"}},
		{name: "missing to", args: []string{"from", "175.3/145.4", "into", "468.1/091.6"}},
		{name: "swapped literals", args: []string{"to", "175.3/145.4", "from", "468.1/091.6"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := execute(tt.args...)

			require.Error(t, r.err)
			assert.Equal(t, errors.ExitUsage, errors.ExitCode(r.err))
			assert.Equal(t, usageLine+"\n", r.stdout)
			assert.NotContains(t, r.stdout, "Total fuel cost")
			assert.Empty(t, r.stderr)
		})
	}
}

func TestMalformedCoordinate(t *testing.T) {
	r := execute("from", "17.3/145.4", "to", "468.1/091.6")

	require.Error(t, r.err)
	assert.True(t, errors.IsType(r.err, errors.TypeParsing))
	assert.NotEqual(t, errors.ExitOK, errors.ExitCode(r.err))
	assert.Empty(t, r.stdout)
	assert.Contains(t, r.stderr, "17.3/145.4")
}

func TestJSONFormat(t *testing.T) {
	r := execute("--format", "json", "from", "000.0/000.0", "to", "011.2/940.9")
	require.NoError(t, r.err)

	var got output.ItineraryJSON
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &got))
	assert.Equal(t, "10.0", got.TotalFuel)
	require.NotNil(t, got.Portal)
	assert.Equal(t, "Q521 / 514", got.Portal.Name)
	assert.NotEmpty(t, got.PlanID)
	assert.Empty(t, got.Candidates)
}

func TestExplain(t *testing.T) {
	r := execute("--explain", "--no-color", "from", "500.0/500.0", "to", "505.0/505.0")
	require.NoError(t, r.err)

	assert.True(t, strings.HasPrefix(r.stdout, "Travel 7.1 directly"))
	assert.Contains(t, r.stdout, "Candidates considered (16)")
	for _, p := range catalog.Default().Portals() {
		assert.Contains(t, r.stdout, p.Name)
	}
}

func TestBadFormatIsConfigError(t *testing.T) {
	r := execute("--format", "yaml", "from", "500.0/500.0", "to", "505.0/505.0")

	require.Error(t, r.err)
	assert.Equal(t, errors.ExitConfig, errors.ExitCode(r.err))
	assert.Empty(t, r.stdout)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "which-portal.hcl")
	require.NoError(t, os.WriteFile(path, []byte("output {\n  format = \"json\"\n}\n"), 0644))

	r := execute("--config", path, "from", "500.0/500.0", "to", "505.0/505.0")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, `"route": "direct"`)

	r = execute("--config", path, "--format", "text", "from", "500.0/500.0", "to", "505.0/505.0")
	require.NoError(t, r.err)
	assert.True(t, strings.HasPrefix(r.stdout, "Travel 7.1"))
}

func TestConfigCommand(t *testing.T) {
	r := execute("config", "--format", "json")
	require.NoError(t, r.err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &got))
	assert.Equal(t, "json", got["output"].(map[string]interface{})["format"])
}

func TestVersion(t *testing.T) {
	r := execute("version")
	require.NoError(t, r.err)
	assert.Equal(t, "which-portal version "+version+"\n", r.stdout)
}

func TestPortalsList(t *testing.T) {
	r := execute("portals", "--no-color")
	require.NoError(t, r.err)

	assert.Contains(t, r.stdout, "Quasi-space portals (15)")
	assert.Contains(t, r.stdout, "Q492 / 492 │ 005.0 / 164.7")
}

func TestPortalsNear(t *testing.T) {
	r := execute("portals", "--no-color", "--near", "011.2/940.9", "--limit", "2")
	require.NoError(t, r.err)

	lines := strings.Split(strings.TrimRight(r.stdout, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Nearest portals (2)", lines[0])
	assert.True(t, strings.HasPrefix(lines[3], "Q521 / 514"))
	assert.True(t, strings.HasSuffix(lines[3], "10.0"))

	r = execute("portals", "--near", "1/1")
	assert.True(t, errors.IsType(r.err, errors.TypeParsing))
}

func TestPortalsJSON(t *testing.T) {
	r := execute("portals", "--format", "json")
	require.NoError(t, r.err)

	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &got))
	assert.Len(t, got, 15)
}
