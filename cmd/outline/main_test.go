package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bodyText = "This paragraph is ordinary body text that runs long enough to dominate the character count of the document."

func jsonBlock(text string, size float64, bold bool, y float64) map[string]any {
	bbox := []float64{50, y, 550, y + size + 2}
	flags := 0
	if bold {
		flags = 16
	}
	return map[string]any{
		"type": 0,
		"bbox": bbox,
		"lines": []any{map[string]any{
			"bbox": bbox,
			"spans": []any{map[string]any{
				"size": size, "font": "Helvetica", "flags": flags, "text": text, "bbox": bbox,
			}},
		}},
	}
}

// writeFixture writes a layout JSON document with a title page and three
// numbered sections
func writeFixture(t *testing.T, dir string) string {
	t.Helper()

	pages := []any{map[string]any{
		"width": 600, "height": 800,
		"blocks": []any{
			jsonBlock("Regional Library Strategy", 24, true, 40),
			jsonBlock(bodyText, 10, false, 200),
		},
	}}
	for i := 2; i <= 4; i++ {
		pages = append(pages, map[string]any{
			"width": 600, "height": 800,
			"blocks": []any{
				jsonBlock(fmt.Sprintf("%d. Section Heading", i), 14, true, 40),
				jsonBlock(bodyText, 10, false, 200),
			},
		})
	}

	data, err := json.Marshal(map[string]any{"pages": pages})
	require.NoError(t, err)
	path := filepath.Join(dir, "strategy.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

type testEnv struct {
	dir     string
	fixture string
}

func newTestEnv(t *testing.T) *testEnv {
	dir := t.TempDir()
	return &testEnv{dir: dir, fixture: writeFixture(t, dir)}
}

// run executes the CLI with a private config and database
func (e *testEnv) run(args ...string) (stdout, stderr string, err error) {
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{
		"--config", filepath.Join(e.dir, "config.toml"),
		"--db", filepath.Join(e.dir, "outlines.db"),
	}, args...))
	err = root.Execute()
	return out.String(), errOut.String(), err
}

var savedID = regexp.MustCompile(`Saved outline (\S+)`)

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, cmd := range newRootCmd().Commands() {
		names = append(names, cmd.Name())
	}

	for _, want := range []string{"extract", "show", "list", "delete", "config"} {
		assert.Contains(t, names, want)
	}
}

func TestExtract_JSON(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, err := env.run("extract", env.fixture)
	require.NoError(t, err)

	var got struct {
		Title   string `json:"title"`
		Outline []struct {
			Level string `json:"level"`
			Text  string `json:"text"`
			Page  int    `json:"page"`
		} `json:"outline"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "Regional Library Strategy", got.Title)
	require.NotEmpty(t, got.Outline)
	assert.Equal(t, "2. Section Heading", got.Outline[0].Text)
	assert.Equal(t, 2, got.Outline[0].Page)
}

func TestExtract_TextFormat(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, err := env.run("extract", "--format", "text", env.fixture)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Regional Library Strategy\n\n")
	assert.Contains(t, stdout, "3. Section Heading ... 3")
}

func TestExtract_Errors(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.run("extract")
	assert.Error(t, err)

	_, _, err = env.run("extract", "--format", "yaml", env.fixture)
	assert.ErrorContains(t, err, "unknown format")

	_, _, err = env.run("extract", filepath.Join(env.dir, "missing.pdf"))
	assert.ErrorContains(t, err, "failed to extract outline")
}

func TestExtract_Verbose(t *testing.T) {
	env := newTestEnv(t)

	_, stderr, err := env.run("extract", "--verbose", "--detect-tables", env.fixture)
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "outline extracted")
}

func TestSavedOutlineLifecycle(t *testing.T) {
	env := newTestEnv(t)

	_, stderr, err := env.run("extract", "--save", env.fixture)
	require.NoError(t, err)
	m := savedID.FindStringSubmatch(stderr)
	require.Len(t, m, 2, "stderr: %s", stderr)
	id := m[1]

	stdout, _, err := env.run("list")
	require.NoError(t, err)
	assert.Contains(t, stdout, id)
	assert.Contains(t, stdout, "Regional Library Strategy")
	assert.Contains(t, stdout, "strategy.json")

	stdout, _, err = env.run("show", "--format", "markdown", id)
	require.NoError(t, err)
	assert.Contains(t, stdout, "# Regional Library Strategy")
	assert.Contains(t, stdout, "- 2. Section Heading (p. 2)")

	stdout, _, err = env.run("delete", id)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Deleted outline "+id)

	_, _, err = env.run("show", id)
	assert.ErrorContains(t, err, "no saved outline")

	_, _, err = env.run("delete", id)
	assert.ErrorContains(t, err, "no saved outline")

	stdout, _, err = env.run("list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No saved outlines")
}

func TestConfigCmd(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(env.dir, "config.toml"), []byte("title_pages = 2\n"), 0o600))

	stdout, _, err := env.run("config")
	require.NoError(t, err)
	assert.Contains(t, stdout, "title_pages = 2")
	assert.Contains(t, stdout, "outlines.db")
}

func TestInvalidConfig(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(env.dir, "config.toml"), []byte("workers = -3\n"), 0o600))

	_, _, err := env.run("list")
	assert.ErrorContains(t, err, "workers must not be negative")
}
