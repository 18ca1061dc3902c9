package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var examples = filepath.Join("..", "..", "examples")

func execute(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer

	code := run(args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestRun_Tasks(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := execute("run",
		"-mapping", filepath.Join(examples, "tasks", "mapping.yaml"),
		"-input", filepath.Join(examples, "tasks", "tuples.yaml"),
		"-log-level", "error",
	)
	require.Equal(t, 0, code, stderr)

	var out []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &out))

	assert.Equal(t, []map[string]any{
		{
			"name":  "Jane",
			"email": "jane@doe.org",
			"tasks": []any{
				map[string]any{"title": "Task One", "priority": 1},
				map[string]any{"title": "Task Two", "priority": 2},
			},
		},
		{
			"name":  "Joe",
			"email": "joe@doe.org",
			"tasks": []any{
				map[string]any{"title": "Task One", "priority": 1},
			},
		},
	}, out)
}

func TestRun_UsersJSON(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := execute("run",
		"-mapping", filepath.Join(examples, "users", "mapping.yaml"),
		"-input", filepath.Join(examples, "users", "tuples.yaml"),
		"-format", "json",
		"-log-level", "error",
	)
	require.Equal(t, 0, code, stderr)

	var out []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	require.Len(t, out, 2)

	assert.Equal(t, map[string]any{"city": "Krakow", "zip": "30-001"}, out[0]["address"])
	assert.Equal(t, map[string]any{"email": "jane@doe.org", "phone": "+48 600 000 001"}, out[0]["contact"])
	assert.Equal(t, []any{map[string]any{"label": "admin"}, map[string]any{"label": "dev"}}, out[0]["tags"])
	assert.Equal(t, []any{}, out[1]["tags"])
	assert.NotContains(t, out[0], "email")
}

func TestCheck(t *testing.T) {
	t.Parallel()

	code, stdout, _ := execute("check", "-mapping", filepath.Join(examples, "tasks", "mapping.yaml"))
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "ok (0 warnings)")

	code, stdout, stderr := execute("check", "-mapping", filepath.Join(examples, "invalid.yaml"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "error: tasks: [group_without_collection]")
	assert.Contains(t, stdout, "warning: owner: [ignored_from]")
	assert.Contains(t, stderr, "command failed")
}

func TestDump(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := execute("dump", "-mapping", filepath.Join(examples, "tasks", "mapping.yaml"))
	require.Equal(t, 0, code, stderr)

	assert.Contains(t, stdout, "# header")
	assert.Contains(t, stdout, "# plan")
	assert.Contains(t, stdout, "rename(user_name->name)")
	assert.Contains(t, stdout, "group(tasks[task_title, priority] by [name, email])")
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		code int
	}{
		{name: "no command", args: nil, code: 2},
		{name: "unknown command", args: []string{"frobnicate"}, code: 2},
		{name: "missing mapping", args: []string{"run", "-input", "x.yaml"}, code: 2},
		{name: "missing input", args: []string{"run", "-mapping", filepath.Join(examples, "tasks", "mapping.yaml")}, code: 2},
		{name: "bad flag", args: []string{"run", "-nope"}, code: 2},
		{name: "bad format", args: []string{"run", "-format", "xml"}, code: 2},
		{
			name: "unknown model",
			args: []string{"dump", "-mapping", filepath.Join(examples, "models", "mapping.yaml")},
			code: 1,
		},
		{
			name: "input does not match mapping",
			args: []string{
				"run",
				"-mapping", filepath.Join(examples, "tasks", "mapping.yaml"),
				"-input", filepath.Join(examples, "users", "tuples.yaml"),
			},
			code: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			code, _, _ := execute(tt.args...)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestHelp(t *testing.T) {
	t.Parallel()

	code, stdout, _ := execute("help")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "usage: tuplemap")
}
