package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"tree", "find", "animate"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
	traceFlag := cmd.PersistentFlags().Lookup("trace")
	require.NotNil(t, traceFlag)
	assert.Equal(t, "error", traceFlag.DefValue)
}

func TestTree(t *testing.T) {
	out, err := run(t, "tree")
	require.NoError(t, err)
	assert.Equal(t, 9, strings.Count(out, "#"), "expected one line per view")
	assert.Contains(t, out, "#7 G gone *view.Container")
	out, err = run(t, "tree", "--dot")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph g {"))
}

func TestFind(t *testing.T) {
	for _, tc := range []struct {
		args []string
		want []string
	}{
		{[]string{"--visibility", "gone"}, []string{"G"}},
		{[]string{"--not", "visibility", "--visibility", "gone"}, []string{"A", "B", "C", "D", "E", "F", "H"}},
		{[]string{"--exclude-tag", "G", "--prune"}, []string{"A", "B", "C", "D", "E", "F"}},
		{[]string{"--include-roots", "--id", "0,2,5"}, []string{"root", "B", "E"}},
		{[]string{"--tag-regex", "^[EFG]$", "--async"}, []string{"E", "F", "G"}},
	} {
		out, err := run(t, append([]string{"find"}, tc.args...)...)
		require.NoError(t, err, tc.args)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		var tags []string
		for _, l := range lines {
			tags = append(tags, strings.Fields(l)[2])
		}
		assert.Equal(t, tc.want, tags, tc.args)
	}
	out, err := run(t, "find", "--visibility", "gone")
	require.NoError(t, err)
	assert.Equal(t, "1/1 #7 G gone\n", out)
}

func TestFindRejectsInvalidFlags(t *testing.T) {
	_, err := run(t, "find", "--not", "color")
	assert.Error(t, err)
	_, err = run(t, "find", "--visibility", "transparent")
	assert.Error(t, err)
	_, err = run(t, "find", "--tag-regex", "(")
	assert.Error(t, err)
	_, err = run(t, "--trace", "verbose", "tree")
	assert.Error(t, err)
}

func TestAnimate(t *testing.T) {
	out, err := run(t, "animate", "--delay", "250ms", "--frame", "100ms",
		"--visibility", "visible", "--prune", "--metrics")
	require.NoError(t, err)
	t.Logf("output:\n%s", out)
	assert.Contains(t, out, "5/5 #6 F visible, starts at 1s")
	assert.Contains(t, out, "completed at 1.3s after 13 frames")
	assert.Contains(t, out, "viewsfrom_tween_finished_total{property=alpha} 5")
	assert.Contains(t, out, "viewsfrom_tween_running{} 0")
}

func TestAnimateShowsViewsBeforeAnimation(t *testing.T) {
	out, err := run(t, "animate", "--show", "invisible", "--visibility", "visible", "--prune",
		"--frame", "100ms")
	require.NoError(t, err)
	t.Logf("output:\n%s", out)
	assert.Contains(t, out, "1/5 #1 A invisible, starts at 0s")
	assert.Contains(t, out, "5/5 #6 F invisible, starts at 400ms")
	assert.NotContains(t, out, " visible,")
	_, err = run(t, "animate", "--show", "transparent")
	assert.Error(t, err)
}

func TestAnimateRejectsUnknownAnimation(t *testing.T) {
	_, err := run(t, "animate", "--name", "wobble")
	assert.Error(t, err)
	_, err = run(t, "animate", "--animations", "does-not-exist.yaml")
	assert.Error(t, err)
	_, err = run(t, "animate", "--frame", "0s")
	assert.Error(t, err)
}
