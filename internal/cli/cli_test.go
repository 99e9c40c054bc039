package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SeamusWaldron/bitcube"
)

type testEnv struct {
	dir  string
	args []string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	return &testEnv{
		dir: dir,
		args: []string{
			"--config", filepath.Join(dir, "config.yaml"),
			"--db", filepath.Join(dir, "bitcube.db"),
			"--workspace", filepath.Join(dir, "workspace.json"),
			"--no-color",
		},
	}
}

// run executes the root command and returns its standard output.
func (e *testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Flag variables outlive a single Execute.
	showPlain, equivQuiet, playBlocks = false, false, false
	listLimit = 100

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append(append([]string{}, e.args...), args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func (e *testEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := e.run(t, args...)
	if err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return out
}

func (e *testEnv) writeCube(t *testing.T, name string, c bitcube.Cube) string {
	t.Helper()
	path := filepath.Join(e.dir, name)
	if err := bitcube.WriteFile(path, c); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestShowEmptyWorkspace(t *testing.T) {
	env := newTestEnv(t)
	got := env.mustRun(t, "show")
	want := bitcube.Solved().String() + "Moves: (none)\nSolved\n"
	if got != want {
		t.Errorf("show =\n%s\nwant\n%s", got, want)
	}
}

func TestTurnAndUndo(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "init")

	out := env.mustRun(t, "turn", "R", "U", "R' U'")
	if !strings.Contains(out, "Moves: R U R' U' (4)") {
		t.Errorf("turn output missing moves:\n%s", out)
	}
	if strings.Contains(out, "Solved") {
		t.Errorf("cube should not be solved after one sexy move:\n%s", out)
	}

	got := env.mustRun(t, "show", "--plain")
	if want := bitcube.Solved().Apply(bitcube.SexyMove...).String(); got != want {
		t.Errorf("show --plain =\n%s\nwant\n%s", got, want)
	}

	out = env.mustRun(t, "undo", "10")
	if !strings.HasPrefix(out, "Undid: U' R' U R\n") || !strings.Contains(out, "Solved") {
		t.Errorf("undo output =\n%s", out)
	}

	if _, err := env.run(t, "undo"); err == nil {
		t.Error("undo on empty history should fail")
	}
}

func TestTurnRejectsBadNotation(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.run(t, "turn", "R", "Q")
	if !errors.Is(err, bitcube.ErrInvalidNotation) {
		t.Fatalf("turn error = %v, want ErrInvalidNotation", err)
	}

	// Nothing was applied.
	if got := env.mustRun(t, "show", "--plain"); got != bitcube.Solved().String() {
		t.Errorf("workspace changed after failed turn:\n%s", got)
	}
}

func TestInitFromFile(t *testing.T) {
	env := newTestEnv(t)
	start := bitcube.Solved().Apply(bitcube.TPerm...).F2()
	path := env.writeCube(t, "start.txt", start)

	env.mustRun(t, "init", path)
	env.mustRun(t, "turn", "F2")
	if got := env.mustRun(t, "show", "--plain"); got != start.F2().String() {
		t.Errorf("show --plain =\n%s", got)
	}

	out := filepath.Join(env.dir, "out.txt")
	env.mustRun(t, "export", out)
	c, err := bitcube.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile(export): %v", err)
	}
	if !c.Equal(start.F2()) {
		t.Errorf("exported cube =\n%s", c)
	}
}

func TestValidate(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun(t, "validate")
	if !strings.HasPrefix(out, "working cube: valid\n") {
		t.Errorf("validate output = %q", out)
	}

	bad := strings.Replace(bitcube.Solved().String(), "| 2 2 2 |", "| 1 2 2 |", 1)
	path := filepath.Join(env.dir, "bad.txt")
	if err := os.WriteFile(path, []byte(bad), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := env.run(t, "validate", path)
	var ice *bitcube.InvalidCubeError
	if !errors.As(err, &ice) || ice.Kind != bitcube.InvalidCount || ice.Color != 1 {
		t.Errorf("validate error = %v, want color 1 overcount", err)
	}
}

func TestEquiv(t *testing.T) {
	env := newTestEnv(t)
	solved := bitcube.Solved()
	a := env.writeCube(t, "a.txt", solved)

	wild := strings.Replace(solved.String(), "| 1 1 1 |", "| 1 7 1 |", 1)
	b := filepath.Join(env.dir, "b.txt")
	if err := os.WriteFile(b, []byte(wild), 0644); err != nil {
		t.Fatal(err)
	}
	if out := env.mustRun(t, "equiv", a, b); out != "equivalent\n" {
		t.Errorf("equiv = %q, want equivalent", out)
	}

	c := env.writeCube(t, "c.txt", solved.U())
	out, err := env.run(t, "equiv", a, c)
	if !errors.Is(err, errNotEquivalent) || out != "not equivalent\n" {
		t.Errorf("equiv = %q, %v; want not equivalent", out, err)
	}
}

func TestSaveLoadListDelete(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "turn", "F", "R")
	env.mustRun(t, "save", "fr")

	env.mustRun(t, "init")
	env.mustRun(t, "turn", "B2")
	env.mustRun(t, "save", "b2")

	out := env.mustRun(t, "list")
	if !strings.Contains(out, "b2") || !strings.Contains(out, "fr") ||
		strings.Index(out, "b2") > strings.Index(out, "fr") {
		t.Errorf("list output =\n%s", out)
	}

	out = env.mustRun(t, "load", "fr")
	if !strings.HasPrefix(out, "State: fr\n") {
		t.Errorf("load output =\n%s", out)
	}
	if got := env.mustRun(t, "show", "--plain"); got != bitcube.Solved().F().R().String() {
		t.Errorf("loaded cube =\n%s", got)
	}

	env.mustRun(t, "delete", "fr")
	if _, err := env.run(t, "load", "fr"); !errors.Is(err, bitcube.ErrNotFound) {
		t.Errorf("load deleted state error = %v, want ErrNotFound", err)
	}
	if _, err := env.run(t, "delete", "fr"); !errors.Is(err, bitcube.ErrNotFound) {
		t.Errorf("delete deleted state error = %v, want ErrNotFound", err)
	}
}
