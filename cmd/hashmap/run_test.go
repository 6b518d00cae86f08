package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/RomanDudnik/HashMapMethods/stringmap"
)

func TestRunScript(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{
			name:   "put then get",
			script: "put a 1\nget a\nget b\n",
			want:   "1\n<nil>\n",
		},
		{
			name:   "overwrite and delete",
			script: "# comment\nput a 1\nput a 2\n\nget a\ndel a\nget a\nlen\n",
			want:   "2\n<nil>\nsize=0 capacity=16\n",
		},
		{
			name:   "values",
			script: "put a x\nput b x\nvalues\n",
			want:   "x\nx\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var out bytes.Buffer
			err := runScript(strings.NewReader(test.script), &out,
				stringmap.New(), zerolog.Nop())
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, out.String()); diff != "" {
				t.Fatalf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunScriptErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{name: "unknown", script: "put a 1\nfrob a\n", want: `line 2: unknown command "frob"`},
		{name: "arity", script: "put a\n", want: "line 1: put takes 2 arguments, got 1"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var out bytes.Buffer
			err := runScript(strings.NewReader(test.script), &out,
				stringmap.New(), zerolog.Nop())
			if err == nil || err.Error() != test.want {
				t.Fatalf("got error %v, want %q", err, test.want)
			}
		})
	}
}

func TestRunCommandGrows(t *testing.T) {
	var script strings.Builder
	for _, k := range []string{"a", "b", "c"} {
		script.WriteString("put " + k + " " + k + "\n")
	}
	script.WriteString("len\n")

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"run", "--capacity", "4", "--log-level", "debug"})
	cmd.SetIn(strings.NewReader(script.String()))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "size=3 capacity=8\n" {
		t.Fatalf("output = %q", got)
	}
	if !strings.Contains(errOut.String(), "map grew") {
		t.Fatalf("missing resize log line in %q", errOut.String())
	}
}

func TestRunCommandFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.txt")
	if err := os.WriteFile(path, []byte("put k v\nget k\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"run", path})
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if out.String() != "v\n" {
		t.Fatalf("output = %q", out.String())
	}
}

func TestRunCommandBadCapacity(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"run", "--capacity", "0"})
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error for capacity 0")
	}
}
