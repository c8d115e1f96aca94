package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/harrybrwn/config"
	"github.com/harrybrwn/editgrades/cmd/internal"
	"github.com/harrybrwn/editgrades/cmd/internal/opts"
)

func setup() func() {
	config.SetConfig(conf)
	return func() { *conf = Config{} }
}

func TestUsage(t *testing.T) {
	exp := fmt.Sprintf("Usage: %s path/to/grades.csv", filepath.Base(os.Args[0]))
	for _, args := range [][]string{
		{},
		{"a.csv", "b.csv"},
		{"a.csv", "b.csv", "c.csv"},
	} {
		root := newRoot(&opts.Global{})
		root.SetArgs(args)
		err := root.Execute()
		uerr, ok := err.(*internal.UsageError)
		if !ok {
			t.Fatalf("expected a usage error for %d args; got %v", len(args), err)
		}
		if uerr.Error() != exp {
			t.Errorf("expected %q; got %q", exp, uerr.Error())
		}
	}
}

func TestLaunch(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs /bin/sh")
	}
	defer setup()()
	dir, err := ioutil.TempDir("", "cmd_test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	editor := filepath.Join(dir, "editor.sh")
	if err = ioutil.WriteFile(editor, []byte("exit 4\n"), 0755); err != nil {
		t.Fatal(err)
	}
	grades := filepath.Join(dir, "grades.csv")
	if err = ioutil.WriteFile(grades, []byte("Name,Overall\n"), 0644); err != nil {
		t.Fatal(err)
	}
	conf.Python = "/bin/sh"
	conf.Editor = editor

	root := newRoot(&opts.Global{})
	root.SetArgs([]string{grades})
	err = root.Execute()
	ierr, ok := err.(*internal.Error)
	if !ok {
		t.Fatalf("expected the editor's status to come back as an error; got %v", err)
	}
	if ierr.Code != 4 {
		t.Errorf("expected status 4; got %d", ierr.Code)
	}
	if ierr.Msg != "" {
		t.Error("a status-only error should not carry a message")
	}
}

func TestLaunch_NoEditor(t *testing.T) {
	defer setup()()
	dir, err := ioutil.TempDir("", "cmd_test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	grades := filepath.Join(dir, "grades.csv")
	if err = ioutil.WriteFile(grades, []byte("Name,Overall\n"), 0644); err != nil {
		t.Fatal(err)
	}
	conf.Editor = filepath.Join(dir, "missing.py")

	root := newRoot(&opts.Global{})
	root.SetArgs([]string{grades})
	err = root.Execute()
	if err == nil {
		t.Fatal("expected an error for a missing editor")
	}
	if !strings.Contains(err.Error(), "grade editor not found") {
		t.Errorf("unhelpful error: %v", err)
	}
}
