// Package launch locates and runs the grade editor that is
// installed alongside the launcher binary.
package launch

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/harrybrwn/errs"
	"github.com/pkg/errors"
)

// DefaultInterpreter runs the editor script.
const DefaultInterpreter = "python3"

// DefaultScript is the editor's file name.
const DefaultScript = "editgrades.py"

// Launcher runs a companion editor script with one file argument.
type Launcher struct {
	// Dir is the directory holding the editor script. Empty means the
	// directory containing the running executable.
	Dir         string
	Interpreter string
	Script      string

	Stdin          io.Reader
	Stdout, Stderr io.Writer
}

// New creates a Launcher that runs the default editor with
// the current process's standard streams.
func New() *Launcher {
	return &Launcher{
		Interpreter: DefaultInterpreter,
		Script:      DefaultScript,
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
	}
}

// ExecDir finds the directory containing the running executable,
// with any symlinks to the executable resolved first so that the
// editor is found next to the real install location.
func ExecDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, "could not find the running executable")
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", errors.Wrap(err, "could not resolve the running executable")
	}
	return filepath.Dir(exe), nil
}

// Editor returns the full path of the editor script. A relative
// script name is looked up in Dir, an absolute one is used as given.
func (l *Launcher) Editor() (string, error) {
	var err error
	script := l.Script
	if script == "" {
		script = DefaultScript
	}
	editor := script
	if !filepath.IsAbs(script) {
		dir := l.Dir
		if dir == "" {
			if dir, err = ExecDir(); err != nil {
				return "", err
			}
		}
		editor = filepath.Join(dir, script)
	}
	if _, err = os.Stat(editor); os.IsNotExist(err) {
		return "", errs.New(fmt.Sprintf("grade editor not found at %s", editor))
	} else if err != nil {
		return "", errors.Wrap(err, "could not stat the grade editor")
	}
	return editor, nil
}

// Run invokes the editor with csvpath as its only argument and waits
// for it to finish. The editor's exit status is returned; output goes
// straight to the launcher's own streams.
func (l *Launcher) Run(csvpath string) (int, error) {
	editor, err := l.Editor()
	if err != nil {
		return 1, err
	}
	interp := l.Interpreter
	if interp == "" {
		interp = DefaultInterpreter
	}
	ex := exec.Command(interp, editor, csvpath)
	ex.Stdout, ex.Stderr, ex.Stdin = l.Stdout, l.Stderr, l.Stdin
	err = ex.Run()
	if err == nil {
		return 0, nil
	}
	if exit, ok := err.(*exec.ExitError); ok {
		return exit.ExitCode(), nil
	}
	return 1, errors.Wrapf(err, "could not run %s", editor)
}
