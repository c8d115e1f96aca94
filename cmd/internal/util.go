package internal

import (
	"fmt"
	"os"
)

// Error is an error that carries the exit status the process
// should finish with. An empty Msg means nothing should be
// printed; the status alone is propagated.
type Error struct {
	Msg  string
	Code int
}

func (e *Error) Error() string {
	return e.Msg
}

// UsageError is returned when the launcher is given the wrong
// number of arguments.
type UsageError struct {
	// Name is the name the program was invoked with.
	Name string
}

func (u *UsageError) Error() string {
	return fmt.Sprintf("Usage: %s path/to/grades.csv", u.Name)
}

// Mkdir creates a directory
func Mkdir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0775)
	}
	return nil
}
