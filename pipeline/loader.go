package pipeline

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Load reads the whole input file as text.  The path is resolved relative to
// the working directory.  Invalid UTF-8 sequences are replaced with U+FFFD.
//
// A path which does not exist gives an InputNotFound error; any other failure
// gives an InputUnreadable error.  Both are reported to the user with the same
// message.
func Load(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", newError(InputUnreadable, "load", err)
	}
	if _, err := os.Stat(absPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", newError(InputNotFound, "load", err)
		}
		return "", newError(InputUnreadable, "load", err)
	}
	data, err := os.ReadFile(absPath)
	if err != nil {
		return "", newError(InputUnreadable, "load", err)
	}
	return strings.ToValidUTF8(string(data), "\uFFFD"), nil
}
