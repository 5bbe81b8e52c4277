package source

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

// ErrUnsupportedFile is returned for paths without a known script extension.
var ErrUnsupportedFile = errors.New("unsupported file type")

// SyntaxError reports the first parse error esbuild found in a file.
type SyntaxError struct {
	Path    string
	Line    int // 1-based
	Column  int // 1-based, in bytes
	Message string
}

func (e *SyntaxError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Line, e.Column, e.Message)
}

// LoaderFor picks the esbuild loader for path.
func LoaderFor(path string) (api.Loader, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".js", ".jsx":
		return api.LoaderJSX, true
	case ".mjs", ".cjs":
		return api.LoaderJS, true
	case ".ts", ".mts", ".cts":
		return api.LoaderTS, true
	case ".tsx":
		return api.LoaderTSX, true
	}
	return api.LoaderNone, false
}

// CheckSyntax parses src with esbuild and returns a *SyntaxError for the
// first error, or nil when the file parses.
func CheckSyntax(path string, src []byte) error {
	loader, ok := LoaderFor(path)
	if !ok {
		return fmt.Errorf("%s: %w", path, ErrUnsupportedFile)
	}

	result := api.Transform(string(src), api.TransformOptions{
		Loader:     loader,
		Sourcefile: path,
		JSX:        api.JSXPreserve,
		LogLevel:   api.LogLevelSilent,
	})
	if len(result.Errors) == 0 {
		return nil
	}

	first := result.Errors[0]
	serr := &SyntaxError{Path: path, Message: first.Text}
	if first.Location != nil {
		serr.Line = first.Location.Line
		serr.Column = first.Location.Column + 1
	}
	return serr
}
