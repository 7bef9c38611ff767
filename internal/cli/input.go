package cli

import (
	"errors"
	"fmt"
	"os"
)

// LoadError describes a failure to read an input file.
type LoadError struct {
	Code    string
	Path    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Path, e.Message)
}

// readInputFile loads a puzzle input, mapping missing paths onto the
// unified error-code table.
func readInputFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Path: path, Message: "input file not found"}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeGeneric, Path: path, Message: err.Error()}
	}
	return data, nil
}

// failLoad renders a load error and returns the matching ExitError.
func failLoad(f *OutputFormatter, err error) error {
	var le *LoadError
	if errors.As(err, &le) {
		_ = f.Error(le.Code, fmt.Sprintf("%s: %s", le.Message, le.Path), nil)
		return WrapExitError(ExitFailure, "failed to read input", err)
	}
	_ = f.Error(ErrCodeGeneric, err.Error(), nil)
	return WrapExitError(ExitFailure, "failed to read input", err)
}
