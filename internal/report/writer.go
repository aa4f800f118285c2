package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	errorsUtils "github.com/Egor213/LogsAnalysis/pkg/errors"
)

const filePerm = 0o644

var ErrWriteOutput = errors.New("cannot write report file")

// WriteFile replaces path with content. The text goes to a temporary file in
// the same directory first, so a failed run never leaves a partial report.
func WriteFile(path string, content string) error {
	if err := writeFile(path, content); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWriteOutput, path, err)
	}
	return nil
}

func writeFile(path string, content string) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.WriteString(content); err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	if err = tmp.Chmod(filePerm); err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	if err = tmp.Close(); err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	return nil
}
