package app

import (
	"fmt"
	"os"

	"tread/internal/errors"
)

// appendLine writes line to the export file read by the shell function once
// tread exits. Each invocation appends its own line.
func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.NewExportError("cannot open export file", path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, line); err != nil {
		return errors.NewExportError("cannot write export file", path, err)
	}
	return nil
}
