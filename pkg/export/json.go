package export

import (
	"encoding/json"
	"os"

	codeinverrors "codeinv/pkg/errors"
	"codeinv/pkg/inventory"
)

// JSONWriter writes inventory records as an indented JSON array.
type JSONWriter struct {
	Path string
}

// Write implements Writer.
func (w *JSONWriter) Write(records []inventory.Record) error {
	if err := ensureParentDir(w.Path); err != nil {
		return codeinverrors.NewWriterError(FormatJSON, w.Path, err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return codeinverrors.NewWriterError(FormatJSON, w.Path, err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(w.Path, data, 0o644); err != nil {
		return codeinverrors.NewWriterError(FormatJSON, w.Path, err)
	}
	return nil
}
