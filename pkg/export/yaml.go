package export

import (
	"os"

	"go.yaml.in/yaml/v3"

	codeinverrors "codeinv/pkg/errors"
	"codeinv/pkg/inventory"
)

// YAMLWriter writes inventory records as a YAML sequence.
type YAMLWriter struct {
	Path string
}

// Write implements Writer.
func (w *YAMLWriter) Write(records []inventory.Record) error {
	if err := ensureParentDir(w.Path); err != nil {
		return codeinverrors.NewWriterError(FormatYAML, w.Path, err)
	}

	data, err := yaml.Marshal(records)
	if err != nil {
		return codeinverrors.NewWriterError(FormatYAML, w.Path, err)
	}

	if err := os.WriteFile(w.Path, data, 0o644); err != nil {
		return codeinverrors.NewWriterError(FormatYAML, w.Path, err)
	}
	return nil
}
