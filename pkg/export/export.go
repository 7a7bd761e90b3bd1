// Package export serializes inventory records to tabular output sinks.
// Each writer emits one row (or document entry) per record with every field
// present; the scan pipeline itself knows nothing about formats.
package export

import (
	"os"
	"path/filepath"
	"strings"

	codeinverrors "codeinv/pkg/errors"
	"codeinv/pkg/inventory"
)

// Writer persists a complete, ordered record collection.
type Writer interface {
	Write(records []inventory.Record) error
}

// Supported output formats.
const (
	FormatCSV    = "csv"
	FormatJSON   = "json"
	FormatYAML   = "yaml"
	FormatSQLite = "sqlite"
)

// NewWriter creates the writer for a format name. An empty format is
// inferred from the output path's extension, defaulting to CSV.
func NewWriter(format, outputPath string) (Writer, error) {
	if format == "" {
		format = formatFromExtension(outputPath)
	}

	switch strings.ToLower(format) {
	case FormatCSV:
		return &CSVWriter{Path: outputPath}, nil
	case FormatJSON:
		return &JSONWriter{Path: outputPath}, nil
	case FormatYAML:
		return &YAMLWriter{Path: outputPath}, nil
	case FormatSQLite:
		return &SQLiteWriter{Path: outputPath}, nil
	default:
		return nil, codeinverrors.Newf("unsupported output format %q", format)
	}
}

func formatFromExtension(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return FormatCSV
	}
}

// ensureParentDir creates the output file's parent directory if needed.
func ensureParentDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
