package export

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	codeinverrors "codeinv/pkg/errors"
	"codeinv/pkg/inventory"
)

// columnOrder is the fixed CSV column order. Downstream consumers diff
// inventories, so it never changes silently.
var columnOrder = []string{
	"project_id",
	"project_name",
	"project_type",
	"primary_language",
	"location",
	"github_url",
	"status",
	"keywords",
	"purpose",
	"repo_root",
	"is_repo_root",
	"parent_repo",
	"detection_source",
}

// CSVWriter writes inventory records to a CSV file with a header row.
type CSVWriter struct {
	Path string
}

// Write implements Writer.
func (w *CSVWriter) Write(records []inventory.Record) error {
	if err := ensureParentDir(w.Path); err != nil {
		return codeinverrors.NewWriterError(FormatCSV, w.Path, err)
	}

	file, err := os.Create(w.Path)
	if err != nil {
		return codeinverrors.NewWriterError(FormatCSV, w.Path, err)
	}
	defer file.Close()

	cw := csv.NewWriter(file)
	if err := cw.Write(columnOrder); err != nil {
		return codeinverrors.NewWriterError(FormatCSV, w.Path, err)
	}
	for _, record := range records {
		if err := cw.Write(csvRow(record)); err != nil {
			return codeinverrors.NewWriterError(FormatCSV, w.Path, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return codeinverrors.NewWriterError(FormatCSV, w.Path, err)
	}
	if err := file.Close(); err != nil {
		return codeinverrors.NewWriterError(FormatCSV, w.Path, err)
	}
	return nil
}

// csvRow flattens a record into cells following columnOrder: keywords are
// joined with the keyword separator and the boolean is stringified.
func csvRow(record inventory.Record) []string {
	return []string{
		record.ProjectID,
		record.ProjectName,
		record.ProjectType,
		record.PrimaryLanguage,
		record.Location,
		record.GitHubURL,
		record.Status,
		strings.Join(record.Keywords, inventory.KeywordSeparator),
		record.Purpose,
		record.RepoRoot,
		strconv.FormatBool(record.IsRepoRoot),
		record.ParentRepo,
		record.Source,
	}
}
