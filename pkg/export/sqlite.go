package export

import (
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	codeinverrors "codeinv/pkg/errors"
	"codeinv/pkg/inventory"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS scan_runs (
	run_id TEXT PRIMARY KEY,
	started_at INTEGER NOT NULL,
	finished_at INTEGER NOT NULL,
	record_count INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS projects (
	run_id TEXT NOT NULL REFERENCES scan_runs(run_id),
	project_id TEXT NOT NULL,
	project_name TEXT NOT NULL,
	project_type TEXT NOT NULL,
	primary_language TEXT NOT NULL,
	location TEXT NOT NULL,
	github_url TEXT NOT NULL,
	status TEXT NOT NULL,
	keywords TEXT NOT NULL,
	purpose TEXT NOT NULL,
	repo_root TEXT NOT NULL,
	is_repo_root INTEGER NOT NULL,
	parent_repo TEXT NOT NULL,
	detection_source TEXT NOT NULL,
	PRIMARY KEY (run_id, location)
);
`

// SQLiteWriter appends inventory records to a SQLite database. Every Write
// call creates one scan_runs row and one projects row per record, all in a
// single transaction so a failed write leaves no partial run behind.
type SQLiteWriter struct {
	Path string
}

// Write implements Writer.
func (w *SQLiteWriter) Write(records []inventory.Record) error {
	if err := ensureParentDir(w.Path); err != nil {
		return codeinverrors.NewWriterError(FormatSQLite, w.Path, err)
	}

	db, err := sql.Open("sqlite", w.Path)
	if err != nil {
		return codeinverrors.NewWriterError(FormatSQLite, w.Path, err)
	}
	defer db.Close()

	if _, err := db.Exec(sqliteSchema); err != nil {
		return codeinverrors.NewWriterError(FormatSQLite, w.Path, err)
	}

	started := time.Now()
	tx, err := db.Begin()
	if err != nil {
		return codeinverrors.NewWriterError(FormatSQLite, w.Path, err)
	}
	defer tx.Rollback()

	runID := uuid.NewString()

	stmt, err := tx.Prepare(`INSERT INTO projects (
		run_id, project_id, project_name, project_type, primary_language,
		location, github_url, status, keywords, purpose, repo_root,
		is_repo_root, parent_repo, detection_source
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return codeinverrors.NewWriterError(FormatSQLite, w.Path, err)
	}
	defer stmt.Close()

	for _, record := range records {
		isRoot := 0
		if record.IsRepoRoot {
			isRoot = 1
		}
		_, err := stmt.Exec(
			runID,
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
			isRoot,
			record.ParentRepo,
			record.Source,
		)
		if err != nil {
			return codeinverrors.NewWriterError(FormatSQLite, w.Path, err)
		}
	}

	_, err = tx.Exec(
		`INSERT INTO scan_runs (run_id, started_at, finished_at, record_count) VALUES (?, ?, ?, ?)`,
		runID, started.Unix(), time.Now().Unix(), len(records),
	)
	if err != nil {
		return codeinverrors.NewWriterError(FormatSQLite, w.Path, err)
	}

	if err := tx.Commit(); err != nil {
		return codeinverrors.NewWriterError(FormatSQLite, w.Path, err)
	}
	return nil
}
