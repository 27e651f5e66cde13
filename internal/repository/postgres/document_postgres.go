package postgres

import (
	"context"
	"database/sql"

	"docshelf/internal/model"
	"docshelf/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

const documentColumns = `id, original_name, stored_name, storage_path, mime_type, size_bytes, summary, markdown_content, folder_id, uploaded_at`

func scanDocument(row interface{ Scan(dest ...any) error }) (*model.Document, error) {
	var d model.Document
	if err := row.Scan(
		&d.ID,
		&d.OriginalName,
		&d.StoredName,
		&d.StoragePath,
		&d.MimeType,
		&d.SizeBytes,
		&d.Summary,
		&d.MarkdownContent,
		&d.FolderID,
		&d.UploadedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserts a new document row and returns the stored record.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	const q = `
		INSERT INTO documents (id, original_name, stored_name, storage_path, mime_type, size_bytes, summary, markdown_content, folder_id, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + documentColumns
	row := r.db.QueryRowContext(ctx, q,
		doc.ID,
		doc.OriginalName,
		doc.StoredName,
		doc.StoragePath,
		doc.MimeType,
		doc.SizeBytes,
		doc.Summary,
		doc.MarkdownContent,
		doc.FolderID,
		doc.UploadedAt,
	)
	return scanDocument(row)
}

// FindByID fetches a single document by its ID.
func (r *DocumentPostgres) FindByID(ctx context.Context, id string) (*model.Document, error) {
	const q = `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	return scanDocument(r.db.QueryRowContext(ctx, q, id))
}

// ListByFolder returns documents filtered by folder, newest first.
// A nil folderID means no filter: every document is returned.
func (r *DocumentPostgres) ListByFolder(ctx context.Context, folderID *string) ([]model.Document, error) {
	q := `SELECT ` + documentColumns + ` FROM documents ORDER BY uploaded_at DESC, id DESC`
	args := []any{}
	if folderID != nil {
		q = `SELECT ` + documentColumns + ` FROM documents WHERE folder_id = $1 ORDER BY uploaded_at DESC, id DESC`
		args = append(args, *folderID)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes a document by ID. It does not return an error if the row does not exist.
func (r *DocumentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM documents WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
