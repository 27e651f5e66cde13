package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"docshelf/internal/model"
	"docshelf/internal/repository"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique constraint violations.
const uniqueViolation = "23505"

// FolderPostgres is a PostgreSQL implementation of repository.FolderRepository.
type FolderPostgres struct {
	db *sql.DB
}

// NewFolderPostgres creates a new FolderPostgres repository.
func NewFolderPostgres(db *sql.DB) *FolderPostgres {
	return &FolderPostgres{db: db}
}

var _ repository.FolderRepository = (*FolderPostgres)(nil)

const folderColumns = `id, name, parent_id, created_at`

func scanFolder(row interface{ Scan(dest ...any) error }) (*model.Folder, error) {
	var f model.Folder
	if err := row.Scan(&f.ID, &f.Name, &f.ParentID, &f.CreatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}

// Create inserts a new folder row. The sibling-uniqueness index decides
// duplicates; its violation is mapped to repository.ErrConflict.
func (r *FolderPostgres) Create(ctx context.Context, folder *model.Folder) (*model.Folder, error) {
	const q = `
		INSERT INTO folders (id, name, parent_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + folderColumns
	row := r.db.QueryRowContext(ctx, q, folder.ID, folder.Name, folder.ParentID, folder.CreatedAt)
	out, err := scanFolder(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%w: %s", repository.ErrConflict, folder.Name)
		}
		return nil, err
	}
	return out, nil
}

// FindByID fetches a single folder by its ID.
func (r *FolderPostgres) FindByID(ctx context.Context, id string) (*model.Folder, error) {
	const q = `SELECT ` + folderColumns + ` FROM folders WHERE id = $1`
	return scanFolder(r.db.QueryRowContext(ctx, q, id))
}

// ListChildren returns the folders directly under folderID ordered by name;
// nil folderID selects root-level folders.
func (r *FolderPostgres) ListChildren(ctx context.Context, folderID *string) ([]model.Folder, error) {
	q := `SELECT ` + folderColumns + ` FROM folders WHERE parent_id IS NULL ORDER BY name ASC`
	args := []any{}
	if folderID != nil {
		q = `SELECT ` + folderColumns + ` FROM folders WHERE parent_id = $1 ORDER BY name ASC`
		args = append(args, *folderID)
	}
	return r.queryFolders(ctx, q, args...)
}

// ListAll returns every folder ordered by name.
func (r *FolderPostgres) ListAll(ctx context.Context) ([]model.Folder, error) {
	const q = `SELECT ` + folderColumns + ` FROM folders ORDER BY name ASC`
	return r.queryFolders(ctx, q)
}

func (r *FolderPostgres) queryFolders(ctx context.Context, q string, args ...any) ([]model.Folder, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Folder, 0)
	for rows.Next() {
		f, err := scanFolder(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
