package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"docshelf/internal/model"
	"docshelf/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var folderCols = []string{"id", "name", "parent_id", "created_at"}

func TestFolderPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewFolderPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()

	t.Run("success", func(t *testing.T) {
		folder := &model.Folder{ID: "f1", Name: "Reports", ParentID: nil, CreatedAt: now}

		rows := sqlmock.NewRows(folderCols).AddRow("f1", "Reports", nil, now)
		mock.ExpectQuery("INSERT INTO folders").
			WithArgs("f1", "Reports", nil, now).
			WillReturnRows(rows)

		out, err := repo.Create(ctx, folder)

		assert.NoError(t, err)
		require.NotNil(t, out)
		assert.Equal(t, "Reports", out.Name)
	})

	t.Run("unique violation maps to ErrConflict", func(t *testing.T) {
		folder := &model.Folder{ID: "f2", Name: "Reports", ParentID: nil, CreatedAt: now}

		mock.ExpectQuery("INSERT INTO folders").
			WithArgs("f2", "Reports", nil, now).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_folders_sibling_name"})

		out, err := repo.Create(ctx, folder)

		assert.Nil(t, out)
		assert.ErrorIs(t, err, repository.ErrConflict)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		folder := &model.Folder{ID: "f3", Name: "Other", ParentID: nil, CreatedAt: now}

		mock.ExpectQuery("INSERT INTO folders").
			WithArgs("f3", "Other", nil, now).
			WillReturnError(sql.ErrConnDone)

		_, err := repo.Create(ctx, folder)

		assert.ErrorIs(t, err, sql.ErrConnDone)
		assert.NotErrorIs(t, err, repository.ErrConflict)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFolderPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewFolderPostgres(db)

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(folderCols).AddRow("f1", "Reports", nil, time.Now())
		mock.ExpectQuery("SELECT (.+) FROM folders WHERE id = ?").
			WithArgs("f1").
			WillReturnRows(rows)

		f, err := repo.FindByID(context.Background(), "f1")
		assert.NoError(t, err)
		assert.Equal(t, "Reports", f.Name)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM folders WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		f, err := repo.FindByID(context.Background(), "missing")
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, f)
	})
}

func TestFolderPostgres_ListChildren(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewFolderPostgres(db)

	t.Run("root level", func(t *testing.T) {
		rows := sqlmock.NewRows(folderCols).
			AddRow("f1", "Archive", nil, time.Now()).
			AddRow("f2", "Reports", nil, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM folders WHERE parent_id IS NULL ORDER BY name").
			WillReturnRows(rows)

		folders, err := repo.ListChildren(context.Background(), nil)
		assert.NoError(t, err)
		assert.Len(t, folders, 2)
	})

	t.Run("under a parent", func(t *testing.T) {
		rows := sqlmock.NewRows(folderCols).AddRow("f3", "2026", strPtr("f2"), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM folders WHERE parent_id = ?").
			WithArgs("f2").
			WillReturnRows(rows)

		parent := "f2"
		folders, err := repo.ListChildren(context.Background(), &parent)
		assert.NoError(t, err)
		require.Len(t, folders, 1)
		assert.Equal(t, "2026", folders[0].Name)
	})
}

func TestFolderPostgres_ListAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewFolderPostgres(db)

	rows := sqlmock.NewRows(folderCols).
		AddRow("f1", "Archive", nil, time.Now()).
		AddRow("f3", "2026", strPtr("f1"), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM folders ORDER BY name").WillReturnRows(rows)

	folders, err := repo.ListAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, folders, 2)
}

func strPtr(s string) *string { return &s }
