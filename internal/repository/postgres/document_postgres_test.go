package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"docshelf/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var docColumns = []string{"id", "original_name", "stored_name", "storage_path", "mime_type", "size_bytes", "summary", "markdown_content", "folder_id", "uploaded_at"}

func TestDocumentPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	doc := &model.Document{
		ID:              "test-uuid",
		OriginalName:    "notes.txt",
		StoredName:      "abc123.txt",
		StoragePath:     "test-uuid/notes.txt",
		MimeType:        "text/plain",
		SizeBytes:       123,
		Summary:         "a summary",
		MarkdownContent: "# notes",
		FolderID:        nil,
		UploadedAt:      now,
	}

	rows := sqlmock.NewRows(docColumns).
		AddRow(doc.ID, doc.OriginalName, doc.StoredName, doc.StoragePath, doc.MimeType, doc.SizeBytes, doc.Summary, doc.MarkdownContent, nil, doc.UploadedAt)

	mock.ExpectQuery("INSERT INTO documents").
		WithArgs(doc.ID, doc.OriginalName, doc.StoredName, doc.StoragePath, doc.MimeType, doc.SizeBytes, doc.Summary, doc.MarkdownContent, doc.FolderID, doc.UploadedAt).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, doc)

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, doc.ID, result.ID)
	assert.Equal(t, doc.StoragePath, result.StoragePath)
	assert.Nil(t, result.FolderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		folderID := "folder-1"
		rows := sqlmock.NewRows(docColumns).
			AddRow("test-id", "file.txt", "stored.txt", "test-id/file.txt", "text/plain", 100, "sum", "md", folderID, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM documents WHERE id = ?").
			WithArgs("test-id").
			WillReturnRows(rows)

		doc, err := repo.FindByID(ctx, "test-id")

		assert.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, "test-id", doc.ID)
		require.NotNil(t, doc.FolderID)
		assert.Equal(t, "folder-1", *doc.FolderID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM documents WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		doc, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, doc)
	})
}

func TestDocumentPostgres_ListByFolder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("all documents when folder is nil", func(t *testing.T) {
		rows := sqlmock.NewRows(docColumns).
			AddRow("d1", "a.txt", "s1.txt", "d1/a.txt", "text/plain", 10, "", "", nil, time.Now()).
			AddRow("d2", "b.txt", "s2.txt", "d2/b.txt", "text/plain", 20, "", "", nil, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM documents ORDER BY uploaded_at").
			WillReturnRows(rows)

		docs, err := repo.ListByFolder(ctx, nil)

		assert.NoError(t, err)
		assert.Len(t, docs, 2)
	})

	t.Run("filtered by folder", func(t *testing.T) {
		rows := sqlmock.NewRows(docColumns).
			AddRow("d1", "a.txt", "s1.txt", "d1/a.txt", "text/plain", 10, "", "", "f1", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM documents WHERE folder_id = ?").
			WithArgs("f1").
			WillReturnRows(rows)

		folderID := "f1"
		docs, err := repo.ListByFolder(ctx, &folderID)

		assert.NoError(t, err)
		assert.Len(t, docs, 1)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)

	mock.ExpectExec("DELETE FROM documents WHERE id = ?").
		WithArgs("test-id").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), "test-id"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
