package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"docshelf/internal/ai"
	"docshelf/internal/extract"
	"docshelf/internal/markdown"
	"docshelf/internal/model"
	"docshelf/internal/repository"
	"docshelf/internal/storage"
)

// TextExtractor converts raw file bytes plus a declared MIME type into plain
// text. The default is extract.Extract; tests inject failures through it.
type TextExtractor func(data []byte, mimeType string) (string, error)

// ContentGenerator produces the summary and markdown rendition for extracted
// text. Satisfied by *ai.Generator.
type ContentGenerator interface {
	Generate(ctx context.Context, text, displayName string) (*ai.GeneratedContent, error)
}

// FolderContents pairs the documents of a folder with its direct child
// folders, the shape the browsing surface consumes.
type FolderContents struct {
	Documents []model.Document `json:"documents"`
	Folders   []model.Folder   `json:"folders"`
}

// DocumentService defines the document use cases: the ingestion pipeline and
// the read side used for navigation.
type DocumentService interface {
	// Ingest runs the full pipeline for one uploaded file: folder
	// validation, text extraction, AI generation, blob persistence and
	// metadata persistence, compensating the blob write if the metadata
	// insert fails.
	Ingest(ctx context.Context, data []byte, fileName, mimeType string, sizeBytes int64, folderID *string) (*model.Document, error)

	// List returns the documents of a folder together with its child
	// folders. A nil folderID returns every document and the root folders.
	List(ctx context.Context, folderID *string) (*FolderContents, error)

	// Get returns a single document by its ID.
	Get(ctx context.Context, id string) (*model.Document, error)

	// Delete removes a document's blob and then its record.
	Delete(ctx context.Context, id string) error
}

type documentService struct {
	store     storage.BlobStore
	docs      repository.DocumentRepository
	folders   repository.FolderRepository
	extract   TextExtractor
	generator ContentGenerator
	logger    *slog.Logger
}

// NewDocumentService constructs the ingestion orchestrator. A nil extractor
// defaults to extract.Extract.
func NewDocumentService(
	store storage.BlobStore,
	docs repository.DocumentRepository,
	folders repository.FolderRepository,
	extractor TextExtractor,
	generator ContentGenerator,
	logger *slog.Logger,
) DocumentService {
	if extractor == nil {
		extractor = extract.Extract
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &documentService{
		store:     store,
		docs:      docs,
		folders:   folders,
		extract:   extractor,
		generator: generator,
		logger:    logger,
	}
}

func (s *documentService) Ingest(ctx context.Context, data []byte, fileName, mimeType string, sizeBytes int64, folderID *string) (*model.Document, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}

	// Validating: resolve the target folder before any side effect.
	if folderID != nil {
		if _, err := s.folders.FindByID(ctx, *folderID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, fmt.Errorf("%w: %s", ErrFolderNotFound, *folderID)
			}
			return nil, fmt.Errorf("resolve folder: %w", err)
		}
	}

	// Extracting and Generating: failures here abort with nothing to undo.
	text, err := s.extract(data, mimeType)
	if err != nil {
		return nil, err
	}

	generated, err := s.generator.Generate(ctx, text, fileName)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	storagePath := id + "/" + fileName
	storedName := uuid.New().String() + filepath.Ext(fileName)

	// PersistingBlob and PersistingRecord are the only durable-state
	// boundary: the blob goes first, and its deletion is registered as the
	// compensation for a failed record insert.
	sg := newSaga(s.logger)

	if _, err := s.store.Put(ctx, storagePath, bytes.NewReader(data), storage.PutObjectOptions{
		Size:        sizeBytes,
		ContentType: mimeType,
		Metadata:    map[string]string{"original-filename": fileName},
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}
	sg.register("delete blob "+storagePath, func(ctx context.Context) error {
		return s.store.Delete(ctx, storagePath)
	})

	doc := &model.Document{
		ID:              id,
		OriginalName:    fileName,
		StoredName:      storedName,
		StoragePath:     storagePath,
		MimeType:        mimeType,
		SizeBytes:       sizeBytes,
		Summary:         generated.Summary,
		MarkdownContent: markdown.Normalize(generated.Markdown),
		FolderID:        folderID,
		UploadedAt:      time.Now().UTC(),
	}

	stored, err := s.docs.Create(ctx, doc)
	if err != nil {
		sg.unwind(ctx)
		return nil, fmt.Errorf("%w: %v", ErrRecordInsert, err)
	}

	s.logger.Info("document ingested",
		"id", stored.ID,
		"name", stored.OriginalName,
		"mime_type", stored.MimeType,
		"size_bytes", stored.SizeBytes,
	)
	return stored, nil
}

// List returns the contents of a folder: its documents plus its direct child
// folders. A nil folderID lists every document alongside the root folders.
func (s *documentService) List(ctx context.Context, folderID *string) (*FolderContents, error) {
	docs, err := s.docs.ListByFolder(ctx, folderID)
	if err != nil {
		return nil, err
	}
	folders, err := s.folders.ListChildren(ctx, folderID)
	if err != nil {
		return nil, err
	}
	return &FolderContents{Documents: docs, Folders: folders}, nil
}

// Get returns a document by ID.
func (s *documentService) Get(ctx context.Context, id string) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.docs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

// Delete removes a document from storage, then deletes its record.
func (s *documentService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	doc, err := s.docs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	// Delete from storage first; a failure keeps the DB row so the blob
	// reference is never lost.
	if err := s.store.Delete(ctx, doc.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	if err := s.docs.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("document deleted", "id", id, "storage_path", doc.StoragePath)
	return nil
}
