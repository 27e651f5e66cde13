package handler

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"docshelf/internal/ai"
	"docshelf/internal/extract"
	"docshelf/internal/service"
)

// maxUploadBytes caps a single uploaded file at 50 MB, matching the Fiber
// body limit configured in main.
const maxUploadBytes = 50 << 20

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers translate transport concerns; business logic lives in the services.
func RegisterRoutes(app *fiber.App, db *sql.DB, docSvc service.DocumentService, folderSvc service.FolderService) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Get("/documents", ListDocuments(docSvc))
	app.Post("/documents/upload", UploadDocument(docSvc))
	app.Get("/documents/:id", GetDocument(docSvc))
	app.Delete("/documents/:id", DeleteDocument(docSvc))

	app.Get("/folders", ListFolders(folderSvc))
	app.Post("/folders", CreateFolder(folderSvc))
	app.Get("/folders/tree", FolderTree(folderSvc))
}

// HealthCheck reports readiness by pinging the database.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a simple liveness endpoint with no dependency checks.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// folderIDFromQuery normalizes the folder_id query parameter. An absent or
// empty value, or the literal "root", means the top level.
func folderIDFromQuery(c *fiber.Ctx) *string {
	id := c.Query("folder_id")
	if id == "" || id == "root" {
		return nil
	}
	return &id
}

// ListDocuments returns the documents of a folder together with its child
// folders. Without folder_id it lists every document alongside root folders.
func ListDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.List(c.UserContext(), folderIDFromQuery(c))
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// UploadDocument ingests one multipart file (field name: file). An optional
// folder_id form field places the document in a folder.
func UploadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}
		if fh.Size > maxUploadBytes {
			return writeError(c, fiber.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "uploaded file exceeds the size limit")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_READ_ERROR", "cannot read uploaded file")
		}

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		var folderID *string
		if v := c.FormValue("folder_id"); v != "" && v != "root" {
			folderID = &v
		}

		doc, err := svc.Ingest(c.UserContext(), data, fh.Filename, ct, fh.Size, folderID)
		if err != nil {
			return ingestError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// ingestError maps pipeline failures onto HTTP statuses. Rejections of the
// file itself are client errors, a failed model call is a bad gateway, and
// anything touching durable state stays an opaque 500.
func ingestError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrEmptyFile):
		return writeError(c, fiber.StatusBadRequest, "EMPTY_FILE", "uploaded file is empty")
	case errors.Is(err, extract.ErrUnsupportedFileType):
		return writeError(c, fiber.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "file type is not supported")
	case errors.Is(err, extract.ErrUnsupportedContent):
		return writeError(c, fiber.StatusUnprocessableEntity, "UNSUPPORTED_CONTENT", "no text could be extracted from the file")
	case errors.Is(err, extract.ErrExtractionTooShort):
		return writeError(c, fiber.StatusUnprocessableEntity, "EXTRACTION_TOO_SHORT", "extracted text is too short to process")
	case errors.Is(err, service.ErrFolderNotFound):
		return writeError(c, fiber.StatusNotFound, "FOLDER_NOT_FOUND", "target folder not found")
	case errors.Is(err, ai.ErrGenerationFailed):
		return writeError(c, fiber.StatusBadGateway, "GENERATION_FAILED", "content generation failed")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// GetDocument returns a single document by ID.
func GetDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		doc, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(doc)
	}
}

// DeleteDocument removes a document's blob and record.
func DeleteDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// createFolderRequest is the JSON body of POST /folders.
type createFolderRequest struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id"`
}

// CreateFolder creates a folder under an optional parent. The parent_id
// value "root" (or null) creates a top-level folder.
func CreateFolder(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createFolderRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON")
		}

		folder, err := svc.Create(c.UserContext(), req.Name, req.ParentID)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidName):
				return writeError(c, fiber.StatusBadRequest, "INVALID_NAME", "folder name is invalid")
			case errors.Is(err, service.ErrFolderNotFound):
				return writeError(c, fiber.StatusNotFound, "PARENT_NOT_FOUND", "parent folder not found")
			case errors.Is(err, service.ErrDuplicateFolder):
				return writeError(c, fiber.StatusConflict, "DUPLICATE_FOLDER", "a sibling folder with this name already exists")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.Status(fiber.StatusCreated).JSON(folder)
	}
}

// ListFolders returns the flat folder list.
func ListFolders(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		folders, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(folders)
	}
}

// FolderTree returns the nested folder hierarchy.
func FolderTree(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tree, err := svc.Tree(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(tree)
	}
}
