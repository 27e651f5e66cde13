package service

import "errors"

// Client-cause errors (bad input, missing folder, invalid name) versus
// system-cause errors (storage/service failures) are kept as distinct
// sentinels so the HTTP layer can map them without string matching.
var (
	ErrEmptyFile       = errors.New("file is empty")
	ErrIDRequired      = errors.New("id is required")
	ErrNotFound        = errors.New("document not found")
	ErrFolderNotFound  = errors.New("folder not found")
	ErrInvalidName     = errors.New("invalid folder name")
	ErrDuplicateFolder = errors.New("folder already exists")

	// ErrStorageWrite means the blob write failed; nothing durable was
	// written, so no compensation is needed.
	ErrStorageWrite = errors.New("storage write failed")
	// ErrRecordInsert means the metadata insert failed after the blob was
	// written; the orchestrator compensates by deleting the blob before
	// surfacing this error.
	ErrRecordInsert = errors.New("record insert failed")
)
