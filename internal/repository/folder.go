package repository

import (
	"context"
	"errors"

	"docshelf/internal/model"
)

// ErrConflict is returned by Create when the database uniqueness constraint
// on sibling folder names rejects the insert. The constraint, not an
// application-level pre-check, is the final arbiter of duplicates.
var ErrConflict = errors.New("folder name conflict")

// FolderRepository defines data access for the folder hierarchy.
type FolderRepository interface {
	// Create inserts a new folder. A sibling-uniqueness violation is
	// surfaced as ErrConflict.
	Create(ctx context.Context, folder *model.Folder) (*model.Folder, error)

	// FindByID returns a folder by its ID.
	FindByID(ctx context.Context, id string) (*model.Folder, error)

	// ListChildren returns folders whose parent is folderID, ordered by
	// name. A nil folderID returns root-level folders.
	ListChildren(ctx context.Context, folderID *string) ([]model.Folder, error)

	// ListAll returns the full flat folder set ordered by name.
	ListAll(ctx context.Context) ([]model.Folder, error)
}
