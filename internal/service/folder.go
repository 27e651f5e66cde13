package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"docshelf/internal/model"
	"docshelf/internal/repository"
)

// MaxFolderNameLength bounds folder display names.
const MaxFolderNameLength = 100

// rootSentinel is accepted in place of a nil parent for root-level folders.
const rootSentinel = "root"

var folderNameRe = regexp.MustCompile(`^[a-zA-Z0-9-_ ]+$`)

// FolderService defines folder hierarchy use cases.
type FolderService interface {
	// Create validates the name, resolves the parent and inserts the
	// folder. The database uniqueness constraint decides sibling-name
	// duplicates; a violation surfaces as ErrDuplicateFolder.
	Create(ctx context.Context, name string, parentID *string) (*model.Folder, error)

	// List returns the full flat folder set ordered by name.
	List(ctx context.Context) ([]model.Folder, error)

	// Tree returns the folder forest built from the full flat set.
	Tree(ctx context.Context) ([]*model.FolderNode, error)
}

type folderService struct {
	repo   repository.FolderRepository
	logger *slog.Logger
}

// NewFolderService constructs a new FolderService.
func NewFolderService(repo repository.FolderRepository, logger *slog.Logger) FolderService {
	if logger == nil {
		logger = slog.Default()
	}
	return &folderService{repo: repo, logger: logger}
}

func (s *folderService) Create(ctx context.Context, name string, parentID *string) (*model.Folder, error) {
	name = strings.TrimSpace(name)
	if err := validateFolderName(name); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidName, err)
	}

	// The browsing surface sends "root" (or an empty string) for top-level
	// folders; both mean no parent.
	if parentID != nil && (*parentID == rootSentinel || *parentID == "") {
		parentID = nil
	}

	if parentID != nil {
		if _, err := s.repo.FindByID(ctx, *parentID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, fmt.Errorf("%w: parent %s", ErrFolderNotFound, *parentID)
			}
			return nil, fmt.Errorf("resolve parent folder: %w", err)
		}
	}

	folder := &model.Folder{
		ID:        uuid.New().String(),
		Name:      name,
		ParentID:  parentID,
		CreatedAt: time.Now().UTC(),
	}

	stored, err := s.repo.Create(ctx, folder)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateFolder, name)
		}
		return nil, err
	}

	s.logger.Info("folder created",
		"id", stored.ID,
		"name", stored.Name,
		"parent_id", stored.ParentID,
	)
	return stored, nil
}

func (s *folderService) List(ctx context.Context) ([]model.Folder, error) {
	return s.repo.ListAll(ctx)
}

func (s *folderService) Tree(ctx context.Context) ([]*model.FolderNode, error) {
	folders, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return BuildTree(folders), nil
}

// validateFolderName rejects empty, over-long and out-of-charset names.
// The caller trims first, so whitespace-only input fails the Required rule.
func validateFolderName(name string) error {
	return validation.Validate(name,
		validation.Required,
		validation.Length(1, MaxFolderNameLength),
		validation.Match(folderNameRe).
			Error("folder name can only contain letters, numbers, spaces, hyphens, and underscores"),
	)
}

// BuildTree groups the flat folder set into a forest. Folders whose declared
// parent is absent from the set are treated as roots rather than dropped.
// Children are sorted by name recursively with locale-aware ordering; the
// function is a pure read-side projection and may be recomputed on every read.
func BuildTree(folders []model.Folder) []*model.FolderNode {
	nodes := make(map[string]*model.FolderNode, len(folders))
	for _, f := range folders {
		nodes[f.ID] = &model.FolderNode{Folder: f, Children: []*model.FolderNode{}}
	}

	roots := []*model.FolderNode{}
	for _, f := range folders {
		node := nodes[f.ID]
		if f.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*f.ParentID]
		if !ok {
			// Orphan: parent missing from the set, promote to root.
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	sortTree(collate.New(language.Und, collate.Loose), roots)
	return roots
}

func sortTree(c *collate.Collator, nodes []*model.FolderNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return c.CompareString(nodes[i].Name, nodes[j].Name) < 0
	})
	for _, n := range nodes {
		if len(n.Children) > 0 {
			sortTree(c, n.Children)
		}
	}
}
