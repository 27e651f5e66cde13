package model

import "time"

// Folder is a node in the folder hierarchy. ParentID is nil for root-level
// folders. Names are unique among siblings (case-insensitive); the database
// constraint is the final arbiter of that uniqueness.
type Folder struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ParentID  *string   `json:"parent_id"`
	CreatedAt time.Time `json:"created_at"`
}

// FolderNode is a folder with its resolved children, used by the tree projection.
type FolderNode struct {
	Folder
	Children []*FolderNode `json:"children"`
}
