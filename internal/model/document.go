package model

import "time"

// Document represents an ingested file together with its AI-derived content.
// This is a pure domain model with no database-specific dependencies or tags.
// It can be used across layers (HTTP, service, storage) without coupling to persistence.
type Document struct {
	ID              string    `json:"id"`
	OriginalName    string    `json:"original_name"`
	StoredName      string    `json:"stored_name"`
	StoragePath     string    `json:"storage_path"`
	MimeType        string    `json:"mime_type"`
	SizeBytes       int64     `json:"size_bytes"`
	Summary         string    `json:"summary"`
	MarkdownContent string    `json:"markdown_content"`
	FolderID        *string   `json:"folder_id"`
	UploadedAt      time.Time `json:"uploaded_at"`
}
