package entities

import "time"

// UploadedFile describes the recording selected for the workspace.
// The bytes live in the file store under ObjectKey.
type UploadedFile struct {
	Name        string    `json:"name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	ObjectKey   string    `json:"object_key"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
