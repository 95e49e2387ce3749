package domain

import "context"

// ResumeUpload is a time-boxed presigned PUT target. The client uploads
// directly to object storage; the server only ever stores the resulting URL.
type ResumeUpload struct {
	PresignedURL string `json:"presigned_url"`
	FileName     string `json:"file_name"`
}

type UploadUsecase interface {
	PresignResumeUpload(ctx context.Context, userID int64, fileName, contentType string) (*ResumeUpload, error)
}
