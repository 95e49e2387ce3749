package usecase

import (
	"context"
	"fmt"
	"time"

	"medconnect-backend/internal/domain"
	"medconnect-backend/pkg/apperror"
	"medconnect-backend/pkg/storage"
)

type uploadUsecase struct {
	store *storage.Client
}

func NewUploadUsecase(store *storage.Client) domain.UploadUsecase {
	return &uploadUsecase{store: store}
}

// PresignResumeUpload hands the client a direct upload target. Keys are
// namespaced per user and timestamped so uploads never collide.
func (u *uploadUsecase) PresignResumeUpload(ctx context.Context, userID int64, fileName, contentType string) (*domain.ResumeUpload, error) {
	if fileName == "" || contentType == "" {
		return nil, apperror.BadRequest("file_name and content_type are required")
	}

	key := fmt.Sprintf("user-%d/%d-%s", userID, time.Now().UnixMilli(), fileName)

	url, err := u.store.PresignUpload(ctx, key, contentType)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.ResumeUpload{PresignedURL: url, FileName: key}, nil
}
