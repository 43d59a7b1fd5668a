package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"prestova-one/internal/config"
	"prestova-one/internal/features/settings"

	"github.com/google/uuid"
)

type FileService interface {
	// SaveUpload validates, writes the bytes to disk under a generated name
	// and records metadata. The returned File carries the public URL.
	SaveUpload(ctx context.Context, originalName, mimeType string, data []byte, uploadedBy, requestID string) (*File, error)
	GetFile(ctx context.Context, id string) (*File, error)
	FindByRequest(ctx context.Context, requestID string) ([]File, error)
	DeleteFile(ctx context.Context, id string, userID string) error
}

type FileServiceImpl struct {
	FileRepo        FileRepository
	SettingsService settings.SettingsService
	Config          *config.Config
}

func NewFileService(fileRepo FileRepository, settingsService settings.SettingsService, cfg *config.Config) FileService {
	return &FileServiceImpl{
		FileRepo:        fileRepo,
		SettingsService: settingsService,
		Config:          cfg,
	}
}

func (s *FileServiceImpl) SaveUpload(ctx context.Context, originalName, mimeType string, data []byte, uploadedBy, requestID string) (*File, error) {
	uploadCfg, err := s.SettingsService.GetUploadConfig(ctx)
	if err != nil {
		return nil, err
	}

	maxBytes := int64(uploadCfg.MaxFileSizeMB) << 20
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("file too large (max %dMB)", uploadCfg.MaxFileSizeMB)
	}

	if len(uploadCfg.AllowedFileTypes) > 0 {
		allowed := false
		for _, t := range uploadCfg.AllowedFileTypes {
			if mimeType == t {
				allowed = true
				break
			}
		}
		if !allowed {
			return nil, fmt.Errorf("file type not allowed: %s", mimeType)
		}
	}

	if err := os.MkdirAll(s.Config.FSPath, 0o755); err != nil {
		return nil, err
	}

	storedName := uuid.NewString() + filepath.Ext(originalName)
	path := filepath.Join(s.Config.FSPath, storedName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, err
	}

	file := &File{
		OriginalFilename: originalName,
		StoredFilename:   storedName,
		Path:             path,
		URL:              s.Config.FSURL + "/" + storedName,
		Size:             int64(len(data)),
		MimeType:         mimeType,
		UploadedBy:       uploadedBy,
		RequestID:        requestID,
		CreatedAt:        time.Now(),
	}

	if err := s.FileRepo.Save(ctx, file); err != nil {
		// Best effort cleanup of the orphaned blob
		_ = os.Remove(path)
		return nil, err
	}
	return file, nil
}

func (s *FileServiceImpl) GetFile(ctx context.Context, id string) (*File, error) {
	return s.FileRepo.Get(ctx, id)
}

func (s *FileServiceImpl) FindByRequest(ctx context.Context, requestID string) ([]File, error) {
	return s.FileRepo.FindByRequest(ctx, requestID)
}

func (s *FileServiceImpl) DeleteFile(ctx context.Context, id string, userID string) error {
	file, err := s.FileRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	if file.UploadedBy != userID {
		return fmt.Errorf("unauthorized: you can only delete your own files")
	}

	if err := os.Remove(file.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file from disk: %w", err)
	}

	return s.FileRepo.Delete(ctx, id)
}
