package settings

import (
	"context"
)

type SettingsService interface {
	GetEmailConfig(ctx context.Context) (*EmailConfig, error)
	GetUploadConfig(ctx context.Context) (*UploadConfig, error)
	SaveEmailConfig(ctx context.Context, config *EmailConfig) error
	SaveUploadConfig(ctx context.Context, config *UploadConfig) error
}

type SettingsServiceImpl struct {
	Repo SettingsRepository
}

func NewSettingsService(repo SettingsRepository) SettingsService {
	return &SettingsServiceImpl{Repo: repo}
}

func (s *SettingsServiceImpl) GetEmailConfig(ctx context.Context) (*EmailConfig, error) {
	settings, err := s.Repo.GetByType(ctx, SettingsTypeEmail)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, nil
	}
	return settings.Email, nil
}

func (s *SettingsServiceImpl) GetUploadConfig(ctx context.Context) (*UploadConfig, error) {
	settings, err := s.Repo.GetByType(ctx, SettingsTypeUpload)
	if err != nil {
		return nil, err
	}
	if settings == nil || settings.Upload == nil {
		// Sensible defaults when nothing is configured yet
		return &UploadConfig{MaxFileSizeMB: 10, AllowedFileTypes: []string{"image/jpeg", "image/png", "application/pdf"}}, nil
	}
	return settings.Upload, nil
}

func (s *SettingsServiceImpl) SaveEmailConfig(ctx context.Context, config *EmailConfig) error {
	return s.Repo.Upsert(ctx, &Settings{Type: SettingsTypeEmail, Email: config})
}

func (s *SettingsServiceImpl) SaveUploadConfig(ctx context.Context, config *UploadConfig) error {
	return s.Repo.Upsert(ctx, &Settings{Type: SettingsTypeUpload, Upload: config})
}
