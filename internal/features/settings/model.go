package settings

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SettingsType string

const (
	SettingsTypeEmail  SettingsType = "email"
	SettingsTypeUpload SettingsType = "upload"
)

type EmailConfig struct {
	SMTPHost     string `bson:"smtp_host" json:"smtp_host"`
	SMTPPort     int    `bson:"smtp_port" json:"smtp_port"`
	SMTPUser     string `bson:"smtp_user" json:"smtp_user"`
	SMTPPassword string `bson:"smtp_password" json:"-"`
	FromEmail    string `bson:"from_email" json:"from_email"`
}

type UploadConfig struct {
	MaxFileSizeMB    int      `bson:"max_file_size_mb" json:"max_file_size_mb"`
	AllowedFileTypes []string `bson:"allowed_file_types" json:"allowed_file_types"`
}

// Settings is a per-type singleton document.
type Settings struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type      SettingsType       `bson:"type" json:"type"`
	Email     *EmailConfig       `bson:"email,omitempty" json:"email,omitempty"`
	Upload    *UploadConfig      `bson:"upload,omitempty" json:"upload,omitempty"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
