package file

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type File struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OriginalFilename string             `bson:"original_filename" json:"original_filename"`
	StoredFilename   string             `bson:"stored_filename" json:"stored_filename"`
	Path             string             `bson:"path" json:"-"`
	URL              string             `bson:"url" json:"url"`
	Size             int64              `bson:"size" json:"size"`
	MimeType         string             `bson:"mime_type" json:"mime_type"`
	UploadedBy       string             `bson:"uploaded_by" json:"uploaded_by"`
	RequestID        string             `bson:"request_id,omitempty" json:"request_id,omitempty"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
}
