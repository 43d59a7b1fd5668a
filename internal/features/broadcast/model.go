package broadcast

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BroadcastList is a named list of email recipients maintained by admins.
type BroadcastList struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Recipients []string           `bson:"recipients" json:"recipients"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}
