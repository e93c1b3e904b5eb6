package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service is a catalog entry customers can book.
type Service struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ServiceName    string             `bson:"serviceName,omitempty" json:"serviceName,omitempty"`
	Name           string             `bson:"name,omitempty" json:"name,omitempty"` // legacy documents
	Image          string             `bson:"image,omitempty" json:"image,omitempty"`
	Price          float64            `bson:"price" json:"price"`
	Unit           string             `bson:"unit,omitempty" json:"unit,omitempty"`
	Category       string             `bson:"category,omitempty" json:"category,omitempty"`
	Description    string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedByEmail string             `bson:"createdByEmail,omitempty" json:"createdByEmail,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// DisplayName prefers serviceName and falls back to the legacy name field.
func (s *Service) DisplayName() string {
	if s.ServiceName != "" {
		return s.ServiceName
	}
	return s.Name
}

// ServiceUpdate carries the fields PATCH /services/:id may change. Nil fields are left untouched.
type ServiceUpdate struct {
	ServiceName *string  `json:"serviceName" bson:"serviceName,omitempty"`
	Image       *string  `json:"image" bson:"image,omitempty"`
	Price       *float64 `json:"price" bson:"price,omitempty" binding:"omitempty,gte=0"`
	Unit        *string  `json:"unit" bson:"unit,omitempty"`
	Category    *string  `json:"category" bson:"category,omitempty"`
	Description *string  `json:"description" bson:"description,omitempty"`
}

// IsEmpty reports whether the update would change nothing.
func (u ServiceUpdate) IsEmpty() bool {
	return u.ServiceName == nil && u.Image == nil && u.Price == nil &&
		u.Unit == nil && u.Category == nil && u.Description == nil
}
