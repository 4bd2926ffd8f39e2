package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserDoc as stored in the users collection. UID is the subject id
// assigned by the external identity provider and is unique.
type UserDoc struct {
	ID          primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	UID         string               `json:"uid" bson:"uid"`
	Email       string               `json:"email" bson:"email"`
	DisplayName string               `json:"displayName" bson:"displayName"`
	PhotoURL    string               `json:"photoURL" bson:"photoURL"`
	Bio         string               `json:"bio" bson:"bio"`
	Favorites   []primitive.ObjectID `json:"favorites" bson:"favorites"`
	CreatedAt   time.Time            `json:"createdAt" bson:"createdAt"`
}

// PublicUser is UserDoc without the favorites list, for profile pages
// of other people.
type PublicUser struct {
	ID          primitive.ObjectID `json:"id"`
	UID         string             `json:"uid"`
	Email       string             `json:"email"`
	DisplayName string             `json:"displayName"`
	PhotoURL    string             `json:"photoURL"`
	Bio         string             `json:"bio"`
	CreatedAt   time.Time          `json:"createdAt"`
}

func (u *UserDoc) Public() PublicUser {
	return PublicUser{
		ID:          u.ID,
		UID:         u.UID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		PhotoURL:    u.PhotoURL,
		Bio:         u.Bio,
		CreatedAt:   u.CreatedAt,
	}
}

// Partial profile update; absent fields keep their current value.
type ProfileUpdateRequest struct {
	DisplayName *string `json:"displayName,omitempty"`
	PhotoURL    *string `json:"photoURL,omitempty"`
	Bio         *string `json:"bio,omitempty"`
}
