package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account. Password is only populated on inbound
// requests and is never persisted; PasswordHash is never serialized outward.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Password     string             `bson:"-" json:"password,omitempty"`
	Role         string             `bson:"role" json:"role"`
	Avatar       string             `bson:"avatar" json:"avatar"`
	IsActive     bool               `bson:"is_active" json:"is_active"`
	LastLogin    *time.Time         `bson:"last_login,omitempty" json:"last_login,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

func (user *User) ToUserResponse() *UserResponse {
	return &UserResponse{
		ID:       user.ID.Hex(),
		Username: user.Username,
		Role:     user.Role,
		Avatar:   user.Avatar,
	}
}

func (user *User) ToProfileResponse() *ProfileResponse {
	return &ProfileResponse{
		ID:        user.ID.Hex(),
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		Avatar:    user.Avatar,
		LastLogin: user.LastLogin,
		CreatedAt: user.CreatedAt,
	}
}
