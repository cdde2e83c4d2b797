// Package models contains data models for the auth service.
package models

import (
	"time"

	"gorm.io/datatypes"
)

// User represents a registered account in the system. Profile carries the
// free-form fields the client submitted at signup; the auth service never
// interprets them, it only stores and echoes them back.
type User struct {
	ID           int64             `json:"id" gorm:"primaryKey"`
	Email        string            `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string            `json:"-" gorm:"not null"`
	Profile      datatypes.JSONMap `json:"profile" gorm:"type:jsonb"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// TableName returns the database table name for the User model.
func (User) TableName() string {
	return "users"
}
