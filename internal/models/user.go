// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a registered account. Users are created on registration and
// never updated or deleted; rows are removed only by operator intervention.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Posts        []Post    `gorm:"foreignKey:AuthorID" json:"posts,omitempty"`
	Comments     []Comment `gorm:"foreignKey:AuthorID" json:"comments,omitempty"`
}
