package repository

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

type Entry struct {
	ID        uint      `gorm:"primaryKey"`
	Title     string    `gorm:"type:varchar(120);not null"`
	Body      string    `gorm:"type:text;not null"`
	ImagePath *string   `gorm:"type:varchar(255)"` // nullable, references a stored upload
	CreatedAt time.Time `gorm:"not null;index"`
}
