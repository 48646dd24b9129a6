package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name        string    `gorm:"uniqueIndex;not null"`
	Description string    `gorm:"not null"`
	IsActive    bool      `gorm:"default:true"`

	Services []Service `gorm:"foreignKey:CategoryID"`

	gorm.Model
}
