// Package model contains the GORM-specific structs mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email           string    `gorm:"type:varchar(255);unique;not null"`
	FullName        string    `gorm:"type:varchar(100);not null"`
	HashedPassword  *string   `gorm:"type:varchar(255)"` // NULL for social-only accounts
	UserType        string    `gorm:"type:varchar(20);not null;default:'CUSTOMER'"`
	AuthProvider    string    `gorm:"type:varchar(20);not null;default:'LOCAL'"`
	SocialID        *string   `gorm:"type:varchar(255);uniqueIndex"`
	PhoneNumber     string    `gorm:"type:varchar(30)"`
	ProfileImage    string    `gorm:"type:text"`
	FarmName        *string   `gorm:"type:varchar(100)"`
	FarmLocation    *string   `gorm:"type:varchar(255)"`
	FarmDescription *string   `gorm:"type:text"`
	IsActive        bool      `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Crops []CropModel `gorm:"foreignKey:FarmerID;constraint:OnDelete:CASCADE"`
	Cart  *CartModel  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
