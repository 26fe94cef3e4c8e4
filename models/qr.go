package models

import (
	"time"

	"gorm.io/gorm"
)

// QRPoster is a printable table QR asset uploaded by staff. The QR code
// itself is generated outside this service; we only store and serve the
// poster file for reprinting.
type QRPoster struct {
	ID          uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	TableNumber string         `json:"table_number" gorm:"index;not null"`
	FileName    string         `json:"file_name" gorm:"not null"`
	FileURL     string         `json:"file_url" gorm:"not null"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}
