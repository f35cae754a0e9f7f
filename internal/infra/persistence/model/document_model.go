package model

import (
	"time"

	"gorm.io/datatypes"
)

// DocumentModel is the GORM-specific struct for the 'documents' table.
// Every collection shares the table; the payload lives in a JSONB column.
type DocumentModel struct {
	Collection string         `gorm:"type:varchar(128);primaryKey"`
	ID         string         `gorm:"type:varchar(128);primaryKey"`
	Data       datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time      `gorm:"not null"`
	UpdatedAt  time.Time      `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (DocumentModel) TableName() string {
	return "documents"
}
