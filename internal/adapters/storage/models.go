package storage

import "time"

// MirrorEventModel is the GORM model for the mirror_events table
type MirrorEventModel struct {
	CreatedAt time.Time `gorm:"not null;index:idx_mirror_created_at"`
	Error     string    `gorm:"not null;default:''"`
	FileName  string    `gorm:"not null;index:idx_mirror_file_name"`
	ID        string    `gorm:"primaryKey"`
	Op        string    `gorm:"not null;check:op IN ('save','delete')"`
}

// TableName specifies the table name for GORM
func (MirrorEventModel) TableName() string { return "mirror_events" }
