package models

import (
	"time"
)

// SettingsID is the fixed key of the settings singleton record.
const SettingsID = "app-settings"

// Photo is a catalogued mistake photo. The id, artifacts, upload timestamp and
// provenance metadata are immutable after creation; only Units and Tags change
// through updates.
type Photo struct {
	ID            string     `gorm:"primaryKey;type:text" json:"id"`
	OriginalImage []byte     `gorm:"not null" json:"-"`
	Thumbnail     []byte     `gorm:"not null" json:"-"`
	UploadedAt    time.Time  `gorm:"index;not null" json:"uploadedAt"`
	FileName      string     `gorm:"size:255" json:"fileName"`
	FileSize      int64      `json:"fileSize"`
	Units         StringList `gorm:"type:json" json:"units"`
	Tags          StringList `gorm:"type:json" json:"tags"`
	CreatedAt     time.Time  `json:"-"`
	UpdatedAt     time.Time  `json:"-"`
}

// Unit is an academic category tag assignable to photos. Its id is derived
// from category and name, so a unit's identity is content-addressed.
type Unit struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Category  string    `gorm:"index;size:255;not null" json:"category"`
	IsCustom  bool      `json:"isCustom"`
	CreatedAt time.Time `json:"createdAt"`
}

// Setting is the settings singleton. Exactly one row exists, keyed by
// SettingsID; partial updates merge into it and the key never changes.
type Setting struct {
	ID                  string      `gorm:"primaryKey;type:text" json:"id"`
	Language            string      `gorm:"size:32" json:"language"`
	DisplayMode         string      `gorm:"size:32" json:"displayMode"`
	GridColumns         GridColumns `gorm:"type:json" json:"gridColumns"`
	ShowFileSize        bool        `json:"showFileSize"`
	ConfirmBeforeDelete bool        `json:"confirmBeforeDelete"`
	MaxFileSize         float64     `json:"maxFileSize"`        // MB
	CompressionQuality  float64     `json:"compressionQuality"` // 0..1
	LastBackupDate      *time.Time  `json:"lastBackupDate"`
	UpdatedAt           time.Time   `json:"-"`
}

// TableName overrides the table name for Photo
func (Photo) TableName() string {
	return "photos"
}

// TableName overrides the table name for Unit
func (Unit) TableName() string {
	return "units"
}

// TableName overrides the table name for Setting
func (Setting) TableName() string {
	return "settings"
}
