package models

import (
	"database/sql/driver"
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// GridColumns holds the per-breakpoint column counts for the photo grid.
// Stored as a single JSON column on the settings record.
type GridColumns struct {
	Mobile  int `json:"mobile"`
	Tablet  int `json:"tablet"`
	Desktop int `json:"desktop"`
}

// Value implements the driver.Valuer interface
func (g GridColumns) Value() (driver.Value, error) {
	b, err := json.Marshal(g)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b).Value()
}

// Scan implements the sql.Scanner interface
func (g *GridColumns) Scan(value interface{}) error {
	var j datatypes.JSON
	if err := j.Scan(value); err != nil {
		return err
	}
	if len(j) == 0 {
		*g = GridColumns{}
		return nil
	}
	return json.Unmarshal(j, g)
}

// GormDBDataType ensures the correct column type is used for each database driver.
func (GridColumns) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "sqlite":
		return "JSON"
	}
	return "TEXT"
}
