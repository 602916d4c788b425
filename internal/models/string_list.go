package models

import (
	"database/sql/driver"
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// StringList stores a set of strings as a JSON array column. It backs the
// unit and tag sets on photos.
type StringList []string

// Value implements the driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b).Value()
}

// Scan implements the sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	var j datatypes.JSON
	if err := j.Scan(value); err != nil {
		return err
	}
	if len(j) == 0 {
		*l = nil
		return nil
	}
	return json.Unmarshal(j, (*[]string)(l))
}

// GormDBDataType ensures the correct column type is used for each database driver.
func (StringList) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "sqlite":
		return "JSON"
	}
	return "TEXT"
}

// Contains reports whether s is in the list. Comparison is case-sensitive:
// tags are stored exactly as entered, with no uniqueness normalization.
func (l StringList) Contains(s string) bool {
	for _, v := range l {
		if v == s {
			return true
		}
	}
	return false
}

// ContainsAny reports whether the list shares at least one element with other.
func (l StringList) ContainsAny(other []string) bool {
	for _, s := range other {
		if l.Contains(s) {
			return true
		}
	}
	return false
}

// ContainsAll reports whether the list is a superset of other.
func (l StringList) ContainsAll(other []string) bool {
	for _, s := range other {
		if !l.Contains(s) {
			return false
		}
	}
	return true
}
