package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// StringArray is a string slice stored as a JSON array column
type StringArray []string

// Value implements the driver.Valuer interface
func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported type for StringArray: %T", value)
	}

	return json.Unmarshal(bytes, a)
}

// GormDataType implements schema.GormDataTypeInterface
func (StringArray) GormDataType() string {
	return "json"
}

// GormDBDataType stores the array as JSONB on postgres and as text elsewhere
func (StringArray) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "JSONB"
	}
	return "TEXT"
}

// Recipe is the stored recipe document
type Recipe struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string      `gorm:"size:255;not null;index" json:"title"`
	Author       string      `gorm:"size:255;not null;index" json:"author"`
	Difficulty   Difficulty  `gorm:"size:20;not null;index" json:"difficulty"`
	PrepTime     float64     `gorm:"not null" json:"prepTime"`
	CookTime     float64     `gorm:"not null" json:"cookTime"`
	Ingredients  StringArray `gorm:"not null" json:"ingredients"`
	Instructions StringArray `gorm:"not null" json:"instructions"`
	ImageURL     string      `gorm:"not null" json:"imageUrl"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// BeforeCreate assigns the id when the caller has not set one
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
