package models

import "github.com/lib/pq"

type HealthPackage struct {
	BaseModel
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `gorm:"not null" json:"price"`
	// Цена без скидки, для отображения перечеркнутой цены
	OriginalPrice *float64 `json:"original_price,omitempty"`

	TestsIncluded pq.StringArray `gorm:"type:text[]" json:"tests_included,omitempty"`
	DurationHours int            `json:"duration_hours,omitempty"`
	Category      string         `gorm:"type:varchar(100)" json:"category,omitempty"`
	IsPopular     bool           `gorm:"default:false" json:"is_popular"`

	IsActive bool `gorm:"default:true" json:"is_active"`
}
