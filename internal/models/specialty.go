package models

type Specialty struct {
	BaseModel
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `gorm:"type:varchar(100)" json:"icon,omitempty"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`

	Doctors []Doctor `gorm:"foreignKey:SpecialtyID" json:"-"`
}
