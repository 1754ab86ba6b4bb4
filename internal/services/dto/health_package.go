package dto

// CreateHealthPackageRequest - создание пакета обследований (админ)
type CreateHealthPackageRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description,omitempty"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	OriginalPrice *float64 `json:"original_price,omitempty" binding:"omitempty,gt=0"`
	TestsIncluded []string `json:"tests_included,omitempty"`
	DurationHours int      `json:"duration_hours,omitempty"`
	Category      string   `json:"category,omitempty"`
	IsPopular     bool     `json:"is_popular,omitempty"`
}

// UpdateHealthPackageRequest - обновление пакета (админ)
type UpdateHealthPackageRequest struct {
	Name          *string  `json:"name,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Price         *float64 `json:"price,omitempty" binding:"omitempty,gt=0"`
	OriginalPrice *float64 `json:"original_price,omitempty" binding:"omitempty,gt=0"`
	TestsIncluded []string `json:"tests_included,omitempty"`
	DurationHours *int     `json:"duration_hours,omitempty"`
	Category      *string  `json:"category,omitempty"`
	IsPopular     *bool    `json:"is_popular,omitempty"`
	IsActive      *bool    `json:"is_active,omitempty"`
}
