package dto

// CreateSpecialtyRequest - создание специальности (админ)
type CreateSpecialtyRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=255"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty" binding:"omitempty,max=100"`
}

// UpdateSpecialtyRequest - обновление специальности (админ)
type UpdateSpecialtyRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=2,max=255"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty" binding:"omitempty,max=100"`
	IsActive    *bool   `json:"is_active,omitempty"`
}
