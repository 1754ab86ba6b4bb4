package dto

// UpdateProfileRequest - обновление собственных данных пользователя
type UpdateProfileRequest struct {
	FullName        *string `json:"full_name,omitempty" binding:"omitempty,min=2"`
	Phone           *string `json:"phone,omitempty"`
	ProfileImageURL *string `json:"profile_image_url,omitempty" binding:"omitempty,url"`
}

// ChangePasswordRequest - смена пароля текущим пользователем
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

// UpdateUserRoleRequest - смена роли пользователя администратором
type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required,is-user-role"`
}

// UserListQuery - фильтр списка пользователей (админ)
type UserListQuery struct {
	Role     string `form:"role" binding:"omitempty,is-user-role"`
	IsActive *bool  `form:"is_active"`
	Search   string `form:"search"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// UserListResponse - страница списка пользователей
type UserListResponse struct {
	Users    []UserDTO `json:"users"`
	Total    int64     `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
}
