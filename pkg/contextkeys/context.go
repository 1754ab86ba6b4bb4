package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

// DBContextKey - ключ, по которому хранится *gorm.DB (пул или транзакция) в context
const DBContextKey = contextKey("db")

// CurrentUserKey - ключ, по которому middleware кладет *models.User в gin.Context
const CurrentUserKey = "currentUser"

// UserIDKey - ключ, по которому middleware кладет id пользователя в gin.Context
const UserIDKey = "userID"

// UserRoleKey - ключ роли текущего пользователя
const UserRoleKey = "userRole"
