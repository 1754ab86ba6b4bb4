package auth

import (
	"fmt"
	"strings"
	"unicode"
)

// Известные значения-заглушки, с которыми нельзя запускаться
var insecureSecrets = []string{
	"your-secret-key-change-in-production",
	"CHANGE_THIS_TO_A_SECURE_RANDOM_64_CHARACTER_STRING_IN_PRODUCTION",
	"secret",
	"password",
	"123456",
}

const (
	minSecretLength      = 64
	minUniqueChars       = 20
	minCharacterClasses  = 3
	maxIdenticalRunChars = 3
)

// ValidateSigningSecret проверяет ключ подписи токенов при старте.
// Слабый ключ обесценивает всю схему аутентификации, поэтому проверка
// выполняется один раз и до того, как сервер начнет принимать запросы.
func ValidateSigningSecret(secret string) error {
	if secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	for _, known := range insecureSecrets {
		if secret == known {
			return fmt.Errorf("JWT secret must be changed from default value")
		}
	}

	if len(secret) < minSecretLength {
		return fmt.Errorf("JWT secret must be at least %d characters long, got %d", minSecretLength, len(secret))
	}

	unique := make(map[rune]struct{})
	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range secret {
		unique[r] = struct{}{}
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	if len(unique) < minUniqueChars {
		return fmt.Errorf("JWT secret has insufficient entropy: only %d unique characters (minimum %d)", len(unique), minUniqueChars)
	}

	classes := 0
	for _, ok := range []bool{hasLower, hasUpper, hasDigit, hasSpecial} {
		if ok {
			classes++
		}
	}
	if classes < minCharacterClasses {
		return fmt.Errorf("JWT secret must contain at least %d character classes (lowercase, uppercase, digits, special)", minCharacterClasses)
	}

	lowered := strings.ToLower(secret)
	for _, pattern := range []string{"password", "secret", "key", "123", "abc"} {
		if strings.Contains(lowered, pattern) {
			return fmt.Errorf("JWT secret must not contain common words or patterns")
		}
	}

	// Длинные серии одинаковых символов
	runes := []rune(secret)
	for i := 0; i+maxIdenticalRunChars < len(runes); i++ {
		same := true
		for j := 1; j <= maxIdenticalRunChars; j++ {
			if runes[i+j] != runes[i] {
				same = false
				break
			}
		}
		if same {
			return fmt.Errorf("JWT secret must not contain more than %d consecutive identical characters", maxIdenticalRunChars)
		}
	}

	return nil
}
