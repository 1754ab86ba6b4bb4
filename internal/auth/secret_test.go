package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Достаточно длинный и разнообразный ключ без запрещенных подстрок
const strongTestSecret = "Zq7!mW4@xR9#tL2$vN8%bH5^dJ0&fG3*pY1(uE6)sI4-oA2_cV5+nD8=rT7~mX9w"

func TestValidateSigningSecret_Valid(t *testing.T) {
	assert.NoError(t, ValidateSigningSecret(strongTestSecret))
}

func TestValidateSigningSecret_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		secret string
	}{
		{"empty", ""},
		{"known placeholder", "your-secret-key-change-in-production"},
		{"literal secret", "secret"},
		{"too short", strongTestSecret[:32]},
		{"low entropy", strings.Repeat("Qz9!", 16)},
		{"two character classes", strings.Repeat("qwertyuioplzxcvbnm04968", 3)},
		{"contains common word", "PasswOrd" + strongTestSecret},
		{"identical run", "zzzz" + strongTestSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, ValidateSigningSecret(tt.secret))
		})
	}
}
