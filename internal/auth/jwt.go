package auth

import (
	"fmt"
	"time"

	"medcare_backend/internal/apperrors"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType разделяет access и refresh токены.
// Токен одного типа никогда не принимается там, где ожидается другой.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims - подписанное содержимое токена
type Claims struct {
	Type TokenType `json:"type"`
	jwt.RegisteredClaims
}

// TokenConfig - конфигурация менеджера токенов
type TokenConfig struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// TokenManager выпускает и проверяет подписанные JWT (HS256).
// Состояния нет: все данные сессии живут в самом токене.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenManager(cfg TokenConfig) *TokenManager {
	return &TokenManager{
		secret:     []byte(cfg.Secret),
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
	}
}

// AccessTTL возвращает время жизни access токена
func (tm *TokenManager) AccessTTL() time.Duration {
	return tm.accessTTL
}

// RefreshTTL возвращает время жизни refresh токена
func (tm *TokenManager) RefreshTTL() time.Duration {
	return tm.refreshTTL
}

// IssueAccessToken выпускает короткоживущий access токен
func (tm *TokenManager) IssueAccessToken(subject string) (string, error) {
	return tm.issue(subject, TokenTypeAccess, tm.accessTTL)
}

// IssueRefreshToken выпускает долгоживущий refresh токен
func (tm *TokenManager) IssueRefreshToken(subject string) (string, error) {
	return tm.issue(subject, TokenTypeRefresh, tm.refreshTTL)
}

func (tm *TokenManager) issue(subject string, tokenType TokenType, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Type: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken проверяет подпись, срок действия и тип токена.
// Любая причина отказа сворачивается в ErrInvalidToken - детали
// наружу не отдаем.
func (tm *TokenManager) VerifyToken(tokenString string, expected TokenType) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	if claims.Type != expected {
		return nil, apperrors.ErrInvalidToken
	}

	if claims.Subject == "" {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}
