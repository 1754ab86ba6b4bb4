package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// Нарушение уникального индекса при вставке должно превращаться
// в ErrUserAlreadyExists, а не утекать как внутренняя ошибка
func TestTranslateDuplicate(t *testing.T) {
	assert.ErrorIs(t, translateDuplicate(gorm.ErrDuplicatedKey), ErrUserAlreadyExists)
	assert.ErrorIs(t,
		translateDuplicate(fmt.Errorf("insert users: %w", gorm.ErrDuplicatedKey)),
		ErrUserAlreadyExists)

	other := errors.New("connection refused")
	assert.ErrorIs(t, translateDuplicate(other), other)
	assert.NoError(t, translateDuplicate(nil))
}
