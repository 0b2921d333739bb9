package implementation

import (
	"errors"
	"fmt"

	"character-chat-be/internal/pkg/apperror"

	"gorm.io/gorm"
)

// translateError maps driver errors onto the repository contract. It relies on the
// connection being opened with gorm.Config{TranslateError: true}.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: %v", apperror.ErrConstraintViolation, err)
	}
	return err
}
