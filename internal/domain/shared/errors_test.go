package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Is(t *testing.T) {
	t.Run("matches sentinel with same code", func(t *testing.T) {
		err := ErrReadonlyField.WithMessage("field %s is read-only", "product_qty")

		assert.True(t, errors.Is(err, ErrReadonlyField))
		assert.False(t, errors.Is(err, ErrInvalidState))
		assert.Equal(t, "field product_qty is read-only", err.Error())
	})

	t.Run("matches through wrapping", func(t *testing.T) {
		err := fmt.Errorf("update line: %w", ErrNotFound)

		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

func TestFilter_OffsetAndLimit(t *testing.T) {
	assert.Equal(t, 0, DefaultFilter().Offset())
	assert.Equal(t, 20, DefaultFilter().Limit())
	assert.Equal(t, 40, Filter{Page: 3, PageSize: 20}.Offset())
	assert.Equal(t, 100, Filter{PageSize: 500}.Limit())
	assert.Equal(t, 20, Filter{Page: 0, PageSize: 0}.Limit())
}
