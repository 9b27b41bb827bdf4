package custom_error

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapDBError(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		wantType interface{}
	}{
		{"unique violation", "23505", &UniqueViolationError{}},
		{"foreign key violation", "23503", &ForeignKeyViolationError{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapDBError("duplicate value", tt.code)
			assert.IsType(t, tt.wantType, err)
			assert.Contains(t, err.Error(), tt.code)
		})
	}
}

func TestWrapDBErrorUncategorized(t *testing.T) {
	err := WrapDBError("something broke", "40001")
	assert.NotNil(t, err)

	_, isUnique := err.(*UniqueViolationError)
	assert.False(t, isUnique)
}

func TestInvalidTransitionError(t *testing.T) {
	err := &InvalidTransitionError{AssetID: 7, From: "IN_USE", To: "IN_USE"}
	assert.Contains(t, err.Error(), "IN_USE")

	withMessage := &InvalidTransitionError{Message: "Asset is not available for checkout"}
	assert.Equal(t, "Asset is not available for checkout", withMessage.Error())
}

func TestReferencedEntityError(t *testing.T) {
	err := &ReferencedEntityError{Message: "Cannot delete asset type heavily used by assets.", Count: 5}
	assert.Equal(t, "Cannot delete asset type heavily used by assets.", err.Error())
}
