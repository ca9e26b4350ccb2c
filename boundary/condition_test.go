package boundary

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCondition(t *testing.T) {
	for _, n := range []int{0, 1, 7, 128} {
		bc, err := NewCondition(n)
		require.NoError(t, err)
		assert.Equal(t, n, bc.Size())
		assert.Len(t, bc.Alpha, n)
		assert.Len(t, bc.Beta, n)
		assert.Len(t, bc.F, n)
		assert.NoError(t, bc.Validate())
	}
}

func TestNewConditionNegativeSize(t *testing.T) {
	_, err := NewCondition(-1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSize))
}

func TestConditionValidateResliced(t *testing.T) {
	bc, err := NewCondition(4)
	require.NoError(t, err)

	bc.Beta = bc.Beta[:2]
	err = bc.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestNewIncidence(t *testing.T) {
	for _, n := range []int{0, 1, 7, 128} {
		bi, err := NewIncidence(n)
		require.NoError(t, err)
		assert.Equal(t, n, bi.Size())
		assert.Len(t, bi.Phi, n)
		assert.Len(t, bi.V, n)
		assert.NoError(t, bi.Validate())
	}
}

func TestNewIncidenceNegativeSize(t *testing.T) {
	_, err := NewIncidence(-3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSize))
}

func TestIncidenceValidateResliced(t *testing.T) {
	bi, err := NewIncidence(4)
	require.NoError(t, err)

	bi.V = bi.V[:1]
	err = bi.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}
