package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapErrorf(t *testing.T) {
	orig := errors.New("vertex not found")
	err := WrapErrorf(orig, ErrNotFound, "unknown place %s", "Library")

	assert.Equal(t, "unknown place Library: vertex not found", err.Error())
	assert.ErrorIs(t, err, orig)

	var ierr *Error
	assert.True(t, errors.As(err, &ierr))
	assert.Equal(t, ErrNotFound, ierr.Code())

	bare := WrapErrorf(nil, ErrBadParamInput, "origin is required")
	assert.Equal(t, "origin is required", bare.Error())
}

func TestRoundFloat(t *testing.T) {
	testCases := []struct {
		val       float64
		precision uint
		want      float64
	}{
		{val: 56.39392, precision: 2, want: 56.39},
		{val: 0.125, precision: 2, want: 0.13},
		{val: 3, precision: 4, want: 3},
	}
	for _, tt := range testCases {
		assert.Equal(t, tt.want, RoundFloat(tt.val, tt.precision))
	}
}

func TestReverseG(t *testing.T) {
	arr := []string{"Hall", "Walk", "Oval"}
	assert.Equal(t, []string{"Oval", "Walk", "Hall"}, ReverseG(arr))
	assert.Equal(t, []string{"Hall", "Walk", "Oval"}, arr)
	assert.Empty(t, ReverseG([]int{}))
}
