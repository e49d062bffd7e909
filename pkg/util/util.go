package util

import (
	"errors"
	"fmt"
	"math"
)

// Error. error carrying a code sentinel the http layer maps to a status.
type Error struct {
	orig error
	msg  string
	code error
}

func (e *Error) Error() string {
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

func (e *Error) Code() error {
	return e.code
}

func WrapErrorf(orig error, code error, format string, a ...interface{}) error {
	return &Error{
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
		code: code,
	}
}

// codes
var (
	ErrInternalServerError = errors.New("internal server error")
	ErrNotFound            = errors.New("requested place or route not found")
	ErrBadParamInput       = errors.New("invalid parameter")
)

const MessageInternalServerError = "internal server error"

// RoundFloat rounds val to precision decimal places.
func RoundFloat(val float64, precision uint) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}

// ReverseG. reversed copy of arr, arr itself is left untouched.
func ReverseG[T any](arr []T) []T {
	reversed := make([]T, len(arr))
	for i, v := range arr {
		reversed[len(arr)-1-i] = v
	}
	return reversed
}
