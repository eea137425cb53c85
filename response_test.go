package factom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Code 0 means "not an error"; any nonzero code is an application failure.
func TestSuccessSemantics(t *testing.T) {
	for _, test := range []struct {
		code    int
		success bool
	}{
		{0, true},
		{-1, false},
		{-32008, false},
		{1, false},
	} {
		res := ApiResponse[struct{}]{Error: ApiError{Code: test.code}}
		assert.Equal(t, test.success, res.Success(), "code %v", test.code)
		assert.Equal(t, !test.success, res.IsErr(), "code %v", test.code)
	}
}

func TestApiErrorMessage(t *testing.T) {
	err := ApiError{Code: -1, Message: "repeated commit"}
	assert.Equal(t, "factom: jsonrpc error -1: repeated commit", err.Error())
}
