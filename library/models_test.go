package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusAvailable.Valid())
	assert.True(t, StatusCheckedOut.Valid())
	assert.False(t, Status("").Valid())
	assert.False(t, Status("lost").Valid())
	assert.False(t, Status("Available").Valid())
}
