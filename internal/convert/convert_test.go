package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToNumber(t *testing.T) {
	assert.Equal(t, 500, ToNumber("Rs. 500"))
	assert.Equal(t, 1500, ToNumber("Rs. 1,500"))
	assert.Equal(t, 3, ToNumber("3"))
	assert.Equal(t, 0, ToNumber("Cart is empty!"))
	assert.Equal(t, 0, ToNumber(""))
	assert.Equal(t, 20, ToNumber(" 20 "))
}
