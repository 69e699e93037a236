package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	skip, limit := Paginate(1, 20)
	assert.Equal(t, int64(0), skip)
	assert.Equal(t, int64(20), limit)

	skip, limit = Paginate(3, 25)
	assert.Equal(t, int64(50), skip)
	assert.Equal(t, int64(25), limit)

	skip, limit = Paginate(0, 0)
	assert.Equal(t, int64(0), skip)
	assert.Equal(t, int64(10), limit)

	_, limit = Paginate(1, 500)
	assert.Equal(t, int64(10), limit)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 5, TotalPages(41, 10))
}
