package pagination_test

import (
	"testing"

	"github.com/ronaldocristover/arisan-backend/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
)

func TestParsePageLimit_Defaults(t *testing.T) {
	page, limit := pagination.ParsePageLimit("", "")
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)
}

func TestParsePageLimit_Values(t *testing.T) {
	page, limit := pagination.ParsePageLimit("3", "25")
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, limit)
}

func TestParsePageLimit_ClampsAndFloors(t *testing.T) {
	page, limit := pagination.ParsePageLimit("0", "500")
	assert.Equal(t, 1, page)
	assert.Equal(t, 100, limit)

	page, limit = pagination.ParsePageLimit("-2", "0")
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)
}

func TestParsePageLimit_Garbage(t *testing.T) {
	page, limit := pagination.ParsePageLimit("abc", "xyz")
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)
}
