package plans

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeType(t *testing.T) {
	got, err := NormalizeType("")
	require.NoError(t, err)
	assert.Equal(t, TypeVideoCourse, got)

	got, err = NormalizeType(" ApotekerClass ")
	require.NoError(t, err)
	assert.Equal(t, TypeApotekerClass, got)

	_, err = NormalizeType("ebook")
	assert.Error(t, err)
}

func TestFind(t *testing.T) {
	products := []Product{{ProductID: "p1", Price: 100000}, {ProductID: "p2", Price: 250000}}

	p, ok := Find(products, "p2")
	require.True(t, ok)
	assert.Equal(t, int64(250000), p.Price)

	_, ok = Find(products, "p3")
	assert.False(t, ok)
}
