package ptr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPtr(t *testing.T) {
	s := Ptr("ramesh@example.com")
	require.NotNil(t, s)
	assert.Equal(t, "ramesh@example.com", *s)

	n := Ptr(5)
	require.NotNil(t, n)
	assert.Equal(t, 5, *n)
}
