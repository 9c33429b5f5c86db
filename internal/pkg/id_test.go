package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateGameID(t *testing.T) {
	first, err := GenerateGameID()
	require.NoError(t, err)

	second, err := GenerateGameID()
	require.NoError(t, err)

	assert.Len(t, first, 2*gameIDBytes)
	assert.NotEqual(t, first, second)
}
