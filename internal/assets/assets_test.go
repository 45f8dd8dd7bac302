package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamesListsAllIcons(t *testing.T) {
	assert.Equal(t,
		[]string{"clear", "cloud", "drizzle", "humidity", "rain", "search", "snow", "wind"},
		Names())
}

func TestIcon(t *testing.T) {
	art, err := Icon("rain")
	require.NoError(t, err)
	assert.Contains(t, art, "(___(__)")
	assert.NotContains(t, art[len(art)-1:], "\n")

	_, err = Icon("tornado")
	assert.Error(t, err)
}

func TestMustIconPanicsOnUnknown(t *testing.T) {
	assert.NotPanics(t, func() { MustIcon(Search) })
	assert.Panics(t, func() { MustIcon("tornado") })
}
