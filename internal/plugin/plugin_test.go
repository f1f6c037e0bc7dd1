package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywords(t *testing.T) {
	assert.Equal(t, []string{"vnite-plugin", "common", "my-plugin"}, Keywords(CategoryCommon, "my-plugin"))
	assert.Equal(t, []string{"vnite-plugin", "scraper", "vndb"}, Keywords(CategoryScraper, "vndb"))
}

func TestCategoryUnmarshalText(t *testing.T) {
	var c Category
	require.NoError(t, c.UnmarshalText([]byte("Scraper")))
	assert.Equal(t, CategoryScraper, c)

	err := c.UnmarshalText([]byte("theme"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "common, scraper")
	assert.Equal(t, CategoryScraper, c, "failed unmarshal must not modify the receiver")
}

func TestCategoryTitle(t *testing.T) {
	assert.Equal(t, "Common", CategoryCommon.Title())
	assert.Equal(t, "Scraper", CategoryScraper.Title())
	assert.Equal(t, "", Category("").Title())
}

func TestCategoriesDefaultFirst(t *testing.T) {
	require.NotEmpty(t, Categories)
	assert.Equal(t, CategoryCommon, Categories[0])
	for _, c := range Categories {
		assert.True(t, c.Valid(), "%s should be valid", c)
	}
	assert.False(t, Category("theme").Valid())
}

func TestAnswersID(t *testing.T) {
	a := &Answers{Name: "my-plugin"}
	assert.Equal(t, "my-plugin", a.ID())
	assert.Equal(t, "A Vnite plugin: my-plugin", DefaultDescription(a.Name))
}
