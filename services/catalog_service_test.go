package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomPicksSkipEmptyBranches(t *testing.T) {
	// Both pick queries must demand at least one product before a category
	// or subcategory can headline the front page.
	assert.Contains(t, randomCategorySQL, "EXISTS")
	assert.Contains(t, randomCategorySQL, "JOIN subcategories s ON s.id = p.subcategory_id")
	assert.Contains(t, randomCategorySQL, "s.category_id = cat.id")

	assert.Contains(t, randomSubcategorySQL, "EXISTS (SELECT 1 FROM products WHERE subcategory_id = sc.id)")
}

func TestFrontPageSamplesReadInDescriptionOrder(t *testing.T) {
	assert.Contains(t, categorySampleSQL, "ORDER BY p.description ASC")
	assert.Contains(t, subcategorySampleSQL, "ORDER BY p.description ASC")
	assert.NotContains(t, categorySampleSQL, "random()")
	assert.NotContains(t, subcategorySampleSQL, "random()")
}
