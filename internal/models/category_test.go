package models_test

import (
	"testing"

	"dahanu/internal/models"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

// flatRows is a shuffled flat row set: two roots, nested children, one
// grandchild. Row order must not matter to tree assembly.
func flatRows() []models.Category {
	return []models.Category{
		{ID: "cat_fruits", Name: "Fruits", ParentID: strPtr("cat_grocery")},
		{ID: "cat_grocery", Name: "Groceries"},
		{ID: "cat_apples", Name: "Apples", ParentID: strPtr("cat_fruits")},
		{ID: "cat_food", Name: "Food Delivery"},
		{ID: "cat_dairy", Name: "Dairy", ParentID: strPtr("cat_grocery")},
	}
}

func TestBuildCategoryTree(t *testing.T) {
	tree := models.BuildCategoryTree(flatRows())

	assert.Len(t, tree, 2)
	assert.Equal(t, "cat_grocery", tree[0].ID)
	assert.Equal(t, "cat_food", tree[1].ID)

	grocery := tree[0]
	assert.Len(t, grocery.SubCategories, 2)
	assert.Equal(t, "cat_fruits", grocery.SubCategories[0].ID)
	assert.Equal(t, "cat_dairy", grocery.SubCategories[1].ID)

	fruits := grocery.SubCategories[0]
	assert.Len(t, fruits.SubCategories, 1)
	assert.Equal(t, "cat_apples", fruits.SubCategories[0].ID)

	assert.Empty(t, tree[1].SubCategories)
}

func TestFlattenCategoryTree_RoundTrip(t *testing.T) {
	tree := models.BuildCategoryTree(flatRows())

	rows := models.FlattenCategoryTree(tree)
	assert.Len(t, rows, 5)
	for _, row := range rows {
		assert.Nil(t, row.SubCategories)
	}

	rebuilt := models.BuildCategoryTree(rows)
	assert.Equal(t, tree, rebuilt)
}

func TestFlattenCategoryTree_ParentAssignment(t *testing.T) {
	tree := []models.Category{
		{ID: "root", Name: "Root", SubCategories: []models.Category{
			{ID: "child", Name: "Child"},
		}},
	}

	rows := models.FlattenCategoryTree(tree)

	assert.Len(t, rows, 2)
	assert.Nil(t, rows[0].ParentID)
	assert.Equal(t, "root", *rows[1].ParentID)
}

func TestRemoveCategory_RootDropsDescendants(t *testing.T) {
	tree := models.BuildCategoryTree(flatRows())

	got := models.RemoveCategory(tree, "cat_grocery")

	assert.Len(t, got, 1)
	assert.Equal(t, "cat_food", got[0].ID)
}

func TestRemoveCategory_NonRootKeepsSiblings(t *testing.T) {
	tree := models.BuildCategoryTree(flatRows())

	got := models.RemoveCategory(tree, "cat_fruits")

	assert.Len(t, got, 2)
	grocery := got[0]
	assert.Len(t, grocery.SubCategories, 1)
	assert.Equal(t, "cat_dairy", grocery.SubCategories[0].ID)
}

func TestRemoveCategory_UnknownIDIsNoop(t *testing.T) {
	tree := models.BuildCategoryTree(flatRows())

	got := models.RemoveCategory(tree, "cat_missing")

	assert.Equal(t, tree, got)
}
