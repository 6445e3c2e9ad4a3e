package models

// Category is a service category. Rows are stored flat with a parent
// reference; the API reconstructs the tree in one in-memory pass. Root
// categories are those with a null parent.
type Category struct {
	ID              string     `json:"id" gorm:"primaryKey;type:varchar(50)"`
	Name            string     `json:"name" gorm:"type:varchar(100);not null"`
	Icon            string     `json:"icon,omitempty" gorm:"type:varchar(50)"`
	Description     string     `json:"description,omitempty" gorm:"type:text"`
	ParentID        *string    `json:"parent_id" gorm:"type:varchar(50)"`
	ThemeColor      string     `json:"theme_color,omitempty" gorm:"type:varchar(20);default:#2874f0"`
	RegistrationFee float64    `json:"registration_fee,omitempty" gorm:"default:999.00"`
	Parent          *Category  `json:"-" gorm:"foreignKey:ParentID;constraint:OnDelete:SET NULL"`
	SubCategories   []Category `json:"subCategories,omitempty" gorm:"-"`
}

// BuildCategoryTree reconstructs the parent→children tree from flat rows.
// The schema's FK keeps the flat list acyclic, so plain recursion terminates.
func BuildCategoryTree(rows []Category) []Category {
	return buildSubtree(rows, nil)
}

func buildSubtree(rows []Category, parentID *string) []Category {
	tree := make([]Category, 0)
	for _, row := range rows {
		if !sameParent(row.ParentID, parentID) {
			continue
		}
		node := row
		node.SubCategories = buildSubtree(rows, &row.ID)
		tree = append(tree, node)
	}
	return tree
}

func sameParent(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// FlattenCategoryTree projects a tree back to flat parent-id rows, children
// after their parent. Rebuilding the flattened rows reproduces the tree.
func FlattenCategoryTree(tree []Category) []Category {
	return flattenInto(nil, tree, nil)
}

func flattenInto(acc []Category, nodes []Category, parentID *string) []Category {
	for _, node := range nodes {
		row := node
		row.ParentID = parentID
		children := node.SubCategories
		row.SubCategories = nil
		acc = append(acc, row)
		id := node.ID
		acc = flattenInto(acc, children, &id)
	}
	return acc
}

// RemoveCategory removes a node from the tree. Removing a root drops it and
// all its descendants; removing a non-root only unlinks it from its parent's
// children, leaving siblings intact.
func RemoveCategory(tree []Category, id string) []Category {
	out := make([]Category, 0, len(tree))
	for _, node := range tree {
		if node.ID == id {
			continue
		}
		node.SubCategories = RemoveCategory(node.SubCategories, id)
		out = append(out, node)
	}
	return out
}
