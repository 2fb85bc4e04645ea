package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint { return &v }

// 构造一棵三层分类树:
// 1 electronics
//   ├── 2 phones
//   │     └── 4 accessories
//   └── 3 laptops
// 5 books (顶级)
func fixtureCategories() []*Category {
	return []*Category{
		{ID: 1, Name: "电子产品", Slug: "electronics"},
		{ID: 2, Name: "手机", Slug: "phones", ParentID: uintPtr(1)},
		{ID: 3, Name: "笔记本", Slug: "laptops", ParentID: uintPtr(1)},
		{ID: 4, Name: "配件", Slug: "accessories", ParentID: uintPtr(2)},
		{ID: 5, Name: "图书", Slug: "books"},
	}
}

func TestBuildTree(t *testing.T) {
	counts := map[uint]int64{
		1: 2,  // 直接挂在electronics下
		2: 5,
		4: 3,
		5: 10,
	}

	roots := BuildTree(fixtureCategories(), counts)
	require.Len(t, roots, 2)

	byID := make(map[uint]*TreeNode)
	var walk func(nodes []*TreeNode)
	walk = func(nodes []*TreeNode) {
		for _, n := range nodes {
			byID[n.ID] = n
			walk(n.Children)
		}
	}
	walk(roots)

	// 商品数向上累加: electronics = 2 + (5+3) + 0
	assert.Equal(t, int64(10), byID[1].ProductCount)
	assert.Equal(t, int64(8), byID[2].ProductCount)
	assert.Equal(t, int64(3), byID[4].ProductCount)
	assert.Equal(t, int64(0), byID[3].ProductCount)
	assert.Equal(t, int64(10), byID[5].ProductCount)

	assert.Len(t, byID[1].Children, 2)
	assert.Len(t, byID[2].Children, 1)
	assert.Empty(t, byID[5].Children)
}

func TestBuildTree_OrphanBecomesRoot(t *testing.T) {
	// 父分类99不存在,孤儿节点按顶级分类处理
	categories := []*Category{
		{ID: 1, Name: "正常", Slug: "ok"},
		{ID: 2, Name: "孤儿", Slug: "orphan", ParentID: uintPtr(99)},
	}

	roots := BuildTree(categories, nil)
	require.Len(t, roots, 2)
}

func TestExpandDescendants(t *testing.T) {
	categories := fixtureCategories()

	ids := ExpandDescendants(categories, 1)
	assert.ElementsMatch(t, []uint{1, 2, 3, 4}, ids)

	ids = ExpandDescendants(categories, 2)
	assert.ElementsMatch(t, []uint{2, 4}, ids)

	// 叶子分类只包含自身
	ids = ExpandDescendants(categories, 5)
	assert.Equal(t, []uint{5}, ids)
}
