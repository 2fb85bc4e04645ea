package category

import (
	"time"
)

// Category 商品分类实体
// 通过可空的ParentID组成分类树(一层父指针,不限深度)
type Category struct {
	ID          uint
	Name        string
	Slug        string // URL友好的唯一标识
	Description string
	ParentID    *uint // 父分类(nil表示顶级分类)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCategory 创建分类(工厂方法)
func NewCategory(name, slug, description string, parentID *uint) *Category {
	now := time.Now()
	return &Category{
		Name:        name,
		Slug:        slug,
		Description: description,
		ParentID:    parentID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// UpdateInfo 更新分类信息
func (c *Category) UpdateInfo(name, slug, description string, parentID *uint) {
	if name != "" {
		c.Name = name
	}
	if slug != "" {
		c.Slug = slug
	}
	if description != "" {
		c.Description = description
	}
	c.ParentID = parentID
	c.UpdatedAt = time.Now()
}

// TreeNode 分类树节点(含商品数,前台分类导航用)
type TreeNode struct {
	ID           uint        `json:"id"`
	Name         string      `json:"name"`
	Slug         string      `json:"slug"`
	Description  string      `json:"description,omitempty"`
	ProductCount int64       `json:"product_count"` // 含子孙分类的商品数
	Children     []*TreeNode `json:"children,omitempty"`
}

// BuildTree 由平铺的分类列表构建分类树
// 设计说明:
// 1. 一次性加载全部分类后在内存中组装(分类数量有限,不值得用递归SQL)
// 2. counts是按分类直接统计的商品数,节点上的ProductCount会向上累加,
//    父分类的数量包含所有子孙分类的商品
// 3. 孤儿节点(父分类已删除)按顶级分类处理,避免静默丢失
func BuildTree(categories []*Category, counts map[uint]int64) []*TreeNode {
	nodes := make(map[uint]*TreeNode, len(categories))
	for _, c := range categories {
		nodes[c.ID] = &TreeNode{
			ID:           c.ID,
			Name:         c.Name,
			Slug:         c.Slug,
			Description:  c.Description,
			ProductCount: counts[c.ID],
		}
	}

	var roots []*TreeNode
	for _, c := range categories {
		node := nodes[c.ID]
		if c.ParentID != nil {
			if parent, ok := nodes[*c.ParentID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}

	// 自底向上累加商品数
	for _, root := range roots {
		sumCounts(root)
	}

	return roots
}

// sumCounts 递归累加子孙分类的商品数
func sumCounts(node *TreeNode) int64 {
	for _, child := range node.Children {
		node.ProductCount += sumCounts(child)
	}
	return node.ProductCount
}

// ExpandDescendants 展开分类及其所有子孙分类的ID
// 商品列表按分类过滤时使用:选中父分类要包含子分类下的商品
func ExpandDescendants(categories []*Category, rootID uint) []uint {
	children := make(map[uint][]uint, len(categories))
	for _, c := range categories {
		if c.ParentID != nil {
			children[*c.ParentID] = append(children[*c.ParentID], c.ID)
		}
	}

	var result []uint
	queue := []uint{rootID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		result = append(result, id)
		queue = append(queue, children[id]...)
	}
	return result
}
