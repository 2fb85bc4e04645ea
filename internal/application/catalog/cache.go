package catalog

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"time"
)

// CacheStore 商品目录缓存接口(Cache-Aside)
// 由redis.CacheStore实现;用例只依赖这个最小接口,测试时可注入假实现
type CacheStore interface {
	// Get 读取缓存,未命中返回(nil, nil)
	Get(ctx context.Context, key string) ([]byte, error)

	// Set 写入缓存
	Set(ctx context.Context, key string, data []byte, ttl time.Duration)

	// InvalidateProduct 失效单个商品的详情缓存
	InvalidateProduct(ctx context.Context, productID uint)

	// InvalidateProductLists 失效全部商品列表缓存
	InvalidateProductLists(ctx context.Context)

	// InvalidateCategoryTree 失效分类树缓存
	InvalidateCategoryTree(ctx context.Context)
}

// listCacheKey 商品列表缓存Key
// 对规范化后的查询参数做哈希:同样的查询命中同一个Key
func listCacheKey(req ListProductsRequest) string {
	canonical := fmt.Sprintf("p=%d|s=%d|kw=%s|cat=%d|st=%s|min=%d|max=%d|sort=%s",
		req.Page, req.PageSize, req.Keyword, req.CategoryID,
		req.StockStatus, req.MinPrice, req.MaxPrice, req.SortBy)
	sum := sha1.Sum([]byte(canonical))
	return "catalog:list:" + hex.EncodeToString(sum[:])
}

// detailCacheKey 商品详情缓存Key
func detailCacheKey(productID uint) string {
	return fmt.Sprintf("catalog:detail:%d", productID)
}

// treeCacheKey 分类树缓存Key
const treeCacheKey = "catalog:tree"
