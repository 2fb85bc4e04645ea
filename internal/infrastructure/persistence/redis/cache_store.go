package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/xiebiao/storefront/pkg/metrics"
)

// CacheStore 商品目录缓存(Cache-Aside)
// 设计说明：
// 1. 缓存的是序列化后的响应DTO,由application层负责编解码
// 2. Key设计：
//    - catalog:list:{hash}: 商品列表页(按查询参数哈希)
//    - catalog:detail:{id}: 商品详情
//    - catalog:tree:        分类树
// 3. 缓存未命中返回(nil, nil),调用方回源数据库后写回
// 4. Redis故障不阻塞主流程:读写失败只记日志,业务继续走数据库
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore 创建缓存存储
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// 缓存Key前缀(kind同时用作指标label)
const (
	kindProductList   = "product_list"
	kindProductDetail = "product_detail"
	kindCategoryTree  = "category_tree"
)

// Get 读取缓存
// 未命中返回(nil, nil);Redis故障降级为未命中
func (s *CacheStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.CacheRequestsTotal.WithLabelValues(kindOf(key), "miss").Inc()
			return nil, nil
		}
		// 故障降级:记日志后按未命中处理,回源数据库
		metrics.CacheRequestsTotal.WithLabelValues(kindOf(key), "error").Inc()
		zap.L().Warn("缓存读取失败", zap.String("key", key), zap.Error(err))
		return nil, nil
	}

	metrics.CacheRequestsTotal.WithLabelValues(kindOf(key), "hit").Inc()
	return data, nil
}

// Set 写入缓存
func (s *CacheStore) Set(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if err := s.client.Set(ctx, key, data, ttl).Err(); err != nil {
		zap.L().Warn("缓存写入失败", zap.String("key", key), zap.Error(err))
	}
}

// InvalidateProduct 失效单个商品的详情缓存
func (s *CacheStore) InvalidateProduct(ctx context.Context, productID uint) {
	key := fmt.Sprintf("catalog:detail:%d", productID)
	if err := s.client.Del(ctx, key).Err(); err != nil {
		zap.L().Warn("缓存失效失败", zap.String("key", key), zap.Error(err))
	}
}

// InvalidateProductLists 失效全部商品列表缓存
// 列表Key按查询参数哈希,无法定点删除,用SCAN+UNLINK批量清理
func (s *CacheStore) InvalidateProductLists(ctx context.Context) {
	s.invalidateByPattern(ctx, "catalog:list:*")
}

// InvalidateCategoryTree 失效分类树缓存
func (s *CacheStore) InvalidateCategoryTree(ctx context.Context) {
	if err := s.client.Del(ctx, "catalog:tree").Err(); err != nil {
		zap.L().Warn("缓存失效失败", zap.String("key", "catalog:tree"), zap.Error(err))
	}
}

// invalidateByPattern 按模式批量失效
// 使用SCAN而不是KEYS(避免阻塞Redis),UNLINK异步回收内存
func (s *CacheStore) invalidateByPattern(ctx context.Context, pattern string) {
	iter := s.client.Scan(ctx, 0, pattern, 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		zap.L().Warn("缓存扫描失败", zap.String("pattern", pattern), zap.Error(err))
		return
	}

	if len(keys) == 0 {
		return
	}

	if err := s.client.Unlink(ctx, keys...).Err(); err != nil {
		zap.L().Warn("缓存批量失效失败", zap.String("pattern", pattern), zap.Error(err))
	}
}

// kindOf 由Key推导指标label
func kindOf(key string) string {
	switch {
	case strings.HasPrefix(key, "catalog:list:"):
		return kindProductList
	case strings.HasPrefix(key, "catalog:detail:"):
		return kindProductDetail
	default:
		return kindCategoryTree
	}
}
