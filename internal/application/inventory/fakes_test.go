package inventory

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/xiebiao/storefront/internal/domain/inventory"
	"github.com/xiebiao/storefront/internal/domain/product"
	"github.com/xiebiao/storefront/pkg/metrics"
)

func TestMain(m *testing.M) {
	metrics.InitMetrics()
	os.Exit(m.Run())
}

// =========================================
// 内存假仓储(测试用)
// 行为与SQLite实现保持一致:NotFound错误、回填ID、查重逻辑
// =========================================

// fakeTxManager 假事务管理器
// 记录回滚次数;fn返回error时丢弃快照由各假仓储的snapshot/restore完成
type fakeTxManager struct {
	products *fakeProductRepo
	adjs     *fakeAdjustmentRepo
	alerts   *fakeAlertRepo
}

func (m *fakeTxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	// 事务语义:失败时恢复所有仓储到事务前的状态
	ps := m.products.snapshot()
	as := m.adjs.snapshot()
	als := m.alerts.snapshot()

	if err := fn(ctx); err != nil {
		m.products.restore(ps)
		m.adjs.restore(as)
		m.alerts.restore(als)
		return err
	}
	return nil
}

// fakeProductRepo 内存商品仓储
type fakeProductRepo struct {
	products map[uint]*product.Product
	nextID   uint

	updateStockErr error // 注入写回失败,验证事务回滚
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uint]*product.Product), nextID: 1}
}

func (r *fakeProductRepo) add(p *product.Product) *product.Product {
	cp := *p
	cp.ID = r.nextID
	r.nextID++
	r.products[cp.ID] = &cp
	return &cp
}

func (r *fakeProductRepo) snapshot() map[uint]*product.Product {
	s := make(map[uint]*product.Product, len(r.products))
	for id, p := range r.products {
		cp := *p
		s[id] = &cp
	}
	return s
}

func (r *fakeProductRepo) restore(s map[uint]*product.Product) { r.products = s }

func (r *fakeProductRepo) Create(ctx context.Context, p *product.Product) error {
	for _, existing := range r.products {
		if existing.SKU == p.SKU {
			return product.ErrSKUDuplicate
		}
	}
	created := r.add(p)
	p.ID = created.ID
	return nil
}

func (r *fakeProductRepo) FindByID(ctx context.Context, id uint) (*product.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, product.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) FindByIDForUpdate(ctx context.Context, id uint) (*product.Product, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeProductRepo) FindBySKU(ctx context.Context, sku string) (*product.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, product.ErrProductNotFound
}

func (r *fakeProductRepo) Update(ctx context.Context, p *product.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return product.ErrProductNotFound
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateStock(ctx context.Context, id uint, quantity int, status product.StockStatus) error {
	if r.updateStockErr != nil {
		return r.updateStockErr
	}
	p, ok := r.products[id]
	if !ok {
		return product.ErrProductNotFound
	}
	p.StockQuantity = quantity
	p.StockStatus = status
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.products[id]; !ok {
		return product.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) List(ctx context.Context, params product.ListParams) ([]*product.Product, int64, error) {
	var result []*product.Product
	for _, p := range r.products {
		cp := *p
		result = append(result, &cp)
	}
	return result, int64(len(result)), nil
}

func (r *fakeProductRepo) CountByCategory(ctx context.Context) (map[uint]int64, error) {
	counts := make(map[uint]int64)
	for _, p := range r.products {
		if p.CategoryID != nil {
			counts[*p.CategoryID]++
		}
	}
	return counts, nil
}

// fakeAdjustmentRepo 内存台账仓储
type fakeAdjustmentRepo struct {
	adjustments []*inventory.Adjustment
	nextID      uint

	createErr error // 注入台账写入失败,验证事务回滚
}

func newFakeAdjustmentRepo() *fakeAdjustmentRepo {
	return &fakeAdjustmentRepo{nextID: 1}
}

func (r *fakeAdjustmentRepo) snapshot() []*inventory.Adjustment {
	return append([]*inventory.Adjustment(nil), r.adjustments...)
}

func (r *fakeAdjustmentRepo) restore(s []*inventory.Adjustment) { r.adjustments = s }

func (r *fakeAdjustmentRepo) Create(ctx context.Context, adj *inventory.Adjustment) error {
	if r.createErr != nil {
		return r.createErr
	}
	adj.ID = r.nextID
	r.nextID++
	cp := *adj
	r.adjustments = append(r.adjustments, &cp)
	return nil
}

func (r *fakeAdjustmentRepo) List(ctx context.Context, params inventory.ListParams) ([]*inventory.Adjustment, int64, error) {
	var result []*inventory.Adjustment
	for _, adj := range r.adjustments {
		if params.ProductID > 0 && adj.ProductID != params.ProductID {
			continue
		}
		if params.Type != "" && adj.Type != params.Type {
			continue
		}
		result = append(result, adj)
	}
	return result, int64(len(result)), nil
}

func (r *fakeAdjustmentRepo) ListRecentByProduct(ctx context.Context, productID uint, limit int) ([]*inventory.Adjustment, error) {
	var result []*inventory.Adjustment
	for i := len(r.adjustments) - 1; i >= 0 && len(result) < limit; i-- {
		if r.adjustments[i].ProductID == productID {
			result = append(result, r.adjustments[i])
		}
	}
	return result, nil
}

// fakeCatalogCache 假目录缓存
// 只记录失效调用次数,验证调整成功后缓存被失效
type fakeCatalogCache struct {
	productInvalidations []uint
	listInvalidations    int
}

func (c *fakeCatalogCache) InvalidateProduct(ctx context.Context, productID uint) {
	c.productInvalidations = append(c.productInvalidations, productID)
}

func (c *fakeCatalogCache) InvalidateProductLists(ctx context.Context) {
	c.listInvalidations++
}

// fakeAlertRepo 内存告警仓储
type fakeAlertRepo struct {
	alerts map[uint]*inventory.Alert
	nextID uint
}

func newFakeAlertRepo() *fakeAlertRepo {
	return &fakeAlertRepo{alerts: make(map[uint]*inventory.Alert), nextID: 1}
}

func (r *fakeAlertRepo) snapshot() map[uint]*inventory.Alert {
	s := make(map[uint]*inventory.Alert, len(r.alerts))
	for id, a := range r.alerts {
		cp := *a
		s[id] = &cp
	}
	return s
}

func (r *fakeAlertRepo) restore(s map[uint]*inventory.Alert) { r.alerts = s }

func (r *fakeAlertRepo) Create(ctx context.Context, alert *inventory.Alert) error {
	alert.ID = r.nextID
	r.nextID++
	cp := *alert
	r.alerts[cp.ID] = &cp
	return nil
}

func (r *fakeAlertRepo) FindByID(ctx context.Context, id uint) (*inventory.Alert, error) {
	a, ok := r.alerts[id]
	if !ok {
		return nil, inventory.ErrAlertNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAlertRepo) HasOpen(ctx context.Context, productID uint, alertType inventory.AlertType) (bool, error) {
	for _, a := range r.alerts {
		if a.ProductID == productID && a.AlertType == alertType && !a.IsResolved {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAlertRepo) Resolve(ctx context.Context, id uint, at time.Time) (bool, error) {
	a, ok := r.alerts[id]
	if !ok || a.IsResolved {
		return false, nil
	}
	a.IsResolved = true
	a.ResolvedAt = &at
	return true, nil
}

func (r *fakeAlertRepo) ListActive(ctx context.Context) ([]*inventory.Alert, error) {
	var result []*inventory.Alert
	for _, a := range r.alerts {
		if !a.IsResolved {
			cp := *a
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (r *fakeAlertRepo) ListOpenByProduct(ctx context.Context, productID uint) ([]*inventory.Alert, error) {
	var result []*inventory.Alert
	for _, a := range r.alerts {
		if a.ProductID == productID && !a.IsResolved {
			cp := *a
			result = append(result, &cp)
		}
	}
	return result, nil
}

// =========================================
// 测试脚手架
// =========================================

type fixture struct {
	products *fakeProductRepo
	adjs     *fakeAdjustmentRepo
	alerts   *fakeAlertRepo
	cache    *fakeCatalogCache
	createUC *CreateAdjustmentUseCase
}

func newFixture() *fixture {
	products := newFakeProductRepo()
	adjs := newFakeAdjustmentRepo()
	alerts := newFakeAlertRepo()
	cache := &fakeCatalogCache{}
	tx := &fakeTxManager{products: products, adjs: adjs, alerts: alerts}

	return &fixture{
		products: products,
		adjs:     adjs,
		alerts:   alerts,
		cache:    cache,
		createUC: NewCreateAdjustmentUseCase(products, adjs, alerts, tx, cache),
	}
}

// seedProduct 入库一个测试商品
func (f *fixture) seedProduct(sku string, quantity, lowThreshold, reorderLevel int) *product.Product {
	p := product.NewProduct(sku, "测试商品-"+sku, "", 9900, nil, quantity, lowThreshold, reorderLevel)
	return f.products.add(p)
}
