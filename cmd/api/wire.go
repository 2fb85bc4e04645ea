//go:build wireinject
// +build wireinject

// Wire依赖注入配置
// 运行 `wire gen ./cmd/api` 生成wire_gen.go后,main.go可切换到InitializeApp()
package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"go.uber.org/zap"

	appadmin "github.com/xiebiao/storefront/internal/application/admin"
	appcart "github.com/xiebiao/storefront/internal/application/cart"
	appcatalog "github.com/xiebiao/storefront/internal/application/catalog"
	appinventory "github.com/xiebiao/storefront/internal/application/inventory"
	appreview "github.com/xiebiao/storefront/internal/application/review"
	appwishlist "github.com/xiebiao/storefront/internal/application/wishlist"
	"github.com/xiebiao/storefront/internal/domain/category"
	"github.com/xiebiao/storefront/internal/domain/product"
	"github.com/xiebiao/storefront/internal/domain/review"
	"github.com/xiebiao/storefront/internal/infrastructure/config"
	"github.com/xiebiao/storefront/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/storefront/internal/infrastructure/persistence/sqlite"
	"github.com/xiebiao/storefront/internal/interface/http/handler"
	"github.com/xiebiao/storefront/internal/interface/http/middleware"
	"github.com/xiebiao/storefront/pkg/jwt"
	"github.com/xiebiao/storefront/pkg/logger"
)

// infrastructureSet 基础设施层:配置、日志、数据库、Redis
var infrastructureSet = wire.NewSet(
	config.Load,
	provideLogger,
	sqlite.NewDB,
	redis.NewClient,
)

// repositorySet 仓储层
var repositorySet = wire.NewSet(
	sqlite.NewProductRepository,
	sqlite.NewCategoryRepository,
	sqlite.NewAdjustmentRepository,
	sqlite.NewAlertRepository,
	sqlite.NewReportRepository,
	sqlite.NewCartRepository,
	sqlite.NewWishlistRepository,
	sqlite.NewReviewRepository,
	sqlite.NewAdminRepository,
	sqlite.NewTxManager,
	wire.Bind(new(appinventory.TxManager), new(*sqlite.TxManager)),
	redis.NewCacheStore,
	wire.Bind(new(appcatalog.CacheStore), new(*redis.CacheStore)),
	wire.Bind(new(appinventory.CatalogCache), new(*redis.CacheStore)),
)

// domainSet 领域层
var domainSet = wire.NewSet(
	product.NewService,
	category.NewService,
)

// applicationSet 应用层
// 带缓存TTL参数的用例走自定义Provider(Wire无法区分多个time.Duration)
var applicationSet = wire.NewSet(
	provideListProductsUseCase,
	provideProductDetailUseCase,
	provideCategoryTreeUseCase,
	appcatalog.NewManageProductsUseCase,
	appcatalog.NewManageCategoriesUseCase,
	appinventory.NewCreateAdjustmentUseCase,
	appinventory.NewBulkAdjustmentsUseCase,
	appinventory.NewResolveAlertUseCase,
	appinventory.NewQueriesUseCase,
	appinventory.NewExportUseCase,
	appcart.NewUseCase,
	appwishlist.NewUseCase,
	appreview.NewUseCase,
	appadmin.NewLoginUseCase,
	appadmin.NewRefreshUseCase,
)

// middlewareSet 中间件层
var middlewareSet = wire.NewSet(
	provideJWTManager,
	middleware.NewAuthMiddleware,
)

// handlerSet 接口层
var handlerSet = wire.NewSet(
	handler.NewProductHandler,
	handler.NewCategoryHandler,
	handler.NewInventoryHandler,
	handler.NewCartHandler,
	handler.NewWishlistHandler,
	handler.NewReviewHandler,
	handler.NewAdminHandler,
)

func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output)
}

func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

func provideListProductsUseCase(
	productService product.Service,
	categoryService category.Service,
	cache appcatalog.CacheStore,
	cfg *config.Config,
) *appcatalog.ListProductsUseCase {
	return appcatalog.NewListProductsUseCase(productService, categoryService, cache, cfg.Cache.ProductListTTL)
}

func provideProductDetailUseCase(
	productService product.Service,
	categoryRepo category.Repository,
	reviewRepo review.Repository,
	cache appcatalog.CacheStore,
	cfg *config.Config,
) *appcatalog.ProductDetailUseCase {
	return appcatalog.NewProductDetailUseCase(productService, categoryRepo, reviewRepo, cache, cfg.Cache.ProductDetailTTL)
}

func provideCategoryTreeUseCase(
	categoryService category.Service,
	productRepo product.Repository,
	cache appcatalog.CacheStore,
	cfg *config.Config,
) *appcatalog.CategoryTreeUseCase {
	return appcatalog.NewCategoryTreeUseCase(categoryService, productRepo, cache, cfg.Cache.CategoryTreeTTL)
}

// provideGinEngine 组装Gin引擎
func provideGinEngine(
	cfg *config.Config,
	productHandler *handler.ProductHandler,
	categoryHandler *handler.CategoryHandler,
	inventoryHandler *handler.InventoryHandler,
	cartHandler *handler.CartHandler,
	wishlistHandler *handler.WishlistHandler,
	reviewHandler *handler.ReviewHandler,
	adminHandler *handler.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) (*gin.Engine, error) {
	return newRouter(cfg, routerHandlers{
		product:   productHandler,
		category:  categoryHandler,
		inventory: inventoryHandler,
		cart:      cartHandler,
		wishlist:  wishlistHandler,
		review:    reviewHandler,
		admin:     adminHandler,
	}, authMiddleware)
}

// InitializeApp 初始化整个应用
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil
}
