package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/xiebiao/storefront/docs" // swag生成的API文档
	appadmin "github.com/xiebiao/storefront/internal/application/admin"
	appcart "github.com/xiebiao/storefront/internal/application/cart"
	appcatalog "github.com/xiebiao/storefront/internal/application/catalog"
	appinventory "github.com/xiebiao/storefront/internal/application/inventory"
	appreview "github.com/xiebiao/storefront/internal/application/review"
	appwishlist "github.com/xiebiao/storefront/internal/application/wishlist"
	"github.com/xiebiao/storefront/internal/domain/category"
	"github.com/xiebiao/storefront/internal/domain/product"
	"github.com/xiebiao/storefront/internal/infrastructure/config"
	"github.com/xiebiao/storefront/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/storefront/internal/infrastructure/persistence/sqlite"
	"github.com/xiebiao/storefront/internal/interface/http/handler"
	"github.com/xiebiao/storefront/internal/interface/http/middleware"
	"github.com/xiebiao/storefront/pkg/jwt"
	"github.com/xiebiao/storefront/pkg/logger"
	"github.com/xiebiao/storefront/pkg/metrics"
)

// @title           Storefront API
// @version         1.0
// @description     商品目录与库存管理服务
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
// @description     格式: Bearer <access_token>

// main 主程序入口
// 依赖注入为手动组装:Repository ← Service ← UseCase ← Handler
// (wire.go中有等价的Wire配置,wire gen后可切换到生成代码)
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 初始化日志
	zapLogger, err := logger.New(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer zapLogger.Sync() //nolint:errcheck
	zap.ReplaceGlobals(zapLogger)

	// 3. 注册Prometheus指标
	metrics.InitMetrics()

	// 4. 初始化存储
	db, err := sqlite.NewDB(cfg)
	if err != nil {
		zapLogger.Fatal("初始化数据库失败", zap.Error(err))
	}

	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		zapLogger.Fatal("初始化Redis失败", zap.Error(err))
	}
	defer redisClient.Close() //nolint:errcheck

	// 5. 依赖注入(手动组装)

	// 基础设施层
	productRepo := sqlite.NewProductRepository(db)
	categoryRepo := sqlite.NewCategoryRepository(db)
	adjustmentRepo := sqlite.NewAdjustmentRepository(db)
	alertRepo := sqlite.NewAlertRepository(db)
	reportRepo := sqlite.NewReportRepository(db)
	cartRepo := sqlite.NewCartRepository(db)
	wishlistRepo := sqlite.NewWishlistRepository(db)
	reviewRepo := sqlite.NewReviewRepository(db)
	adminRepo := sqlite.NewAdminRepository(db)
	txManager := sqlite.NewTxManager(db)
	cacheStore := redis.NewCacheStore(redisClient)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// 领域层
	productService := product.NewService(productRepo)
	categoryService := category.NewService(categoryRepo)

	// 应用层
	listProductsUC := appcatalog.NewListProductsUseCase(
		productService, categoryService, cacheStore, cfg.Cache.ProductListTTL)
	productDetailUC := appcatalog.NewProductDetailUseCase(
		productService, categoryRepo, reviewRepo, cacheStore, cfg.Cache.ProductDetailTTL)
	categoryTreeUC := appcatalog.NewCategoryTreeUseCase(
		categoryService, productRepo, cacheStore, cfg.Cache.CategoryTreeTTL)
	manageProductsUC := appcatalog.NewManageProductsUseCase(
		productService, productRepo, categoryService, cacheStore)
	manageCategoriesUC := appcatalog.NewManageCategoriesUseCase(categoryService, cacheStore)

	createAdjustmentUC := appinventory.NewCreateAdjustmentUseCase(
		productRepo, adjustmentRepo, alertRepo, txManager, cacheStore)
	bulkAdjustmentsUC := appinventory.NewBulkAdjustmentsUseCase(createAdjustmentUC)
	resolveAlertUC := appinventory.NewResolveAlertUseCase(alertRepo, zapLogger)
	inventoryQueriesUC := appinventory.NewQueriesUseCase(
		productRepo, adjustmentRepo, alertRepo, reportRepo)
	exportUC := appinventory.NewExportUseCase(reportRepo)

	cartUC := appcart.NewUseCase(cartRepo, productRepo)
	wishlistUC := appwishlist.NewUseCase(wishlistRepo, productRepo)
	reviewUC := appreview.NewUseCase(reviewRepo, productRepo)
	loginUC := appadmin.NewLoginUseCase(adminRepo, jwtManager, zapLogger)
	refreshUC := appadmin.NewRefreshUseCase(jwtManager)

	// 接口层
	productHandler := handler.NewProductHandler(listProductsUC, productDetailUC, manageProductsUC)
	categoryHandler := handler.NewCategoryHandler(categoryTreeUC, manageCategoriesUC)
	inventoryHandler := handler.NewInventoryHandler(
		createAdjustmentUC, bulkAdjustmentsUC, resolveAlertUC, inventoryQueriesUC, exportUC)
	cartHandler := handler.NewCartHandler(cartUC)
	wishlistHandler := handler.NewWishlistHandler(wishlistUC)
	reviewHandler := handler.NewReviewHandler(reviewUC)
	adminHandler := handler.NewAdminHandler(loginUC, refreshUC)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager)

	// 6. 初始化Gin引擎并注册路由
	engine, err := newRouter(cfg, routerHandlers{
		product:   productHandler,
		category:  categoryHandler,
		inventory: inventoryHandler,
		cart:      cartHandler,
		wishlist:  wishlistHandler,
		review:    reviewHandler,
		admin:     adminHandler,
	}, authMiddleware)
	if err != nil {
		zapLogger.Fatal("初始化路由失败", zap.Error(err))
	}

	// 7. 启动服务(带优雅关闭)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		zapLogger.Info("服务启动",
			zap.String("addr", srv.Addr),
			zap.String("mode", cfg.Server.Mode),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("启动服务失败", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zapLogger.Info("收到退出信号,开始关闭")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("关闭服务失败", zap.Error(err))
	}
	zapLogger.Info("服务已退出")
}

// setGinMode 按配置设置Gin运行模式
func setGinMode(mode string) {
	switch mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
}
