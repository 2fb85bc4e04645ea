package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/xiebiao/storefront/internal/infrastructure/config"
	"github.com/xiebiao/storefront/internal/interface/http/handler"
	"github.com/xiebiao/storefront/internal/interface/http/middleware"
	"github.com/xiebiao/storefront/pkg/response"
)

// routerHandlers 路由需要的全部Handler
type routerHandlers struct {
	product   *handler.ProductHandler
	category  *handler.CategoryHandler
	inventory *handler.InventoryHandler
	cart      *handler.CartHandler
	wishlist  *handler.WishlistHandler
	review    *handler.ReviewHandler
	admin     *handler.AdminHandler
}

// newRouter 创建Gin引擎并注册全部路由
// 路由分三块:
// - 基础设施端点:/ping、/metrics、/swagger
// - 公开接口:商品浏览、分类树、评论、购物车、心愿单(按会话)
// - 管理端接口:JWT保护,商品/分类管理、库存调整、告警、报表
func newRouter(cfg *config.Config, h routerHandlers, auth *middleware.AuthMiddleware) (*gin.Engine, error) {
	setGinMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.Metrics())

	rateLimit, err := middleware.RateLimit(cfg.RateLimit.Rate)
	if err != nil {
		return nil, err
	}

	// 基础设施端点(不限流)
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	v1.Use(rateLimit)
	{
		// 商品浏览(公开)
		products := v1.Group("/products")
		{
			products.GET("", h.product.ListProducts)
			products.GET("/:id", h.product.GetProduct)
			products.GET("/:id/reviews", h.review.ListReviews)
			products.POST("/:id/reviews", h.review.CreateReview)
		}

		// 分类树(公开)
		v1.GET("/categories/tree", h.category.GetTree)

		// 购物车(按会话)
		cart := v1.Group("/cart")
		cart.Use(middleware.Session())
		{
			cart.GET("", h.cart.GetCart)
			cart.DELETE("", h.cart.ClearCart)
			cart.POST("/items", h.cart.AddItem)
			cart.PUT("/items/:id", h.cart.UpdateItem)
			cart.DELETE("/items/:id", h.cart.RemoveItem)
		}

		// 心愿单(按会话)
		wishlist := v1.Group("/wishlist")
		wishlist.Use(middleware.Session())
		{
			wishlist.GET("", h.wishlist.List)
			wishlist.POST("", h.wishlist.Add)
			wishlist.DELETE("/:product_id", h.wishlist.Remove)
		}

		// 管理员认证(公开)
		v1.POST("/admin/login", h.admin.Login)
		v1.POST("/admin/refresh", h.admin.RefreshToken)

		// 管理端(JWT保护)
		admin := v1.Group("/admin")
		admin.Use(auth.RequireAuth())
		{
			// 商品管理
			adminProducts := admin.Group("/products")
			{
				adminProducts.POST("", h.product.CreateProduct)
				adminProducts.GET("/:id", h.product.GetAdminProduct)
				adminProducts.PUT("/:id", h.product.UpdateProduct)
				adminProducts.DELETE("/:id", h.product.DeleteProduct)
				adminProducts.PUT("/:id/active", h.product.SetProductActive)
			}

			// 分类管理
			adminCategories := admin.Group("/categories")
			{
				adminCategories.GET("", h.category.ListCategories)
				adminCategories.GET("/:id", h.category.GetCategory)
				adminCategories.POST("", h.category.CreateCategory)
				adminCategories.PUT("/:id", h.category.UpdateCategory)
				adminCategories.DELETE("/:id", h.category.DeleteCategory)
			}

			// 库存管理
			inventory := admin.Group("/inventory")
			{
				inventory.POST("/adjustments", h.inventory.CreateAdjustment)
				inventory.POST("/adjustments/bulk", h.inventory.BulkAdjustments)
				inventory.GET("/adjustments", h.inventory.ListAdjustments)
				inventory.GET("/products/:id", h.inventory.GetProductInventory)
				inventory.GET("/alerts", h.inventory.ListAlerts)
				inventory.PUT("/alerts/:id/resolve", h.inventory.ResolveAlert)
				inventory.GET("/stats", h.inventory.Stats)
				inventory.GET("/value-by-category", h.inventory.ValueByCategory)
				inventory.GET("/low-stock", h.inventory.LowStock)
				inventory.GET("/reorder", h.inventory.Reorder)
				inventory.GET("/export", h.inventory.Export)
			}
		}
	}

	return r, nil
}
