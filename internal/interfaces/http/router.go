package http

import (
	"github.com/gofiber/fiber/v2"

	appcatalog "github.com/nirs/shop-api/internal/application/catalog"
	"github.com/nirs/shop-api/internal/application/media"
	"github.com/nirs/shop-api/internal/application/stock"
	"github.com/nirs/shop-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	StoreUC    *usecase.StoreUseCase
	CategoryUC *usecase.CategoryUseCase
	StatsUC    *usecase.StatsUseCase
	SearchUC   *appcatalog.SearchUseCase
	StockUC    *stock.StockUseCase
	ImageUC    *media.ImageUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Las lecturas son públicas;
// las mutaciones requieren Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	auth := AuthMiddleware(deps.JWTSecret)

	// Products (búsqueda filtrada + lecturas de stock por producto)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.SearchUC, deps.StockUC)
	products.Get("/", productHandler.Search)
	products.Post("/", auth, productHandler.Create)

	// Stats (lecturas sobre product_orders); antes de /:id para no capturarlas.
	statsHandler := NewStatsHandler(deps.StatsUC)
	products.Get("/top-selling", statsHandler.TopSelling)
	products.Get("/top-income", statsHandler.TopIncome)

	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", auth, productHandler.Update)
	products.Delete("/:id", auth, productHandler.Delete)
	products.Get("/:id/sizes", productHandler.Sizes)
	products.Get("/:id/total-quantity", productHandler.TotalQuantity)
	products.Get("/:id/store/:storeId/quantity", productHandler.QuantityInStore)
	products.Get("/:id/store/:storeId/in-stock", productHandler.InStock)
	products.Get("/:id/stores", productHandler.Stores)

	// Images (galería anidada bajo el producto)
	imageHandler := NewImageHandler(deps.ImageUC)
	products.Get("/:productId/images", imageHandler.List)
	products.Post("/:productId/images", auth, imageHandler.Add)
	products.Put("/:productId/images/reorder", auth, imageHandler.Reorder)
	products.Get("/:productId/images/:imageId", imageHandler.GetByID)
	products.Put("/:productId/images/:imageId", auth, imageHandler.Update)
	products.Delete("/:productId/images/:imageId", auth, imageHandler.Delete)
	products.Patch("/:productId/images/:imageId/set-primary", auth, imageHandler.SetPrimary)

	// Stock (filas producto × tienda × talla)
	stockGroup := api.Group("/product-store-sizes")
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Get("/", stockHandler.List)
	stockGroup.Post("/", auth, stockHandler.Create)
	stockGroup.Get("/by-product", stockHandler.ListByProduct)
	stockGroup.Get("/check-availability", stockHandler.CheckAvailability)
	stockGroup.Get("/sizes/all", stockHandler.AllSizes)
	stockGroup.Get("/:id", stockHandler.GetByID)
	stockGroup.Put("/:id", auth, stockHandler.Update)
	stockGroup.Delete("/:id", auth, stockHandler.Delete)
	stockGroup.Patch("/:id/adjust", auth, stockHandler.Adjust)
	stockGroup.Patch("/:id/quantity", auth, stockHandler.SetQuantity)

	// Stores
	stores := api.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores.Get("/", storeHandler.List)
	stores.Post("/", auth, storeHandler.Create)
	stores.Get("/:id", storeHandler.GetByID)
	stores.Put("/:id", auth, storeHandler.Update)
	stores.Delete("/:id", auth, storeHandler.Delete)

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", auth, categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Get("/:id/children", categoryHandler.Children)
	categories.Put("/:id", auth, categoryHandler.Update)
	categories.Delete("/:id", auth, categoryHandler.Delete)
}
