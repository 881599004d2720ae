package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/tallypro_backend/internal/core/ports/services"
	"github.com/SscSPs/tallypro_backend/internal/dto"
	"github.com/SscSPs/tallypro_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// productHandler handles HTTP requests related to products and stock.
type productHandler struct {
	productService portssvc.ProductSvcFacade
}

// newProductHandler creates a new productHandler.
func newProductHandler(ps portssvc.ProductSvcFacade) *productHandler {
	return &productHandler{
		productService: ps,
	}
}

// registerProductRoutes registers routes related to products.
func registerProductRoutes(rg *gin.RouterGroup, productService portssvc.ProductSvcFacade) {
	h := newProductHandler(productService)

	products := rg.Group("/products")
	{
		products.POST("", h.createProduct)
		products.GET("", h.listProducts)
		products.GET("/:productID", h.getProduct)
		products.POST("/:productID/movements", h.recordStockMovement)
		products.GET("/:productID/movements", h.listStockMovements)
	}
}

// createProduct godoc
// @Summary Create a product
// @Description Adds a product. Unit defaults to units and the low stock level to 5.
// @Tags products
// @Accept  json
// @Produce  json
// @Param   product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "SKU already exists"
// @Failure 500 {object} map[string]string "Failed to create product"
// @Router /products [post]
func (h *productHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, "CreateProduct", err)
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Product not found", "Failed to create product")
		return
	}
	c.JSON(http.StatusCreated, dto.ToProductResponse(*product))
}

// listProducts godoc
// @Summary List products
// @Description Lists products, optionally filtered by name/SKU and to low stock only
// @Tags products
// @Produce  json
// @Param   search query string false "Name or SKU fragment"
// @Param   lowStock query bool false "Only products at or below their low stock level"
// @Success 200 {array} dto.ProductResponse
// @Failure 500 {object} map[string]string "Failed to list products"
// @Router /products [get]
func (h *productHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListProductsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, "ListProducts", err)
		return
	}

	products, err := h.productService.ListProducts(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Product not found", "Failed to list products")
		return
	}
	c.JSON(http.StatusOK, dto.ToListProductResponse(products))
}

// getProduct godoc
// @Summary Get a product
// @Tags products
// @Produce  json
// @Param   productID path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Failed to retrieve product"
// @Router /products/{productID} [get]
func (h *productHandler) getProduct(c *gin.Context) {
	productID := c.Param("productID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("product_id", productID))

	product, err := h.productService.GetProductByID(c.Request.Context(), productID)
	if err != nil {
		respondServiceError(c, logger, err, "Product not found", "Failed to retrieve product")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(*product))
}

// recordStockMovement godoc
// @Summary Record a stock movement
// @Description Adds (IN) or removes (OUT) stock. Removing more than is on hand is rejected.
// @Tags products
// @Accept  json
// @Produce  json
// @Param   productID path string true "Product ID"
// @Param   movement body dto.CreateStockMovementRequest true "Movement details"
// @Success 201 {object} dto.StockMovementResponse
// @Failure 400 {object} map[string]string "Invalid input or insufficient stock"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Failed to record stock movement"
// @Router /products/{productID}/movements [post]
func (h *productHandler) recordStockMovement(c *gin.Context) {
	productID := c.Param("productID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("product_id", productID))

	var req dto.CreateStockMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, "RecordStockMovement", err)
		return
	}

	movement, err := h.productService.RecordStockMovement(c.Request.Context(), productID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Product not found", "Failed to record stock movement")
		return
	}
	c.JSON(http.StatusCreated, dto.ToStockMovementResponse(*movement))
}

// listStockMovements godoc
// @Summary List stock movements
// @Tags products
// @Produce  json
// @Param   productID path string true "Product ID"
// @Success 200 {array} dto.StockMovementResponse
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Failed to list stock movements"
// @Router /products/{productID}/movements [get]
func (h *productHandler) listStockMovements(c *gin.Context) {
	productID := c.Param("productID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("product_id", productID))

	movements, err := h.productService.ListStockMovements(c.Request.Context(), productID)
	if err != nil {
		respondServiceError(c, logger, err, "Product not found", "Failed to list stock movements")
		return
	}
	c.JSON(http.StatusOK, dto.ToListStockMovementResponse(movements))
}
