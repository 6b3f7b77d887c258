// internal/handlers/catalog.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/storefront-backend/internal/i18n"
	"github.com/javajoker/storefront-backend/internal/services"
	"github.com/javajoker/storefront-backend/internal/utils"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// GET /products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{"products": h.catalogService.Products()})
}

// GET /products/:name
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	name := c.Param("name")

	product, err := h.catalogService.Product(name)
	if err != nil {
		utils.NotFoundResponse(c, i18n.KeyProductNotFound, name)
		return
	}

	utils.SuccessResponse(c, product)
}

// GET /products/:name/quote?quantity=N
func (h *CatalogHandler) QuoteProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	name := c.Param("name")

	product, err := h.catalogService.Product(name)
	if err != nil {
		utils.NotFoundResponse(c, i18n.KeyProductNotFound, name)
		return
	}

	quantity, err := strconv.Atoi(c.DefaultQuery("quantity", "1"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "quantity"), nil)
		return
	}

	quote, err := services.QuoteProduct(product, quantity)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"productName": product.Name,
		"inStock":     quantity <= product.Quantity,
		"quote":       quote,
	})
}

// GET /decorations
func (h *CatalogHandler) GetDecorations(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{"decorations": h.catalogService.Decorations()})
}

// GET /decorations/:name
func (h *CatalogHandler) GetDecoration(c *gin.Context) {
	name := c.Param("name")

	decoration, err := h.catalogService.Decoration(name)
	if err != nil {
		utils.NotFoundResponse(c, i18n.KeyDecorationNotFound, name)
		return
	}

	utils.SuccessResponse(c, decoration)
}
