package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"backend/internal/config"
	"backend/internal/models"
)

/*
GET /products
- pagination optional: with no page+limit, all matching rows are returned
- only rows passing the visibility gate (published AND approved) are listed
*/
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products"
		defer handlePanic(c, route)

		log.Printf(
			"[%s] hit page=%s limit=%s vendor=%s search=%s",
			route,
			c.Query("page"),
			c.Query("limit"),
			c.Query("vendor"),
			c.Query("search"),
		)

		ctx, cancel := requestContext(c)
		defer cancel()

		query := db.WithContext(ctx).
			Where("is_published = ? AND status = ?", true, models.ProductStatusApproved).
			Order("created_at DESC")

		if vendor := strings.TrimSpace(c.Query("vendor")); vendor != "" {
			query = query.Where("vendor_id = ?", vendor)
		}
		if search := strings.TrimSpace(c.Query("search")); search != "" {
			query = query.Where("name ILIKE ?", "%"+search+"%")
		}

		pageStr := c.Query("page")
		limitStr := c.Query("limit")
		if pageStr != "" && limitStr != "" {
			page, limit, err := parsePaginationParams(pageStr, limitStr, config.AppEnv.DefaultPageSize)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, "invalid pagination params")
				return
			}
			query = query.Offset(int((page - 1) * limit)).Limit(int(limit))
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		for i := range products {
			products[i].DisplayPrice = displayPrice(products[i].Price, products[i].Specs.CommissionPercent)
		}

		log.Printf("[%s] returning %d products", route, len(products))
		c.JSON(http.StatusOK, products)
	}
}

func GetProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products/:id"
		defer handlePanic(c, route)

		ctx, cancel := requestContext(c)
		defer cancel()

		var product models.Product
		err := db.WithContext(ctx).
			Where("id = ? AND is_published = ? AND status = ?",
				c.Param("id"), true, models.ProductStatusApproved).
			First(&product).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		product.DisplayPrice = displayPrice(product.Price, product.Specs.CommissionPercent)
		c.JSON(http.StatusOK, product)
	}
}
