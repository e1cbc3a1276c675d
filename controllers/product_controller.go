package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"inventory/apperrors"
	"inventory/models"
)

// productServicer is what the HTTP adapter needs from the product catalog.
type productServicer interface {
	Create(ctx context.Context, in models.CreateProductRequest) (models.Product, error)
	List(ctx context.Context, q models.ProductQuery) (models.PaginatedProducts, error)
	Get(ctx context.Context, id string) (models.Product, error)
	Update(ctx context.Context, id string, in models.UpdateProductRequest) (models.Product, error)
	Remove(ctx context.Context, id string) (models.DeleteResult, error)
}

type ProductController struct {
	service productServicer
}

func NewProductController(service productServicer) *ProductController {
	return &ProductController{service: service}
}

func (pc *ProductController) Create(c *gin.Context) {
	var input models.CreateProductRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := pc.service.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (pc *ProductController) List(c *gin.Context) {
	var query models.ProductQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := pc.service.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (pc *ProductController) Get(c *gin.Context) {
	product, err := pc.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (pc *ProductController) Update(c *gin.Context) {
	var input models.UpdateProductRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := pc.service.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (pc *ProductController) Delete(c *gin.Context) {
	result, err := pc.service.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// respondError maps service failures onto status codes. Store and other
// unexpected failures keep their cause in the log but not in the response.
func respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Println("request failed:", err)
		c.JSON(status, gin.H{"error": "Something went wrong"})
		return
	}

	message := err.Error()
	if errors.Is(err, apperrors.ErrNotFound) {
		message = "Product not found"
	}
	c.JSON(status, gin.H{"error": message})
}
