package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"titanpc-store/internal/catalog"
	"titanpc-store/internal/dto"
	"titanpc-store/internal/repository"
	"titanpc-store/internal/service"
)

type ReviewController struct {
	Service *service.ReviewService
}

func NewReviewController(s *service.ReviewService) *ReviewController {
	return &ReviewController{Service: s}
}

// GET /products/:slug/reviews — público, no requiere sesión
func (ctl *ReviewController) ListByProduct(c *gin.Context) {
	p, err := catalog.BySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "producto no encontrado"})
		return
	}

	reviews, err := ctl.Service.GetByProduct(c.Request.Context(), p.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func authUserFromContext(c *gin.Context) *service.AuthUser {
	return &service.AuthUser{
		ID:          c.GetString("userID"),
		Email:       c.GetString("userEmail"),
		Name:        c.GetString("userName"),
		Permissions: c.GetStringSlice("userPermissions"),
	}
}

// POST /reviews — requiere sesión y compra entregada del producto
func (ctl *ReviewController) Create(c *gin.Context) {
	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := ctl.Service.Create(c.Request.Context(), authUserFromContext(c), req.ProductID, req.Rating, req.Title, req.Comment)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, review)
	case errors.Is(err, service.ErrNotVerifiedBuyer):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrAlreadyReviewed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidRating):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// PUT /reviews/:id
func (ctl *ReviewController) Update(c *gin.Context) {
	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := ctl.Service.Update(c.Request.Context(), authUserFromContext(c), c.Param("id"), req.Rating, req.Title, req.Comment)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, review)
	case errors.Is(err, repository.ErrReviewNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotReviewOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidRating):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// DELETE /reviews/:id
func (ctl *ReviewController) Delete(c *gin.Context) {
	err := ctl.Service.Delete(c.Request.Context(), authUserFromContext(c), c.Param("id"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "reseña eliminada"})
	case errors.Is(err, repository.ErrReviewNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotReviewOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
