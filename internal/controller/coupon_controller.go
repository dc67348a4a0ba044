package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"titanpc-store/internal/coupon"
	"titanpc-store/internal/dto"
)

type CouponController struct {
	Validator *coupon.Validator
	Used      *coupon.UsedStore
}

func NewCouponController(v *coupon.Validator, used *coupon.UsedStore) *CouponController {
	return &CouponController{Validator: v, Used: used}
}

// POST /coupons/validate — un cupón inválido no es un error HTTP: el motivo
// viaja inline en la respuesta.
func (ctl *CouponController) Validate(c *gin.Context) {
	var req dto.ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := ctl.Validator.Validate(req.Code, req.CartTotal, req.ProductIDs, time.Now())
	c.JSON(http.StatusOK, res)
}

// POST /coupons/:code/redeem — marca el código como usado por este cliente
func (ctl *CouponController) Redeem(c *gin.Context) {
	code := c.Param("code")

	used, err := ctl.Used.IsUsed(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if used {
		c.JSON(http.StatusConflict, gin.H{"error": "ya has usado este cupón"})
		return
	}

	if err := ctl.Used.MarkUsed(c.Request.Context(), code); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cupón canjeado"})
}

// GET /coupons/used
func (ctl *CouponController) ListUsed(c *gin.Context) {
	codes, err := ctl.Used.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, codes)
}
