package operations

import (
	"errors"
	"log"
	"net/http"

	"assettrack/internal/assets"
	"assettrack/internal/repository"
	custom_error "assettrack/pkg/errors"
	"assettrack/pkg/models"
	"assettrack/pkg/security"

	"github.com/gin-gonic/gin"
)

type OperationHandler struct {
	Service *OperationService
}

func NewHandler(r *repository.Repository, or OperationRepository, ar *assets.AssetsRepository, a AuditLogger) *OperationHandler {
	return &OperationHandler{
		Service: NewService(r, or, ar, a),
	}
}

func (h *OperationHandler) RegisterRoutes(router *gin.Engine) {
	protectedRoutes := router.Group("")
	protectedRoutes.Use(security.JWTMiddleware())
	{
		protectedRoutes.POST("/operations/checkout", h.CheckOut)
		protectedRoutes.POST("/operations/checkin", h.CheckIn)
		protectedRoutes.GET("/operations/available-assets", h.GetAvailableAssets)
		protectedRoutes.GET("/operations/assets-in-use", h.GetAssetsInUse)
	}
}

func (h *OperationHandler) CheckOut(c *gin.Context) {
	var req models.CheckOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if req.AssetID == 0 || req.EmployeeID == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Asset and Employee are required"})
		return
	}

	record, err := h.Service.CheckOut(req)
	if err != nil {
		h.respondTransitionError(c, err, "Failed to check out asset")
		return
	}

	c.JSON(http.StatusCreated, record)
}

func (h *OperationHandler) CheckIn(c *gin.Context) {
	var req models.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if req.AssetID == 0 || req.EmployeeID == 0 || req.NewStatus == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Asset, Employee, and New Status are required"})
		return
	}

	record, err := h.Service.CheckIn(req)
	if err != nil {
		h.respondTransitionError(c, err, "Failed to check in asset")
		return
	}

	c.JSON(http.StatusCreated, record)
}

func (h *OperationHandler) GetAvailableAssets(c *gin.Context) {
	assetList, err := h.Service.GetAvailableAssets()
	if err != nil {
		log.Println("Error executing SQL statement: ", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch available assets"})
		return
	}

	c.JSON(http.StatusOK, assetList)
}

func (h *OperationHandler) GetAssetsInUse(c *gin.Context) {
	assetList, err := h.Service.GetAssetsInUse()
	if err != nil {
		log.Println("Error executing SQL statement: ", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch assets in use"})
		return
	}

	c.JSON(http.StatusOK, assetList)
}

func (h *OperationHandler) respondTransitionError(c *gin.Context, err error, fallback string) {
	var transition *custom_error.InvalidTransitionError
	var notFound *custom_error.NotFoundError

	switch {
	case errors.As(err, &transition):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": transition.Error()})
	case errors.As(err, &notFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
	default:
		log.Println("Error executing SQL statement: ", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
