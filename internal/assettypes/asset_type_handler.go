package assettypes

import (
	"errors"
	"net/http"
	"strconv"

	"assettrack/internal/repository"
	"assettrack/pkg/auditlog"
	custom_error "assettrack/pkg/errors"
	"assettrack/pkg/models"
	"assettrack/pkg/security"

	"github.com/gin-gonic/gin"
)

type AssetTypeHandler struct {
	r        AssetTypeRepository
	Service  *AssetTypeService
	AuditLog AuditLogger
}

type AuditLogger interface {
	Log(action string, data interface{}, item auditlog.Auditable)
}

func NewHandler(repo *repository.Repository, r AssetTypeRepository, a AuditLogger) *AssetTypeHandler {
	return &AssetTypeHandler{
		r:        r,
		Service:  NewService(repo, r),
		AuditLog: a,
	}
}

func (h *AssetTypeHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/asset-types", h.GetAssetTypes)

	protectedRoutes := router.Group("")
	protectedRoutes.Use(security.JWTMiddleware())
	{
		protectedRoutes.POST("/asset-types", h.CreateAssetType)
		protectedRoutes.PUT("/asset-types/:id", h.UpdateAssetType)
		protectedRoutes.DELETE("/asset-types/:id", security.Authorize("admin"), h.RemoveAssetType)
	}
}

func (h *AssetTypeHandler) GetAssetTypes(c *gin.Context) {
	assetTypes, err := h.r.GetAssetTypes()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch asset types"})
		return
	}

	c.JSON(http.StatusOK, assetTypes)
}

func (h *AssetTypeHandler) CreateAssetType(c *gin.Context) {
	var req models.AssetTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if req.Name == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	assetType, err := h.r.PersistAssetType(req)
	if err != nil {
		switch err.(type) {
		case *custom_error.UniqueViolationError:
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Asset type with this name already exists"})
			return
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to create asset type"})
			return
		}
	}

	go h.AuditLog.Log(
		"create",
		map[string]interface{}{
			"name": assetType.Name,
			"msg":  "Asset type created",
		},
		assetType,
	)

	c.JSON(http.StatusCreated, assetType)
}

func (h *AssetTypeHandler) UpdateAssetType(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Asset type ID is required"})
		return
	}

	var req models.AssetTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if req.Name == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	if err := h.r.UpdateAssetType(id, req); err != nil {
		var notFound *custom_error.NotFoundError
		switch {
		case errors.As(err, &notFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset type not found"})
		default:
			if _, ok := err.(*custom_error.UniqueViolationError); ok {
				c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Asset type with this name already exists"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to update asset type"})
		}
		return
	}

	assetType := models.AssetType{ID: id, Name: req.Name}
	go h.AuditLog.Log(
		"update",
		map[string]interface{}{
			"name": req.Name,
			"msg":  "Asset type updated",
		},
		&assetType,
	)

	c.JSON(http.StatusOK, gin.H{"message": "Asset type updated successfully"})
}

func (h *AssetTypeHandler) RemoveAssetType(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Asset type ID is required"})
		return
	}

	if err := h.Service.DeleteAssetType(id); err != nil {
		var referenced *custom_error.ReferencedEntityError
		var notFound *custom_error.NotFoundError
		switch {
		case errors.As(err, &referenced):
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": referenced.Error()})
		case errors.As(err, &notFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset type not found"})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete asset type"})
		}
		return
	}

	assetType := models.AssetType{ID: id}
	go h.AuditLog.Log(
		"remove",
		map[string]interface{}{
			"msg": "Asset type removed",
		},
		&assetType,
	)

	c.JSON(http.StatusOK, gin.H{"message": "Asset type deleted successfully"})
}
