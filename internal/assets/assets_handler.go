package assets

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"assettrack/pkg/auditlog"
	custom_error "assettrack/pkg/errors"
	"assettrack/pkg/metadata"
	"assettrack/pkg/models"
	"assettrack/pkg/security"

	"github.com/gin-gonic/gin"
)

type AssetHandler struct {
	r        AssetsRepositoryProvider
	AuditLog AuditLogger
}

// AssetsRepositoryProvider is what the handler needs from the repository,
// narrowed so tests can swap in a mock.
type AssetsRepositoryProvider interface {
	GetAsset(id int) (*models.Asset, error)
	GetAssetList(filter models.AssetFilter) (*[]models.Asset, error)
	GetAssetHistory(assetID int) ([]models.Transaction, error)
	PersistAsset(req models.AssetRequest) (*models.Asset, error)
	UpdateAsset(id int, req models.AssetRequest) error
	ResetStatus(id int, status metadata.Status) error
	RemoveAsset(id int) (string, error)
}

type AuditLogger interface {
	Log(action string, data interface{}, item auditlog.Auditable)
}

func NewAssetHandler(ar AssetsRepositoryProvider, a AuditLogger) *AssetHandler {
	return &AssetHandler{
		r:        ar,
		AuditLog: a,
	}
}

func (h *AssetHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/assets", h.ListAssets)
	router.GET("/assets/:id", h.GetAsset)

	protectedRoutes := router.Group("")
	protectedRoutes.Use(security.JWTMiddleware())
	{
		protectedRoutes.POST("/assets", h.CreateAsset)
		protectedRoutes.PUT("/assets/:id", h.UpdateAsset)
		protectedRoutes.PATCH("/assets/:id/status", h.ResetAssetStatus)
		protectedRoutes.DELETE("/assets/:id", security.Authorize("admin"), h.RemoveAsset)
	}
}

func (h *AssetHandler) ListAssets(c *gin.Context) {
	filter := models.AssetFilter{
		Text: c.Query("q"),
	}

	if status := c.Query("status"); status != "" {
		parsed, err := metadata.NewStatus(status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter", "details": err.Error()})
			return
		}
		filter.Status = parsed.String()
	}

	if typeID := c.Query("type_id"); typeID != "" {
		parsed, err := strconv.Atoi(typeID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type_id filter"})
			return
		}
		filter.TypeID = parsed
	}

	assets, err := h.r.GetAssetList(filter)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch assets"})
		return
	}

	c.JSON(http.StatusOK, assets)
}

func (h *AssetHandler) GetAsset(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Asset ID is required"})
		return
	}

	asset, err := h.r.GetAsset(id)
	if err != nil {
		var notFound *custom_error.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch asset details"})
		return
	}

	history, err := h.r.GetAssetHistory(id)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch asset details"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": asset, "transactions": history})
}

func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var req models.AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if req.Code == "" || req.Name == "" || req.TypeID == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Missing required fields (Code, Name, Type)"})
		return
	}

	asset, err := h.r.PersistAsset(req)
	if err != nil {
		switch err.(type) {
		case *custom_error.UniqueViolationError:
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"error": fmt.Sprintf("Asset with code '%s' already exists.", req.Code),
			})
			return
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to create asset"})
			return
		}
	}

	go h.AuditLog.Log(
		"create",
		map[string]interface{}{
			"code":    asset.Code,
			"type_id": asset.Type.ID,
			"msg":     "Asset created successfully",
		},
		asset,
	)

	c.JSON(http.StatusCreated, asset)
}

func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Asset ID is required"})
		return
	}

	var req models.AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if req.Code == "" || req.Name == "" || req.TypeID == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Missing required fields (Code, Name, Type)"})
		return
	}

	if err := h.r.UpdateAsset(id, req); err != nil {
		var notFound *custom_error.NotFoundError
		switch {
		case errors.As(err, &notFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		default:
			if _, ok := err.(*custom_error.UniqueViolationError); ok {
				c.AbortWithStatusJSON(http.StatusConflict, gin.H{
					"error": fmt.Sprintf("Asset with code '%s' already exists.", req.Code),
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to update asset"})
		}
		return
	}

	asset := models.Asset{ID: id}
	go h.AuditLog.Log(
		"update",
		map[string]interface{}{
			"code": req.Code,
			"msg":  "Asset updated",
		},
		&asset,
	)

	c.JSON(http.StatusOK, gin.H{"message": "Asset updated successfully"})
}

// ResetAssetStatus is the re-entry path: a MAINTENANCE or RETIRED asset can
// be put back to AVAILABLE here. Assets that are IN_USE are rejected, the
// ledger only moves them through check-in.
func (h *AssetHandler) ResetAssetStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Asset ID is required"})
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	status, err := metadata.NewStatus(req.Status)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid asset status", "details": err.Error()})
		return
	}
	if status == metadata.StatusInUse {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Assets enter IN_USE only through checkout"})
		return
	}

	if err := h.r.ResetStatus(id, status); err != nil {
		var transition *custom_error.InvalidTransitionError
		if errors.As(err, &transition) {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": transition.Error()})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to update asset status"})
		return
	}

	asset := models.Asset{ID: id}
	go h.AuditLog.Log(
		"update",
		map[string]interface{}{
			"status": status.String(),
			"msg":    "Asset status reset",
		},
		&asset,
	)

	c.JSON(http.StatusOK, gin.H{"message": "Asset status updated successfully"})
}

func (h *AssetHandler) RemoveAsset(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Asset ID is required"})
		return
	}

	code, err := h.r.RemoveAsset(id)
	if err != nil {
		var notFound *custom_error.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete asset"})
		return
	}

	asset := models.Asset{ID: id, Code: code}
	go h.AuditLog.Log(
		"remove",
		map[string]interface{}{
			"code": code,
			"msg":  "Asset removed from register",
		},
		&asset,
	)

	c.JSON(http.StatusOK, gin.H{"message": "Asset deleted successfully"})
}
