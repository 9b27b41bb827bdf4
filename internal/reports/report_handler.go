package reports

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"assettrack/pkg/security"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	Service *ReportService
}

func NewHandler(assets AssetLister) *ReportHandler {
	return &ReportHandler{Service: NewService(assets)}
}

func (h *ReportHandler) RegisterRoutes(router *gin.Engine) {
	protectedRoutes := router.Group("")
	protectedRoutes.Use(security.JWTMiddleware())
	{
		protectedRoutes.GET("/reports/assets", h.ExportAssetRegister)
	}
}

func (h *ReportHandler) ExportAssetRegister(c *gin.Context) {
	buf, err := h.Service.BuildAssetRegister()
	if err != nil {
		log.Println("Error building asset register: ", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to build asset register"})
		return
	}

	filename := fmt.Sprintf("assets-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
