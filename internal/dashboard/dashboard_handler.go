package dashboard

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const defaultRecentLimit = 10

type DashboardHandler struct {
	r       DashboardRepository
	Service *DashboardService
}

func NewHandler(r DashboardRepository) *DashboardHandler {
	return &DashboardHandler{
		r:       r,
		Service: NewService(r),
	}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/dashboard/stats", h.GetStats)
	router.GET("/dashboard/recent-transactions", h.GetRecentTransactions)
}

func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.Service.GetStats()
	if err != nil {
		log.Println("Error executing SQL statement: ", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *DashboardHandler) GetRecentTransactions(c *gin.Context) {
	limit := defaultRecentLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	transactions, err := h.r.GetRecentTransactions(uint(limit))
	if err != nil {
		log.Println("Error executing SQL statement: ", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recent transactions"})
		return
	}

	c.JSON(http.StatusOK, transactions)
}
