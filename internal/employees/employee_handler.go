package employees

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"assettrack/internal/repository"
	"assettrack/pkg/auditlog"
	custom_error "assettrack/pkg/errors"
	"assettrack/pkg/models"
	"assettrack/pkg/security"

	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	r        EmployeeRepository
	Service  *EmployeeService
	AuditLog AuditLogger
}

type AuditLogger interface {
	Log(action string, data interface{}, item auditlog.Auditable)
}

func NewHandler(repo *repository.Repository, r EmployeeRepository, a AuditLogger) *EmployeeHandler {
	return &EmployeeHandler{
		r:        r,
		Service:  NewService(repo, r),
		AuditLog: a,
	}
}

func (h *EmployeeHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/employees", h.GetEmployees)
	router.GET("/employees/:id", h.GetEmployee)

	protectedRoutes := router.Group("")
	protectedRoutes.Use(security.JWTMiddleware())
	{
		protectedRoutes.POST("/employees", h.CreateEmployee)
		protectedRoutes.PUT("/employees/:id", h.UpdateEmployee)
		protectedRoutes.DELETE("/employees/:id", security.Authorize("admin"), h.RemoveEmployee)
	}
}

func (h *EmployeeHandler) GetEmployees(c *gin.Context) {
	employees, err := h.r.GetEmployees()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch employees"})
		return
	}

	c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Employee ID is required"})
		return
	}

	employee, err := h.r.GetEmployee(id)
	if err != nil {
		var notFound *custom_error.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch employee details"})
		return
	}

	history, err := h.r.GetEmployeeHistory(id)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch employee details"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"employee": employee, "transactions": history})
}

func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req models.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "First name, last name, and email are required"})
		return
	}

	employee, err := h.r.PersistEmployee(req)
	if err != nil {
		switch err.(type) {
		case *custom_error.UniqueViolationError:
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"error": fmt.Sprintf("Employee with email '%s' already exists.", req.Email),
			})
			return
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to create employee"})
			return
		}
	}

	go h.AuditLog.Log(
		"create",
		map[string]interface{}{
			"email": employee.Email,
			"msg":   "Employee created",
		},
		employee,
	)

	c.JSON(http.StatusCreated, employee)
}

func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Employee ID is required"})
		return
	}

	var req models.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "First name, last name, and email are required"})
		return
	}

	if err := h.r.UpdateEmployee(id, req); err != nil {
		var notFound *custom_error.NotFoundError
		switch {
		case errors.As(err, &notFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		default:
			if _, ok := err.(*custom_error.UniqueViolationError); ok {
				c.AbortWithStatusJSON(http.StatusConflict, gin.H{
					"error": fmt.Sprintf("Employee with email '%s' already exists.", req.Email),
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to update employee"})
		}
		return
	}

	employee := models.Employee{ID: id}
	go h.AuditLog.Log(
		"update",
		map[string]interface{}{
			"email": req.Email,
			"msg":   "Employee updated",
		},
		&employee,
	)

	c.JSON(http.StatusOK, gin.H{"message": "Employee updated successfully"})
}

func (h *EmployeeHandler) RemoveEmployee(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Employee ID is required"})
		return
	}

	if err := h.Service.DeleteEmployee(id); err != nil {
		var referenced *custom_error.ReferencedEntityError
		var notFound *custom_error.NotFoundError
		switch {
		case errors.As(err, &referenced):
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": referenced.Error()})
		case errors.As(err, &notFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete employee"})
		}
		return
	}

	employee := models.Employee{ID: id}
	go h.AuditLog.Log(
		"remove",
		map[string]interface{}{
			"msg": "Employee removed",
		},
		&employee,
	)

	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}
