package handlers

import (
	"net/http"

	"smarthome/models"
	"smarthome/services/catalog"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	catalogService catalog.CatalogService
}

func NewServiceHandler(catalogService catalog.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalogService: catalogService}
}

func (h *ServiceHandler) GetServices(c *gin.Context) {
	services, err := h.catalogService.ListServices(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching services")
		return
	}
	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) GetService(c *gin.Context) {
	service, err := h.catalogService.GetServiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Error fetching service")
		return
	}
	c.JSON(http.StatusOK, service)
}

func (h *ServiceHandler) CreateService(c *gin.Context) {
	var service models.Service
	if err := c.ShouldBindJSON(&service); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid service", "details": err.Error()})
		return
	}

	id, err := h.catalogService.CreateService(c.Request.Context(), &service)
	if err != nil {
		respondError(c, err, "Error creating service")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": id})
}

func (h *ServiceHandler) UpdateService(c *gin.Context) {
	var update models.ServiceUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid update", "details": err.Error()})
		return
	}

	if err := h.catalogService.UpdateService(c.Request.Context(), c.Param("id"), update); err != nil {
		respondError(c, err, "Error updating service")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service updated"})
}

func (h *ServiceHandler) DeleteService(c *gin.Context) {
	if err := h.catalogService.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Error deleting service")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": 1})
}
