package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/urbanhive/marketplace-search/internal/errors"
	"github.com/urbanhive/marketplace-search/model"
)

// AddServicesHandler handles adding/updating listings.
// Request Body: a model.Service object or an array of them.
func (api *API) AddServicesHandler(c *gin.Context) {
	var listings []model.Service

	// Accept both a single object and an array
	if err := c.ShouldBindBodyWithJSON(&listings); err != nil {
		var single model.Service
		if errSingle := c.ShouldBindBodyWithJSON(&single); errSingle != nil {
			SendInvalidJSONError(c, err)
			return
		}
		listings = []model.Service{single}
	}

	if len(listings) == 0 {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, "No listings provided")
		return
	}
	for i, listing := range listings {
		if listing.Title == "" {
			SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed,
				"Listing at index "+strconv.Itoa(i)+" has no title")
			return
		}
	}

	if err := api.engine.AddServices(listings); err != nil {
		SendInternalError(c, "add services", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"added": len(listings)})
}

// ListServicesHandler lists stored listings newest-first with
// pagination (?page=&page_size=).
func (api *API) ListServicesHandler(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = 20
	}

	listings, total := api.engine.ListServices(page, pageSize)
	c.JSON(http.StatusOK, gin.H{
		"services":  listings,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetServiceHandler returns one listing by ID.
func (api *API) GetServiceHandler(c *gin.Context) {
	serviceID := c.Param("serviceID")

	listing, err := api.engine.GetService(serviceID)
	if err != nil {
		if errors.Is(err, internalErrors.ErrServiceNotFound) {
			SendServiceNotFoundError(c, serviceID)
			return
		}
		SendInternalError(c, "get service", err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

// DeleteServiceHandler removes one listing by ID.
func (api *API) DeleteServiceHandler(c *gin.Context) {
	serviceID := c.Param("serviceID")

	if err := api.engine.DeleteService(serviceID); err != nil {
		if errors.Is(err, internalErrors.ErrServiceNotFound) {
			SendServiceNotFoundError(c, serviceID)
			return
		}
		SendInternalError(c, "delete service", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service '" + serviceID + "' deleted"})
}

// DeleteAllServicesHandler clears the listing catalog.
func (api *API) DeleteAllServicesHandler(c *gin.Context) {
	if err := api.engine.DeleteAllServices(); err != nil {
		SendInternalError(c, "delete all services", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All services deleted"})
}
