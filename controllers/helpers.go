package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"nextparkapi/models"
	"nextparkapi/services"
	"nextparkapi/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP statuses. Unexpected database
// errors surface as 500; everything a client can fix stays in the 4xx range.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, services.ErrEmailTaken):
		utils.ErrorResponseWithStatus(c, http.StatusConflict, err)
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.ErrorResponseWithStatus(c, http.StatusUnauthorized, err)
	case errors.Is(err, services.ErrIDMismatch),
		errors.Is(err, services.ErrVagaNotFound),
		errors.Is(err, services.ErrMotoNotFound):
		utils.ErrorResponse(c, err)
	default:
		utils.ErrorResponseWithStatus(c, http.StatusInternalServerError, err)
	}
}

// parsePagination reads pageNumber/pageSize query parameters. Both must be
// greater than zero; violations get a 400 and a false return.
func parsePagination(c *gin.Context) (int, int, bool) {
	pageNumber, err := strconv.Atoi(c.DefaultQuery("pageNumber", "1"))
	if err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid pageNumber: %w", err))
		return 0, 0, false
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid pageSize: %w", err))
		return 0, 0, false
	}
	if pageNumber <= 0 || pageSize <= 0 {
		utils.ErrorResponse(c, fmt.Errorf("pagination parameters must be greater than zero"))
		return 0, 0, false
	}
	return pageNumber, pageSize, true
}

// parseID reads a positive integer id path parameter.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		utils.ErrorResponse(c, fmt.Errorf("invalid id parameter"))
		return 0, false
	}
	return uint(id), true
}

// addCollectionLinks decorates a paged envelope with HATEOAS navigation.
func addCollectionLinks(resp *models.PagedResponse, basePath string, pageNumber, pageSize int) {
	pageHref := func(page int) string {
		return fmt.Sprintf("%s?pageNumber=%d&pageSize=%d", basePath, page, pageSize)
	}
	resp.AddLink(pageHref(pageNumber), "self", http.MethodGet)
	if pageNumber > 1 {
		resp.AddLink(pageHref(pageNumber-1), "previous", http.MethodGet)
	}
	if pageNumber < resp.TotalPages {
		resp.AddLink(pageHref(pageNumber+1), "next", http.MethodGet)
	}
	resp.AddLink(basePath, "create", http.MethodPost)
}

// addResourceLinks decorates a single-resource envelope with HATEOAS navigation.
func addResourceLinks(resp *models.ResourceResponse, basePath string, id uint) {
	href := fmt.Sprintf("%s/%d", basePath, id)
	resp.AddLink(href, "self", http.MethodGet)
	resp.AddLink(href, "update", http.MethodPut)
	resp.AddLink(href, "delete", http.MethodDelete)
}
