package controllers

import (
	"fmt"
	"net/http"

	"nextparkapi/models"
	"nextparkapi/pkg/logger"
	"nextparkapi/services"
	"nextparkapi/utils"

	"github.com/gin-gonic/gin"
)

const motoBasePath = "/api/Moto"

var motoSrv services.MotoService

// SetMotoService initializes the motorcycle service instance.
// Used for dependency injection in tests to provide mock implementations.
func SetMotoService(s services.MotoService) {
	motoSrv = s
}

// GetMotos lists motorcycles with pagination
// @Summary List motorcycles
// @Description Returns a page of registered motorcycles ordered by identifier
// @Tags Moto
// @Produce json
// @Param pageNumber query int false "Page number (starts at 1)"
// @Param pageSize query int false "Records per page"
// @Success 200 {object} models.PagedResponse "Page of motorcycles with navigation links"
// @Failure 400 {object} map[string]string "Invalid pagination parameters"
// @Router /api/Moto [get]
func getMotos(c *gin.Context) {
	pageNumber, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	motos, total, err := motoSrv.GetPage(c.Request.Context(), pageNumber, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := models.NewPagedResponse(motos, total, pageNumber, pageSize)
	addCollectionLinks(resp, motoBasePath, pageNumber, pageSize)
	utils.JSONResponse(c, http.StatusOK, resp)
}

// GetMoto fetches one motorcycle
// @Summary Get motorcycle
// @Description Fetches a motorcycle by identifier with HATEOAS links
// @Tags Moto
// @Produce json
// @Param id path int true "Motorcycle ID"
// @Success 200 {object} models.ResourceResponse "Motorcycle with navigation links"
// @Failure 404 "Motorcycle not found"
// @Router /api/Moto/{id} [get]
func getMoto(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	moto, err := motoSrv.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := models.NewResourceResponse(moto)
	addResourceLinks(resp, motoBasePath, moto.IdMoto)
	utils.JSONResponse(c, http.StatusOK, resp)
}

// CreateMoto registers a motorcycle
// @Summary Register motorcycle
// @Description Registers a new motorcycle parked in an existing spot
// @Tags Moto
// @Accept json
// @Produce json
// @Param moto body models.Moto true "Motorcycle data"
// @Success 201 {object} models.ResourceResponse "Created motorcycle"
// @Failure 400 {object} map[string]string "Invalid payload or unknown spot"
// @Router /api/Moto [post]
func createMoto(c *gin.Context) {
	var moto models.Moto
	if err := c.ShouldBindJSON(&moto); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	if err := utils.ValidateStruct(&moto); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	created, err := motoSrv.Create(c.Request.Context(), &moto)
	if err != nil {
		logger.Errorf("Failed to create moto %s: %v", moto.NrPlaca, err)
		respondError(c, err)
		return
	}
	logger.Infof("Created moto %s with ID %d", created.NrPlaca, created.IdMoto)

	resp := models.NewResourceResponse(created)
	addResourceLinks(resp, motoBasePath, created.IdMoto)
	c.Header("Location", fmt.Sprintf("%s/%d", motoBasePath, created.IdMoto))
	utils.JSONResponse(c, http.StatusCreated, resp)
}

// UpdateMoto replaces a motorcycle
// @Summary Update motorcycle
// @Description Fully updates an existing motorcycle
// @Tags Moto
// @Accept json
// @Param id path int true "Motorcycle ID"
// @Param moto body models.Moto true "Updated motorcycle data"
// @Success 204 "Updated"
// @Failure 400 {object} map[string]string "ID mismatch or unknown spot"
// @Failure 404 "Motorcycle not found"
// @Router /api/Moto/{id} [put]
func updateMoto(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var moto models.Moto
	if err := c.ShouldBindJSON(&moto); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	if err := utils.ValidateStruct(&moto); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	if err := motoSrv.Update(c.Request.Context(), id, &moto); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteMoto removes a motorcycle
// @Summary Delete motorcycle
// @Description Removes a motorcycle by identifier
// @Tags Moto
// @Param id path int true "Motorcycle ID"
// @Success 204 "Deleted"
// @Failure 404 "Motorcycle not found"
// @Router /api/Moto/{id} [delete]
func deleteMoto(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := motoSrv.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterMotoRoutes registers HTTP endpoints for motorcycle operations.
func RegisterMotoRoutes(rg *gin.RouterGroup) {
	moto := rg.Group("/Moto")
	{
		moto.GET("", getMotos)
		moto.GET("/:id", getMoto)
		moto.POST("", createMoto)
		moto.PUT("/:id", updateMoto)
		moto.DELETE("/:id", deleteMoto)
	}
}
