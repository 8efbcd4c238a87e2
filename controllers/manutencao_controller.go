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

const manutencaoBasePath = "/api/Manutencao"

var manutencaoSrv services.ManutencaoService

// SetManutencaoService initializes the maintenance record service instance.
// Used for dependency injection in tests to provide mock implementations.
func SetManutencaoService(s services.ManutencaoService) {
	manutencaoSrv = s
}

// GetManutencoes lists maintenance records with pagination
// @Summary List maintenance records
// @Description Returns a page of maintenance records ordered by identifier
// @Tags Manutencao
// @Produce json
// @Param pageNumber query int false "Page number (starts at 1)"
// @Param pageSize query int false "Records per page"
// @Success 200 {object} models.PagedResponse "Page of maintenance records with navigation links"
// @Failure 400 {object} map[string]string "Invalid pagination parameters"
// @Router /api/Manutencao [get]
func getManutencoes(c *gin.Context) {
	pageNumber, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	manutencoes, total, err := manutencaoSrv.GetPage(c.Request.Context(), pageNumber, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := models.NewPagedResponse(manutencoes, total, pageNumber, pageSize)
	addCollectionLinks(resp, manutencaoBasePath, pageNumber, pageSize)
	utils.JSONResponse(c, http.StatusOK, resp)
}

// GetManutencao fetches one maintenance record
// @Summary Get maintenance record
// @Description Fetches a maintenance record by identifier with HATEOAS links
// @Tags Manutencao
// @Produce json
// @Param id path int true "Maintenance record ID"
// @Success 200 {object} models.ResourceResponse "Maintenance record with navigation links"
// @Failure 404 "Maintenance record not found"
// @Router /api/Manutencao/{id} [get]
func getManutencao(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	manutencao, err := manutencaoSrv.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := models.NewResourceResponse(manutencao)
	addResourceLinks(resp, manutencaoBasePath, manutencao.IdManutencao)
	utils.JSONResponse(c, http.StatusOK, resp)
}

// CreateManutencao registers a maintenance record
// @Summary Register maintenance record
// @Description Registers a new maintenance record linked to an existing motorcycle
// @Tags Manutencao
// @Accept json
// @Produce json
// @Param manutencao body models.Manutencao true "Maintenance record data"
// @Success 201 {object} models.ResourceResponse "Created maintenance record"
// @Failure 400 {object} map[string]string "Invalid payload or unknown motorcycle"
// @Router /api/Manutencao [post]
func createManutencao(c *gin.Context) {
	var manutencao models.Manutencao
	if err := c.ShouldBindJSON(&manutencao); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	if err := utils.ValidateStruct(&manutencao); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	created, err := manutencaoSrv.Create(c.Request.Context(), &manutencao)
	if err != nil {
		logger.Errorf("Failed to create manutencao for moto %d: %v", manutencao.IdMoto, err)
		respondError(c, err)
		return
	}
	logger.Infof("Created manutencao %d for moto %d", created.IdManutencao, created.IdMoto)

	resp := models.NewResourceResponse(created)
	addResourceLinks(resp, manutencaoBasePath, created.IdManutencao)
	c.Header("Location", fmt.Sprintf("%s/%d", manutencaoBasePath, created.IdManutencao))
	utils.JSONResponse(c, http.StatusCreated, resp)
}

// UpdateManutencao replaces a maintenance record
// @Summary Update maintenance record
// @Description Fully updates an existing maintenance record
// @Tags Manutencao
// @Accept json
// @Param id path int true "Maintenance record ID"
// @Param manutencao body models.Manutencao true "Updated maintenance record data"
// @Success 204 "Updated"
// @Failure 400 {object} map[string]string "ID mismatch or unknown motorcycle"
// @Failure 404 "Maintenance record not found"
// @Router /api/Manutencao/{id} [put]
func updateManutencao(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var manutencao models.Manutencao
	if err := c.ShouldBindJSON(&manutencao); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	if err := utils.ValidateStruct(&manutencao); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	if err := manutencaoSrv.Update(c.Request.Context(), id, &manutencao); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteManutencao removes a maintenance record
// @Summary Delete maintenance record
// @Description Removes a maintenance record by identifier
// @Tags Manutencao
// @Param id path int true "Maintenance record ID"
// @Success 204 "Deleted"
// @Failure 404 "Maintenance record not found"
// @Router /api/Manutencao/{id} [delete]
func deleteManutencao(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := manutencaoSrv.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterManutencaoRoutes registers HTTP endpoints for maintenance record operations.
func RegisterManutencaoRoutes(rg *gin.RouterGroup) {
	manutencao := rg.Group("/Manutencao")
	{
		manutencao.GET("", getManutencoes)
		manutencao.GET("/:id", getManutencao)
		manutencao.POST("", createManutencao)
		manutencao.PUT("/:id", updateManutencao)
		manutencao.DELETE("/:id", deleteManutencao)
	}
}
