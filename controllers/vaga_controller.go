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

const vagaBasePath = "/api/Vaga"

var vagaSrv services.VagaService

// SetVagaService initializes the parking spot service instance.
// Used for dependency injection in tests to provide mock implementations.
func SetVagaService(s services.VagaService) {
	vagaSrv = s
}

// GetVagas lists parking spots with pagination
// @Summary List parking spots
// @Description Returns a page of parking spots ordered by identifier
// @Tags Vaga
// @Produce json
// @Param pageNumber query int false "Page number (starts at 1)"
// @Param pageSize query int false "Records per page"
// @Success 200 {object} models.PagedResponse "Page of parking spots with navigation links"
// @Failure 400 {object} map[string]string "Invalid pagination parameters"
// @Router /api/Vaga [get]
func getVagas(c *gin.Context) {
	pageNumber, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	vagas, total, err := vagaSrv.GetPage(c.Request.Context(), pageNumber, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := models.NewPagedResponse(vagas, total, pageNumber, pageSize)
	addCollectionLinks(resp, vagaBasePath, pageNumber, pageSize)
	utils.JSONResponse(c, http.StatusOK, resp)
}

// GetVaga fetches one parking spot
// @Summary Get parking spot
// @Description Fetches a parking spot by identifier with HATEOAS links
// @Tags Vaga
// @Produce json
// @Param id path int true "Parking spot ID"
// @Success 200 {object} models.ResourceResponse "Parking spot with navigation links"
// @Failure 404 "Parking spot not found"
// @Router /api/Vaga/{id} [get]
func getVaga(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	vaga, err := vagaSrv.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := models.NewResourceResponse(vaga)
	addResourceLinks(resp, vagaBasePath, vaga.IdVaga)
	utils.JSONResponse(c, http.StatusOK, resp)
}

// CreateVaga registers a parking spot
// @Summary Register parking spot
// @Description Registers a new parking spot in a lot
// @Tags Vaga
// @Accept json
// @Produce json
// @Param vaga body models.Vaga true "Parking spot data"
// @Success 201 {object} models.ResourceResponse "Created parking spot"
// @Failure 400 {object} map[string]string "Invalid payload"
// @Router /api/Vaga [post]
func createVaga(c *gin.Context) {
	var vaga models.Vaga
	if err := c.ShouldBindJSON(&vaga); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	if err := utils.ValidateStruct(&vaga); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	created, err := vagaSrv.Create(c.Request.Context(), &vaga)
	if err != nil {
		logger.Errorf("Failed to create vaga in area %s: %v", vaga.AreaVaga, err)
		respondError(c, err)
		return
	}
	logger.Infof("Created vaga with ID %d", created.IdVaga)

	resp := models.NewResourceResponse(created)
	addResourceLinks(resp, vagaBasePath, created.IdVaga)
	c.Header("Location", fmt.Sprintf("%s/%d", vagaBasePath, created.IdVaga))
	utils.JSONResponse(c, http.StatusCreated, resp)
}

// UpdateVaga replaces a parking spot
// @Summary Update parking spot
// @Description Fully updates an existing parking spot
// @Tags Vaga
// @Accept json
// @Param id path int true "Parking spot ID"
// @Param vaga body models.Vaga true "Updated parking spot data"
// @Success 204 "Updated"
// @Failure 400 {object} map[string]string "ID mismatch"
// @Failure 404 "Parking spot not found"
// @Router /api/Vaga/{id} [put]
func updateVaga(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var vaga models.Vaga
	if err := c.ShouldBindJSON(&vaga); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	if err := utils.ValidateStruct(&vaga); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	if err := vagaSrv.Update(c.Request.Context(), id, &vaga); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteVaga removes a parking spot
// @Summary Delete parking spot
// @Description Removes a parking spot by identifier
// @Tags Vaga
// @Param id path int true "Parking spot ID"
// @Success 204 "Deleted"
// @Failure 404 "Parking spot not found"
// @Router /api/Vaga/{id} [delete]
func deleteVaga(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := vagaSrv.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterVagaRoutes registers HTTP endpoints for parking spot operations.
func RegisterVagaRoutes(rg *gin.RouterGroup) {
	vaga := rg.Group("/Vaga")
	{
		vaga.GET("", getVagas)
		vaga.GET("/:id", getVaga)
		vaga.POST("", createVaga)
		vaga.PUT("/:id", updateVaga)
		vaga.DELETE("/:id", deleteVaga)
	}
}
