package controllers

import (
	"net/http"

	"nextparkapi/pkg/logger"
	"nextparkapi/services"
	"nextparkapi/utils"

	"github.com/gin-gonic/gin"
)

var authSrv services.AuthService

// SetAuthService initializes the authentication service instance.
// Used for dependency injection in tests to provide mock implementations.
func SetAuthService(s services.AuthService) {
	authSrv = s
}

// RegisterRequest is the payload for user registration.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest is the payload for credential verification.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register creates a user account
// @Summary Register user
// @Description Registers a new user and stores the hashed credential in one transaction
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{} "User registered"
// @Failure 400 {object} map[string]string "Invalid payload"
// @Failure 409 {object} map[string]string "E-mail already registered"
// @Router /api/auth/register [post]
func register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	usuario, err := authSrv.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, gin.H{
		"message":   "user registered successfully",
		"usuarioId": usuario.IdUsuario,
		"email":     usuario.NrEmail,
	})
}

// Login verifies user credentials
// @Summary Login
// @Description Verifies the credential for an existing user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{} "Login succeeded"
// @Failure 400 {object} map[string]string "Invalid payload"
// @Failure 401 {object} map[string]string "Unknown e-mail or wrong password"
// @Router /api/auth/login [post]
func login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	loginRow, err := authSrv.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Never hint at which of e-mail/password was wrong.
		respondError(c, err)
		return
	}
	logger.Debugf("User %d logged in", loginRow.IdUsuario)

	utils.JSONResponse(c, http.StatusOK, gin.H{
		"message":   "login successful",
		"usuarioId": loginRow.IdUsuario,
		"email":     loginRow.NrEmail,
	})
}

// RegisterAuthRoutes registers HTTP endpoints for registration and login.
func RegisterAuthRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", register)
		auth.POST("/login", login)
	}
}
