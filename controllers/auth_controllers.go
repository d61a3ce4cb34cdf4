package controllers

import (
	"github.com/NabeelAltarteer/GetEmpStatusBE/dto"
	"github.com/NabeelAltarteer/GetEmpStatusBE/errors"
	"github.com/NabeelAltarteer/GetEmpStatusBE/response"
	"github.com/NabeelAltarteer/GetEmpStatusBE/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController(authService *services.AuthService) AuthController {
	return AuthController{authService: authService}
}

// Login godoc
// @Summary      Ops login, returns a bearer token
// @Tags         auth
// @Param        request  body  dto.LoginRequest  true  "Credentials"
// @Success      200  {object}  response.Response{data=dto.LoginResponse}
// @Failure      401  {object}  response.Response
// @Router       /auth/login [post]
func (ctrl AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Email and password are required")
		return
	}

	token, err := ctrl.authService.Login(req.Email, req.Password)
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.Error(c, appErr)
			return
		}
		response.Unauthorized(c)
		return
	}

	response.Success(c, dto.LoginResponse{Token: token})
}
