package controllers

import (
	"github.com/NabeelAltarteer/GetEmpStatusBE/errors"
	"github.com/NabeelAltarteer/GetEmpStatusBE/response"
	"github.com/NabeelAltarteer/GetEmpStatusBE/services"

	"github.com/gin-gonic/gin"
)

type CacheController struct {
	statusService *services.EmployeeStatusService
}

func NewCacheController(statusService *services.EmployeeStatusService) CacheController {
	return CacheController{statusService: statusService}
}

// InvalidateAll godoc
// @Summary      Drop every cached employee status
// @Tags         cache
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /cache/employees [delete]
func (ctrl CacheController) InvalidateAll(c *gin.Context) {
	deleted := ctrl.statusService.InvalidateAll(c.Request.Context())
	response.Success(c, gin.H{"deleted": deleted})
}

// InvalidateEmployee godoc
// @Summary      Drop the cached status for one national key
// @Tags         cache
// @Security     BearerAuth
// @Param        nationalKey  path  string  true  "National key"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /cache/employees/{nationalKey} [delete]
func (ctrl CacheController) InvalidateEmployee(c *gin.Context) {
	nationalKey := c.Param("nationalKey")
	if err := ctrl.statusService.InvalidateEmployee(c.Request.Context(), nationalKey); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.Error(c, appErr)
			return
		}
		response.ServerError(c)
		return
	}
	response.Success(c, nil)
}
