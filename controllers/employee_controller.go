package controllers

import (
	"strconv"

	"github.com/NabeelAltarteer/GetEmpStatusBE/errors"
	"github.com/NabeelAltarteer/GetEmpStatusBE/response"
	"github.com/NabeelAltarteer/GetEmpStatusBE/services"

	"github.com/gin-gonic/gin"
)

type EmployeeController struct {
	statusService *services.EmployeeStatusService
	searchService *services.SearchService
}

func NewEmployeeController(statusService *services.EmployeeStatusService, searchService *services.SearchService) EmployeeController {
	return EmployeeController{
		statusService: statusService,
		searchService: searchService,
	}
}

// GetEmployeeStatus godoc
// @Summary      Computed compensation status for one employee
// @Description  Cache-aside lookup followed by the salary adjustment and tax pipeline
// @Tags         employees
// @Param        nationalKey  path  string  true  "National key (3 letters + 4 digits)"
// @Success      200  {object}  response.Response{data=dto.EmployeeStatusResponse}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /employees/{nationalKey}/status [get]
func (ctrl EmployeeController) GetEmployeeStatus(c *gin.Context) {
	nationalKey := c.Param("nationalKey")

	status, err := ctrl.statusService.GetEmployeeStatus(c.Request.Context(), nationalKey)
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.Error(c, appErr)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, status)
}

// SearchEmployees godoc
// @Summary      Fuzzy employee directory search
// @Tags         employees
// @Param        q      query  string  true   "Search query"
// @Param        limit  query  int     false  "Max results (default 10)"
// @Success      200  {object}  response.Response{data=[]dto.EmployeeSearchResult}
// @Router       /employees/search [get]
func (ctrl EmployeeController) SearchEmployees(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Query parameter q is required")
		return
	}

	limit := 10
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	results, err := ctrl.searchService.SearchEmployees(c.Request.Context(), query, limit)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, results)
}
