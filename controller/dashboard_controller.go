package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krishnateja08/FII-DII-Pulse/customerrors"
	"github.com/krishnateja08/FII-DII-Pulse/model"
	"github.com/krishnateja08/FII-DII-Pulse/service"
)

type DashboardController struct {
	dashboardService service.DashboardService
}

func NewDashboardController(ds service.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: ds,
	}
}

// RegisterRoutes sets up the route group for the enriched dataset the
// reporting layer consumes.
func (ctrl *DashboardController) RegisterRoutes(router *gin.RouterGroup) {
	dashboardGroup := router.Group("/dashboard")
	{
		dashboardGroup.GET("", ctrl.GetDashboard)
		dashboardGroup.POST("/refresh", ctrl.Refresh)
		dashboardGroup.GET("/history/latest", ctrl.LatestRun)
		dashboardGroup.GET("/history/:date", ctrl.HistoryByDate)
	}
}

// GetDashboard returns the current run's enriched stocks plus market
// summary, building one if nothing is cached.
func (ctrl *DashboardController) GetDashboard(c *gin.Context) {
	snapshot, err := ctrl.dashboardService.GetDashboard(c.Request.Context())
	if err != nil {
		ctrl.handleError(c, "Failed to build dashboard", err)
		return
	}
	ctrl.handleSuccess(c, "Dashboard ready", snapshot)
}

// Refresh forces a full pipeline run, bypassing the cached snapshot.
func (ctrl *DashboardController) Refresh(c *gin.Context) {
	snapshot, err := ctrl.dashboardService.Refresh(c.Request.Context())
	if err != nil {
		ctrl.handleError(c, "Failed to refresh dashboard", err)
		return
	}
	ctrl.handleSuccess(c, "Dashboard refreshed", snapshot)
}

// HistoryByDate returns the persisted run for an ISO date (YYYY-MM-DD).
func (ctrl *DashboardController) HistoryByDate(c *gin.Context) {
	snapshot, err := ctrl.dashboardService.HistoryByDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		if errors.Is(err, customerrors.ErrSnapshotNotFound) {
			ctrl.handleNotFound(c, "No run recorded for that date")
			return
		}
		ctrl.handleError(c, "Failed to load run history", err)
		return
	}
	ctrl.handleSuccess(c, "Run history", snapshot)
}

// LatestRun returns the most recently persisted run.
func (ctrl *DashboardController) LatestRun(c *gin.Context) {
	snapshot, err := ctrl.dashboardService.LatestRun(c.Request.Context())
	if err != nil {
		if errors.Is(err, customerrors.ErrSnapshotNotFound) {
			ctrl.handleNotFound(c, "No runs recorded yet")
			return
		}
		ctrl.handleError(c, "Failed to load latest run", err)
		return
	}
	ctrl.handleSuccess(c, "Latest run", snapshot)
}

func (ctrl *DashboardController) handleNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, model.Response{
		Success: false,
		Message: message,
	})
}

func (ctrl *DashboardController) handleSuccess(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, model.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func (ctrl *DashboardController) handleError(c *gin.Context, message string, err error) {
	c.JSON(http.StatusInternalServerError, model.Response{
		Success: false,
		Message: message,
		Error:   err.Error(),
	})
}
