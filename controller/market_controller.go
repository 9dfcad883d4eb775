package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/krishnateja08/FII-DII-Pulse/model"
	"github.com/krishnateja08/FII-DII-Pulse/service"
	"github.com/krishnateja08/FII-DII-Pulse/util"
)

type MarketController struct {
	marketService service.MarketService
	calendar      *util.TradingCalendar
}

func NewMarketController(ms service.MarketService, calendar *util.TradingCalendar) *MarketController {
	return &MarketController{
		marketService: ms,
		calendar:      calendar,
	}
}

func (ctrl *MarketController) RegisterRoutes(router *gin.RouterGroup) {
	marketGroup := router.Group("/market")
	{
		marketGroup.GET("/summary", ctrl.GetSummary)
		marketGroup.GET("/window", ctrl.GetWindow)
	}
}

// GetSummary returns the benchmark index readings.
func (ctrl *MarketController) GetSummary(c *gin.Context) {
	summary := ctrl.marketService.FetchMarketSummary(c.Request.Context())
	c.JSON(http.StatusOK, model.Response{
		Success: true,
		Message: "Fetch Success",
		Data:    summary,
	})
}

// GetWindow returns the disclosure window the next run would query.
func (ctrl *MarketController) GetWindow(c *gin.Context) {
	from, to, err := ctrl.calendar.CurrentWindow(time.Now())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, model.Response{
			Success: false,
			Message: "No trading window available",
			Error:   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, model.Response{
		Success: true,
		Message: "Fetch Success",
		Data: gin.H{
			"from":  util.FormatNseDate(from),
			"to":    util.FormatNseDate(to),
			"label": util.WindowLabel(from, to),
		},
	})
}
