package controller

import (
	"net/http"

	service "github.com/02priyeshraj/Table_Ordering_Backend/services"
)

type AnalyticsController struct {
	analytics *service.AnalyticsService
}

func NewAnalyticsController(analytics *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analytics: analytics}
}

func (c *AnalyticsController) Dashboard(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := withTimeout(r)
	defer cancel()

	dashboard, err := c.analytics.Dashboard(ctx)
	if err != nil {
		return err
	}
	return respond(w, http.StatusOK, map[string]interface{}{"data": dashboard})
}
