package service

import (
	"context"
	"fmt"
	"time"

	"github.com/02priyeshraj/Table_Ordering_Backend/helper"
	"github.com/02priyeshraj/Table_Ordering_Backend/models"
)

type Dashboard struct {
	Overview struct {
		TotalOrders       int64   `json:"totalOrders"`
		TotalRevenue      float64 `json:"totalRevenue"`
		AverageOrderValue float64 `json:"averageOrderValue"`
	} `json:"overview"`
	Today struct {
		Orders  int64   `json:"orders"`
		Revenue float64 `json:"revenue"`
	} `json:"today"`
	StatusBreakdown map[string]int64     `json:"statusBreakdown"`
	PopularItems    []models.PopularItem `json:"popularItems"`
	RecentOrders    []RecentOrder        `json:"recentOrders"`
}

type RecentOrder struct {
	OrderNumber string    `json:"orderNumber"`
	TableNumber int       `json:"tableNumber"`
	Total       float64   `json:"total"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type AnalyticsService struct {
	orders OrderRepository
	now    func() time.Time
}

func NewAnalyticsService(orders OrderRepository) *AnalyticsService {
	return &AnalyticsService{orders: orders, now: time.Now}
}

func (s *AnalyticsService) Dashboard(ctx context.Context) (Dashboard, error) {
	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	stats, err := s.orders.Stats(ctx, dayStart, dayEnd)
	if err != nil {
		return Dashboard{}, fmt.Errorf("order stats: %w", err)
	}

	var d Dashboard
	d.Overview.TotalOrders = stats.TotalOrders
	d.Overview.TotalRevenue = helper.Round2(stats.TotalRevenue)
	d.Overview.AverageOrderValue = helper.Round2(stats.AverageOrder)
	d.Today.Orders = stats.TodayOrders
	d.Today.Revenue = helper.Round2(stats.TodayRevenue)

	d.StatusBreakdown = stats.StatusBreakdown
	if d.StatusBreakdown == nil {
		d.StatusBreakdown = map[string]int64{}
	}

	d.PopularItems = make([]models.PopularItem, 0, len(stats.PopularItems))
	for _, p := range stats.PopularItems {
		p.Revenue = helper.Round2(p.Revenue)
		d.PopularItems = append(d.PopularItems, p)
	}

	d.RecentOrders = make([]RecentOrder, 0, len(stats.RecentOrders))
	for _, o := range stats.RecentOrders {
		d.RecentOrders = append(d.RecentOrders, RecentOrder{
			OrderNumber: o.OrderNumber,
			TableNumber: o.TableNumber,
			Total:       o.Total,
			Status:      o.Status,
			CreatedAt:   o.Created_at,
		})
	}
	return d, nil
}
