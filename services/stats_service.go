package services

import (
	"homechef-api/lifecycle"
	"homechef-api/models"
	"homechef-api/store"

	"github.com/shopspring/decimal"
)

// StatsService aggregates the admin dashboard numbers.
type StatsService struct {
	Store *store.Store
}

type PlatformStats struct {
	Users          int64                      `json:"users"`
	Meals          int64                      `json:"meals"`
	OrdersByStatus map[string]int64           `json:"orders_by_status"`
	MonthlyRevenue map[string]decimal.Decimal `json:"monthly_revenue"` // paid orders, keyed YYYY-MM
	Refunded       int64                      `json:"refunded"`
}

func (s *StatsService) Platform(actor lifecycle.Actor) (*PlatformStats, error) {
	if actor.Role != models.RoleAdmin {
		return nil, lifecycle.ErrForbidden()
	}
	users, err := s.Store.CountUsers()
	if err != nil {
		return nil, err
	}
	meals, err := s.Store.CountMeals()
	if err != nil {
		return nil, err
	}
	byStatus, err := s.Store.OrderStatusCounts()
	if err != nil {
		return nil, err
	}
	revenue, err := s.Store.MonthlyPaidTotals()
	if err != nil {
		return nil, err
	}
	refunded, err := s.Store.CountRefundedOrders()
	if err != nil {
		return nil, err
	}
	return &PlatformStats{
		Users:          users,
		Meals:          meals,
		OrdersByStatus: byStatus,
		MonthlyRevenue: revenue,
		Refunded:       refunded,
	}, nil
}
