package service

import (
	"context"
	"time"

	"tridash/internal/domain"
	"tridash/internal/redis"
	"tridash/internal/repository"
	"tridash/internal/stats"
)

// DashboardService assembles the aggregate figures the dashboard displays.
//
// It owns the fetch lifecycle: each call pulls a fresh snapshot of rows and
// hands them to the pure aggregators in internal/stats. Nothing is memoized
// in-process; the only cache is the short-lived Redis snapshot.
type DashboardService struct {
	rideRepo    repository.RideRepository
	paymentRepo repository.PaymentRepository
	driverRepo  repository.DriverRepository
	cacheStore  redis.CacheStoreInterface

	windowDays      int
	movingAvgWindow int
}

// NewDashboardService creates a new DashboardService. cacheStore may be nil,
// in which case every call re-aggregates.
func NewDashboardService(
	rideRepo repository.RideRepository,
	paymentRepo repository.PaymentRepository,
	driverRepo repository.DriverRepository,
	cacheStore redis.CacheStoreInterface,
	windowDays int,
	movingAvgWindow int,
) *DashboardService {
	if windowDays <= 0 {
		windowDays = 7
	}
	if movingAvgWindow <= 0 {
		movingAvgWindow = 3
	}
	return &DashboardService{
		rideRepo:        rideRepo,
		paymentRepo:     paymentRepo,
		driverRepo:      driverRepo,
		cacheStore:      cacheStore,
		windowDays:      windowDays,
		movingAvgWindow: movingAvgWindow,
	}
}

// Overview is the dashboard's headline snapshot.
type Overview struct {
	GeneratedAt time.Time          `json:"generated_at"`
	WindowDays  int                `json:"window_days"`
	Rides       stats.RideStats    `json:"rides"`
	Payments    stats.PaymentStats `json:"payments"`
	Drivers     stats.DriverStats  `json:"drivers"`
}

// Trends is the dashboard's per-day series for the chart widgets.
type Trends struct {
	GeneratedAt  time.Time `json:"generated_at"`
	WindowDays   int       `json:"window_days"`
	Labels       []string  `json:"labels"`
	RideCounts   []int     `json:"ride_counts"`
	Revenue      []float64 `json:"revenue"`
	RevenueTrend []float64 `json:"revenue_trend"` // moving average over Revenue
}

// GetOverview returns the dashboard overview, served from the Redis snapshot
// when fresh.
func (s *DashboardService) GetOverview(ctx context.Context) (*Overview, error) {
	if s.cacheStore != nil {
		var cached Overview
		if ok, err := s.cacheStore.GetOverview(ctx, &cached); err == nil && ok {
			return &cached, nil
		}
	}

	now := time.Now().UTC()
	since := now.AddDate(0, 0, -s.windowDays)

	rides, err := s.rideRepo.GetCreatedSince(ctx, since)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.GetCreatedSince(ctx, since)
	if err != nil {
		return nil, err
	}
	drivers, err := s.driverRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	overview := &Overview{
		GeneratedAt: now,
		WindowDays:  s.windowDays,
		Rides:       stats.AggregateRides(deref(rides)),
		Payments:    stats.AggregatePayments(deref(payments)),
		Drivers:     stats.AggregateDrivers(deref(drivers)),
	}

	if s.cacheStore != nil {
		_ = s.cacheStore.SetOverview(ctx, overview)
	}
	return overview, nil
}

// GetTrends returns per-day ride counts and revenue for the last windowDays
// days, with a moving average over the revenue series. windowDays <= 0 falls
// back to the configured window.
func (s *DashboardService) GetTrends(ctx context.Context, windowDays int) (*Trends, error) {
	if windowDays <= 0 {
		windowDays = s.windowDays
	}

	if s.cacheStore != nil {
		var cached Trends
		if ok, err := s.cacheStore.GetTrends(ctx, windowDays, &cached); err == nil && ok {
			return &cached, nil
		}
	}

	now := time.Now().UTC()
	since := now.AddDate(0, 0, -windowDays)

	rides, err := s.rideRepo.GetCreatedSince(ctx, since)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.GetCreatedSince(ctx, since)
	if err != nil {
		return nil, err
	}

	rideTimes := make([]time.Time, 0, len(rides))
	for _, r := range rides {
		rideTimes = append(rideTimes, r.CreatedAt)
	}

	// Revenue counts successful payments only.
	payTimes := make([]time.Time, 0, len(payments))
	payAmounts := make([]float64, 0, len(payments))
	for _, p := range payments {
		if stats.NormalizeStatus(string(p.Status)) != domain.PaymentStatusSuccess {
			continue
		}
		payTimes = append(payTimes, p.CreatedAt)
		payAmounts = append(payAmounts, p.Amount)
	}

	revenue := stats.SumByDay(payTimes, payAmounts, windowDays, now)
	trends := &Trends{
		GeneratedAt:  now,
		WindowDays:   windowDays,
		Labels:       stats.DayLabels(windowDays, now),
		RideCounts:   stats.BucketByDay(rideTimes, windowDays, now),
		Revenue:      revenue,
		RevenueTrend: stats.MovingAverage(revenue, s.movingAvgWindow),
	}

	if s.cacheStore != nil {
		_ = s.cacheStore.SetTrends(ctx, windowDays, trends)
	}
	return trends, nil
}

// deref copies a slice of pointers into a slice of values for the aggregators.
func deref[T any](in []*T) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if v != nil {
			out = append(out, *v)
		}
	}
	return out
}
