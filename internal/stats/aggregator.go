// Package stats reduces collections of rides, payments, drivers and profiles
// into the summary figures the dashboard displays.
//
// Every function here is pure and total: no I/O, no mutation of inputs, and
// empty or malformed collections yield zero-valued results instead of errors.
package stats

import (
	"math"
	"strings"
	"time"

	"tridash/internal/domain"
)

// RideStats summarizes a collection of rides.
type RideStats struct {
	Total            int     `json:"total"`
	Active           int     `json:"active"`
	Completed        int     `json:"completed"`
	Cancelled        int     `json:"cancelled"`
	CompletionRate   float64 `json:"completion_rate"`
	CancellationRate float64 `json:"cancellation_rate"`
	AverageFare      float64 `json:"average_fare"`
}

// AggregateRides reduces rides into summary counts and rates.
//
// Completion rate excludes cancelled rides from its denominator: it measures
// how many rides that were not cancelled actually finished.
func AggregateRides(rides []domain.Ride) RideStats {
	var s RideStats
	s.Total = len(rides)

	var fareSum float64
	for _, r := range rides {
		switch {
		case r.Status.IsActive():
			s.Active++
		case r.Status.IsTerminal():
			s.Completed++
			fareSum += r.ChargedAmount()
		case r.Status == domain.RideStatusCancelled:
			s.Cancelled++
		}
	}

	if denom := s.Total - s.Cancelled; denom > 0 {
		s.CompletionRate = round2(float64(s.Completed) / float64(denom) * 100)
	}
	if s.Total > 0 {
		s.CancellationRate = round2(float64(s.Cancelled) / float64(s.Total) * 100)
	}
	if s.Completed > 0 {
		s.AverageFare = round2(fareSum / float64(s.Completed))
	}
	return s
}

// PaymentStats summarizes a collection of payments.
//
// Monetary sums cover successful payments only; the status counters cover the
// full input set with alias-aware normalization.
type PaymentStats struct {
	TotalAmount       float64 `json:"total_amount"`
	TotalCommission   float64 `json:"total_commission"`
	TotalEarnings     float64 `json:"total_earnings"`
	PassengerPayments float64 `json:"passenger_payments"`
	DriverPayouts     float64 `json:"driver_payouts"`

	SuccessCount  int `json:"success_count"`
	PendingCount  int `json:"pending_count"`
	FailedCount   int `json:"failed_count"`
	RefundedCount int `json:"refunded_count"`
	DisputedCount int `json:"disputed_count"`
	OtherCount    int `json:"other_count"`
}

// AggregatePayments reduces payments into monetary sums and status counts.
func AggregatePayments(payments []domain.Payment) PaymentStats {
	var s PaymentStats
	for _, p := range payments {
		status := NormalizeStatus(string(p.Status))

		switch status {
		case domain.PaymentStatusSuccess:
			s.SuccessCount++
		case domain.PaymentStatusPending:
			s.PendingCount++
		case domain.PaymentStatusFailed:
			s.FailedCount++
		case domain.PaymentStatusRefunded:
			s.RefundedCount++
		case domain.PaymentStatusDisputed:
			s.DisputedCount++
		default:
			s.OtherCount++
		}

		if status != domain.PaymentStatusSuccess {
			continue
		}
		s.TotalAmount += p.Amount
		s.TotalCommission += p.Commission
		s.TotalEarnings += p.EarningsAmount()
		switch p.PaymentType {
		case domain.PaymentTypeRidePayment:
			s.PassengerPayments += p.Amount
		case domain.PaymentTypeDriverPayout:
			s.DriverPayouts += p.Amount
		}
	}

	s.TotalAmount = round2(s.TotalAmount)
	s.TotalCommission = round2(s.TotalCommission)
	s.TotalEarnings = round2(s.TotalEarnings)
	s.PassengerPayments = round2(s.PassengerPayments)
	s.DriverPayouts = round2(s.DriverPayouts)
	return s
}

// NormalizeStatus folds raw status strings into the canonical payment
// statuses. Matching is case-insensitive and alias-aware; unknown values
// are returned unchanged so callers can bucket them as "other".
func NormalizeStatus(raw string) domain.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "success", "succeeded", "completed", "paid":
		return domain.PaymentStatusSuccess
	case "pending", "processing":
		return domain.PaymentStatusPending
	case "failed", "declined", "cancelled":
		return domain.PaymentStatusFailed
	case "refunded", "partially_refunded":
		return domain.PaymentStatusRefunded
	case "disputed", "charged_back":
		return domain.PaymentStatusDisputed
	}
	return domain.PaymentStatus(raw)
}

// DriverStats summarizes a collection of drivers.
type DriverStats struct {
	Total         int     `json:"total"`
	Verified      int     `json:"verified"`
	Pending       int     `json:"pending"`
	Rejected      int     `json:"rejected"`
	Suspended     int     `json:"suspended"`
	Online        int     `json:"online"`
	AverageRating float64 `json:"average_rating"`
}

// AggregateDrivers reduces drivers into disposition counts.
//
// Suspension overrides approval: a driver with approved=true and
// suspended=true counts as suspended, not verified, and is never counted
// online while suspended.
func AggregateDrivers(drivers []domain.Driver) DriverStats {
	var s DriverStats
	s.Total = len(drivers)

	var ratingSum float64
	var rated int
	for _, d := range drivers {
		switch {
		case d.Suspended:
			s.Suspended++
		case d.IsVerified():
			s.Verified++
		case d.Rejected || d.VerificationStatus == domain.VerificationRejected:
			s.Rejected++
		default:
			s.Pending++
		}

		if d.Online && !d.Suspended {
			s.Online++
		}
		if d.Rating > 0 {
			ratingSum += d.Rating
			rated++
		}
	}

	if rated > 0 {
		s.AverageRating = round2(ratingSum / float64(rated))
	}
	return s
}

// BucketByDay assigns each timestamp to a zero-indexed day bucket within a
// window of windowDays calendar days ending at now, oldest bucket first.
// Timestamps outside the window are dropped.
func BucketByDay(times []time.Time, windowDays int, now time.Time) []int {
	if windowDays <= 0 {
		return nil
	}
	buckets := make([]int, windowDays)
	start := now.AddDate(0, 0, -windowDays)
	for _, t := range times {
		idx := dayIndex(t, start, now, windowDays)
		if idx < 0 {
			continue
		}
		buckets[idx]++
	}
	return buckets
}

// dayIndex floors (t - start) into day buckets. The window's closing instant
// belongs to the last bucket, so a record stamped exactly at now is kept.
func dayIndex(t, start, now time.Time, windowDays int) int {
	if t.Before(start) {
		// Duration division truncates toward zero, which would fold
		// timestamps just before the window into bucket 0.
		return -1
	}
	idx := int(t.Sub(start) / (24 * time.Hour))
	if idx == windowDays && !t.After(now) {
		idx--
	}
	if idx < 0 || idx >= windowDays {
		return -1
	}
	return idx
}

// SumByDay is BucketByDay with a value summed per bucket instead of a count.
// times and values are parallel slices; extra entries in either are ignored.
func SumByDay(times []time.Time, values []float64, windowDays int, now time.Time) []float64 {
	if windowDays <= 0 {
		return nil
	}
	buckets := make([]float64, windowDays)
	start := now.AddDate(0, 0, -windowDays)
	n := len(times)
	if len(values) < n {
		n = len(values)
	}
	for i := 0; i < n; i++ {
		idx := dayIndex(times[i], start, now, windowDays)
		if idx < 0 {
			continue
		}
		buckets[idx] += values[i]
	}
	for i := range buckets {
		buckets[i] = round2(buckets[i])
	}
	return buckets
}

// DayLabels returns the calendar-day labels for the BucketByDay window,
// oldest first, formatted as YYYY-MM-DD.
func DayLabels(windowDays int, now time.Time) []string {
	if windowDays <= 0 {
		return nil
	}
	labels := make([]string, windowDays)
	for i := 0; i < windowDays; i++ {
		labels[i] = now.AddDate(0, 0, -(windowDays - 1 - i)).Format("2006-01-02")
	}
	return labels
}

// MovingAverage returns the left-truncated moving average of series: entry i
// averages series[max(0, i-window+1) .. i], so the first window-1 entries use
// a shrinking window rather than zero padding. Output length equals input
// length.
func MovingAverage(series []float64, window int) []float64 {
	if len(series) == 0 {
		return nil
	}
	if window <= 0 {
		window = 1
	}
	out := make([]float64, len(series))
	var sum float64
	for i, v := range series {
		sum += v
		if i >= window {
			sum -= series[i-window]
		}
		n := i + 1
		if n > window {
			n = window
		}
		out[i] = round2(sum / float64(n))
	}
	return out
}

func round2(v float64) float64 {
	// Matches the engine's currency-minor-unit precision.
	return math.Round(v*100) / 100
}
