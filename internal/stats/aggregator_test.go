package stats

import (
	"math"
	"reflect"
	"testing"
	"time"

	"tridash/internal/domain"
)

func f(v float64) *float64 { return &v }

func TestAggregateRides(t *testing.T) {
	rides := []domain.Ride{
		{Status: domain.RideStatusCompleted, Fare: 10},
		{Status: domain.RideStatusCancelled},
		{Status: domain.RideStatusRequested},
	}

	s := AggregateRides(rides)

	if s.Total != 3 {
		t.Errorf("expected total 3, got %d", s.Total)
	}
	if s.Active != 1 {
		t.Errorf("expected 1 active, got %d", s.Active)
	}
	if s.Completed != 1 {
		t.Errorf("expected 1 completed, got %d", s.Completed)
	}
	if s.Cancelled != 1 {
		t.Errorf("expected 1 cancelled, got %d", s.Cancelled)
	}
	// completed / (total - cancelled) = 1/2
	if s.CompletionRate != 50.0 {
		t.Errorf("expected completion rate 50.0, got %.2f", s.CompletionRate)
	}
	// cancelled / total = 1/3
	if math.Abs(s.CancellationRate-33.33) > 0.001 {
		t.Errorf("expected cancellation rate 33.33, got %.2f", s.CancellationRate)
	}
	if s.AverageFare != 10 {
		t.Errorf("expected average fare 10, got %.2f", s.AverageFare)
	}
}

func TestAggregateRides_ActualFarePreferred(t *testing.T) {
	rides := []domain.Ride{
		{Status: domain.RideStatusCompleted, Fare: 10, ActualFare: f(14)},
		{Status: domain.RideStatusPaid, Fare: 20}, // PAID counts as completed
	}

	s := AggregateRides(rides)

	if s.Completed != 2 {
		t.Errorf("expected 2 completed, got %d", s.Completed)
	}
	if s.AverageFare != 17 {
		t.Errorf("expected average fare (14+20)/2 = 17, got %.2f", s.AverageFare)
	}
}

func TestAggregateRides_Empty(t *testing.T) {
	s := AggregateRides(nil)

	if s.Total != 0 || s.CompletionRate != 0 || s.CancellationRate != 0 || s.AverageFare != 0 {
		t.Errorf("expected zeroed stats for empty input, got %+v", s)
	}
}

func TestAggregateRides_AllCancelledNoDivisionByZero(t *testing.T) {
	rides := []domain.Ride{
		{Status: domain.RideStatusCancelled},
		{Status: domain.RideStatusCancelled},
	}

	s := AggregateRides(rides)

	if s.CompletionRate != 0 {
		t.Errorf("expected completion rate 0 when denominator is 0, got %.2f", s.CompletionRate)
	}
	if s.CancellationRate != 100 {
		t.Errorf("expected cancellation rate 100, got %.2f", s.CancellationRate)
	}
}

func TestAggregatePayments(t *testing.T) {
	payments := []domain.Payment{
		{Status: "success", PaymentType: domain.PaymentTypeRidePayment, Amount: 100, Commission: 20, DriverPayout: 80},
		{Status: "completed", PaymentType: domain.PaymentTypeRidePayment, Amount: 50, Commission: 10, DriverEarnings: f(40)},
		{Status: "success", PaymentType: domain.PaymentTypeDriverPayout, Amount: 120},
		{Status: "pending", PaymentType: domain.PaymentTypeRidePayment, Amount: 999},
		{Status: "declined", PaymentType: domain.PaymentTypeRidePayment, Amount: 5},
	}

	s := AggregatePayments(payments)

	// Sums cover successful payments only; "completed" is a success alias.
	if s.TotalAmount != 270 {
		t.Errorf("expected total amount 270, got %.2f", s.TotalAmount)
	}
	if s.TotalCommission != 30 {
		t.Errorf("expected total commission 30, got %.2f", s.TotalCommission)
	}
	if s.TotalEarnings != 120 {
		t.Errorf("expected total earnings 120, got %.2f", s.TotalEarnings)
	}
	if s.PassengerPayments != 150 {
		t.Errorf("expected passenger payments 150, got %.2f", s.PassengerPayments)
	}
	if s.DriverPayouts != 120 {
		t.Errorf("expected driver payouts 120, got %.2f", s.DriverPayouts)
	}
	if s.SuccessCount != 3 || s.PendingCount != 1 || s.FailedCount != 1 {
		t.Errorf("unexpected status counts: %+v", s)
	}
}

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want domain.PaymentStatus
	}{
		{"SUCCESS", domain.PaymentStatusSuccess},
		{"Completed", domain.PaymentStatusSuccess},
		{"paid", domain.PaymentStatusSuccess},
		{"declined", domain.PaymentStatusFailed},
		{"cancelled", domain.PaymentStatusFailed},
		{"partially_refunded", domain.PaymentStatusRefunded},
		{"charged_back", domain.PaymentStatusDisputed},
		{"  pending ", domain.PaymentStatusPending},
		{"weird", domain.PaymentStatus("weird")},
	}

	for _, tt := range tests {
		if got := NormalizeStatus(tt.raw); got != tt.want {
			t.Errorf("NormalizeStatus(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestAggregateDrivers_SuspendedOverridesApproved(t *testing.T) {
	drivers := []domain.Driver{
		{Approved: true, Suspended: true, Online: true},
	}

	s := AggregateDrivers(drivers)

	if s.Suspended != 1 {
		t.Errorf("expected 1 suspended, got %d", s.Suspended)
	}
	if s.Verified != 0 {
		t.Errorf("suspended driver must not count as verified, got %d", s.Verified)
	}
	if s.Online != 0 {
		t.Errorf("suspended driver must not count as online, got %d", s.Online)
	}
}

func TestAggregateDrivers(t *testing.T) {
	drivers := []domain.Driver{
		{Approved: true, Online: true, Rating: 4.5},
		{VerificationStatus: domain.VerificationVerified, Rating: 3.5},
		{VerificationStatus: domain.VerificationPending},
		{Rejected: true},
		{Approved: true, Suspended: true, Rating: 2.0},
	}

	s := AggregateDrivers(drivers)

	if s.Total != 5 {
		t.Errorf("expected total 5, got %d", s.Total)
	}
	if s.Verified != 2 {
		t.Errorf("expected 2 verified, got %d", s.Verified)
	}
	if s.Pending != 1 {
		t.Errorf("expected 1 pending, got %d", s.Pending)
	}
	if s.Rejected != 1 {
		t.Errorf("expected 1 rejected, got %d", s.Rejected)
	}
	if s.Suspended != 1 {
		t.Errorf("expected 1 suspended, got %d", s.Suspended)
	}
	if s.Online != 1 {
		t.Errorf("expected 1 online, got %d", s.Online)
	}
	// Mean over drivers with rating > 0: (4.5 + 3.5 + 2.0) / 3
	if math.Abs(s.AverageRating-3.33) > 0.001 {
		t.Errorf("expected average rating 3.33, got %.2f", s.AverageRating)
	}
}

func TestAggregateDrivers_NoRatingsNoDivisionByZero(t *testing.T) {
	s := AggregateDrivers([]domain.Driver{{Approved: true}})

	if s.AverageRating != 0 {
		t.Errorf("expected average rating 0 with no rated drivers, got %.2f", s.AverageRating)
	}
}

func TestBucketByDay(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	// Buckets are rolling 24h windows counted from now-7d, oldest first.
	times := []time.Time{
		now,                      // bucket 6
		now.AddDate(0, 0, -8),    // out of window, dropped
		now.AddDate(0, 0, -1),    // bucket 6 (exactly on the boundary)
		now.Add(-30 * time.Hour), // bucket 5
		now.AddDate(0, 0, -6),    // bucket 1 (boundary again)
		now.Add(time.Hour),       // future, dropped
	}

	buckets := BucketByDay(times, 7, now)

	want := []int{0, 1, 0, 0, 0, 1, 2}
	if !reflect.DeepEqual(buckets, want) {
		t.Errorf("expected %v, got %v", want, buckets)
	}
}

func TestBucketByDay_WindowEdges(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	// A record dated exactly now falls in the last bucket.
	buckets := BucketByDay([]time.Time{now}, 7, now)
	if buckets[6] != 1 {
		t.Errorf("record at now should land in bucket 6, got %v", buckets)
	}

	// A record dated exactly 8 days before now is dropped.
	buckets = BucketByDay([]time.Time{now.AddDate(0, 0, -8)}, 7, now)
	for i, n := range buckets {
		if n != 0 {
			t.Errorf("record 8 days old should be dropped, bucket %d = %d", i, n)
		}
	}

	// A record just before the window start is dropped, not folded into
	// the oldest bucket.
	buckets = BucketByDay([]time.Time{now.AddDate(0, 0, -7).Add(-time.Minute)}, 7, now)
	if buckets[0] != 0 {
		t.Errorf("record before window start should be dropped, got %v", buckets)
	}
}

func TestSumByDay(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	times := []time.Time{now, now, now.Add(-30 * time.Hour)}
	values := []float64{10.5, 20.25, 5}

	buckets := SumByDay(times, values, 7, now)

	if buckets[6] != 30.75 {
		t.Errorf("expected bucket 6 sum 30.75, got %.2f", buckets[6])
	}
	if buckets[5] != 5 {
		t.Errorf("expected bucket 5 sum 5, got %.2f", buckets[5])
	}
}

func TestDayLabels(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	labels := DayLabels(3, now)

	want := []string{"2025-06-13", "2025-06-14", "2025-06-15"}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("expected %v, got %v", want, labels)
	}
}

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{10, 20, 30, 40}, 2)

	want := []float64{10, 15, 25, 35}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestMovingAverage_WindowLargerThanSeries(t *testing.T) {
	got := MovingAverage([]float64{6, 12}, 5)

	want := []float64{6, 9}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestMovingAverage_Empty(t *testing.T) {
	if got := MovingAverage(nil, 3); got != nil {
		t.Errorf("expected nil for empty series, got %v", got)
	}
}

func TestAggregatorsAreOrderInsensitive(t *testing.T) {
	rides := []domain.Ride{
		{Status: domain.RideStatusCompleted, Fare: 10},
		{Status: domain.RideStatusCancelled},
		{Status: domain.RideStatusRequested},
	}
	reversed := []domain.Ride{rides[2], rides[1], rides[0]}

	if AggregateRides(rides) != AggregateRides(reversed) {
		t.Error("ride stats must not depend on input order")
	}
}
