// Package commission computes the platform/driver split for a payment.
//
// The engine is pure: it never touches the database, never mutates its
// inputs, and never returns an error. Upstream rows are treated as untrusted,
// so malformed numeric input is coerced to zero instead of rejected.
package commission

import "math"

// Mode selects how the commission amount is derived from the rate.
type Mode string

const (
	// ModeFixedRate applies the percentage rate with no absolute bounds.
	ModeFixedRate Mode = "fixed-rate"

	// ModeClampedRate applies the percentage rate, then clamps the resulting
	// commission into [MinCommission, MaxCommission].
	ModeClampedRate Mode = "clamped-rate"
)

// Default engine settings.
const (
	DefaultRate          = 20.0  // percent
	DefaultMinCommission = 1.0   // currency units
	DefaultMaxCommission = 100.0 // currency units
)

// Config holds engine settings.
type Config struct {
	DefaultRate   float64 // percentage used when the caller passes rate <= 0
	MinCommission float64 // floor for ModeClampedRate
	MaxCommission float64 // ceiling for ModeClampedRate
	Mode          Mode
}

// DefaultConfig returns the standard engine configuration.
func DefaultConfig() Config {
	return Config{
		DefaultRate:   DefaultRate,
		MinCommission: DefaultMinCommission,
		MaxCommission: DefaultMaxCommission,
		Mode:          ModeFixedRate,
	}
}

// Applied carries the split values already recorded on a payment row.
type Applied struct {
	Commission   float64
	DriverPayout float64
}

// Split is the result of a commission calculation.
type Split struct {
	TotalAmount        float64 `json:"total_amount"`
	PlatformCommission float64 `json:"platform_commission"`
	DriverPayout       float64 `json:"driver_payout"`
	PlatformPercentage float64 `json:"platform_percentage"`
	DriverPercentage   float64 `json:"driver_percentage"`
	CommissionRate     float64 `json:"commission_rate"`
	AlreadyApplied     bool    `json:"already_applied"`
}

// Engine computes commission splits.
type Engine struct {
	cfg Config
}

// NewEngine creates an engine, filling zero config fields with defaults.
func NewEngine(cfg Config) *Engine {
	if cfg.DefaultRate <= 0 {
		cfg.DefaultRate = DefaultRate
	}
	if cfg.MinCommission <= 0 {
		cfg.MinCommission = DefaultMinCommission
	}
	if cfg.MaxCommission <= 0 {
		cfg.MaxCommission = DefaultMaxCommission
	}
	if cfg.Mode != ModeClampedRate {
		cfg.Mode = ModeFixedRate
	}
	return &Engine{cfg: cfg}
}

// ComputeSplit computes the platform/driver split for amount at rate percent.
//
// If existing carries a non-zero commission and payout the split is considered
// durably applied: the existing values are echoed back with AlreadyApplied set
// and percentages back-computed, so a second call is a no-op for the caller.
//
// Invalid input → zero split: negative or non-finite amounts are treated as 0,
// rates outside [0,100] are clamped. A zero amount yields all-zero fields.
func (e *Engine) ComputeSplit(amount, rate float64, existing *Applied) Split {
	amount = sanitizeAmount(amount)

	if rate <= 0 || math.IsNaN(rate) {
		rate = e.cfg.DefaultRate
	}
	if rate > 100 {
		rate = 100
	}

	if existing != nil && existing.Commission > 0 && existing.DriverPayout > 0 {
		return e.echoApplied(amount, rate, existing)
	}

	if amount == 0 {
		return Split{CommissionRate: rate}
	}

	cut := amount * rate / 100
	if e.cfg.Mode == ModeClampedRate {
		cut = clamp(cut, e.cfg.MinCommission, e.cfg.MaxCommission)
		if cut > amount {
			cut = amount
		}
	}
	payout := amount - cut

	return Split{
		TotalAmount:        round2(amount),
		PlatformCommission: round2(cut),
		DriverPayout:       round2(payout),
		PlatformPercentage: round2(cut / amount * 100),
		DriverPercentage:   round2(payout / amount * 100),
		CommissionRate:     rate,
	}
}

// echoApplied rebuilds a Split from values already persisted on the payment.
func (e *Engine) echoApplied(amount, rate float64, existing *Applied) Split {
	s := Split{
		TotalAmount:        round2(amount),
		PlatformCommission: round2(existing.Commission),
		DriverPayout:       round2(existing.DriverPayout),
		CommissionRate:     rate,
		AlreadyApplied:     true,
	}
	if amount > 0 {
		s.PlatformPercentage = round2(existing.Commission / amount * 100)
		s.DriverPercentage = round2(existing.DriverPayout / amount * 100)
	}
	return s
}

func sanitizeAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
