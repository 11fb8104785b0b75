package pipeline

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100) //nolint:mnd

type MonthDay struct {
	Month time.Month
	Day   int
}

func (m MonthDay) before(other MonthDay) bool {
	if m.Month != other.Month {
		return m.Month < other.Month
	}

	return m.Day < other.Day
}

// SeasonalRule scales the price of stays whose check-in falls between From and To, both inclusive.
// A window with To before From wraps the new year. An empty HotelID matches every hotel.
type SeasonalRule struct {
	HotelID    string
	From       MonthDay
	To         MonthDay
	Multiplier decimal.Decimal
}

func (r SeasonalRule) matches(pc Context) bool {
	if r.HotelID != "" && r.HotelID != pc.HotelID {
		return false
	}

	day := MonthDay{Month: pc.CheckIn.Month(), Day: pc.CheckIn.Day()}

	if r.To.before(r.From) {
		return !day.before(r.From) || !r.To.before(day)
	}

	return !day.before(r.From) && !r.To.before(day)
}

// OccupancyRule scales the price of stays of at least MinNights nights.
type OccupancyRule struct {
	HotelID    string
	MinNights  int
	Multiplier decimal.Decimal
}

// PromotionRule takes PercentOff percent and then AmountOff off the price of a room
// for check-ins in [ValidFrom, ValidTo). Zero bounds are open. An empty RoomID matches every room.
type PromotionRule struct {
	RoomID     string
	ValidFrom  time.Time
	ValidTo    time.Time
	PercentOff decimal.Decimal
	AmountOff  decimal.Decimal
}

func (r PromotionRule) matches(pc Context) bool {
	if r.RoomID != "" && r.RoomID != pc.RoomID {
		return false
	}

	if !r.ValidFrom.IsZero() && pc.CheckIn.Before(r.ValidFrom) {
		return false
	}

	return r.ValidTo.IsZero() || pc.CheckIn.Before(r.ValidTo)
}

// Seasonal applies the first matching rule.
func Seasonal(rules ...SeasonalRule) Stage {
	return Stage{
		Name: StageSeasonal,
		Apply: func(amount decimal.Decimal, pc Context) decimal.Decimal {
			for _, rule := range rules {
				if rule.matches(pc) {
					return amount.Mul(rule.Multiplier)
				}
			}

			return amount
		},
	}
}

// Occupancy applies the matching rule with the highest MinNights.
func Occupancy(rules ...OccupancyRule) Stage {
	return Stage{
		Name: StageOccupancy,
		Apply: func(amount decimal.Decimal, pc Context) decimal.Decimal {
			nights := pc.Nights()
			best := -1

			for i, rule := range rules {
				if rule.HotelID != "" && rule.HotelID != pc.HotelID {
					continue
				}

				if nights < rule.MinNights {
					continue
				}

				if best < 0 || rule.MinNights > rules[best].MinNights {
					best = i
				}
			}

			if best < 0 {
				return amount
			}

			return amount.Mul(rules[best].Multiplier)
		},
	}
}

// Promotion applies the first matching rule.
func Promotion(rules ...PromotionRule) Stage {
	return Stage{
		Name: StagePromotion,
		Apply: func(amount decimal.Decimal, pc Context) decimal.Decimal {
			for _, rule := range rules {
				if !rule.matches(pc) {
					continue
				}

				discounted := amount.Mul(hundred.Sub(rule.PercentOff)).Div(hundred)

				return discounted.Sub(rule.AmountOff)
			}

			return amount
		},
	}
}
