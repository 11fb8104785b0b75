// Package pipeline prices a room stay by running an ordered list of pure stages.
//
// Every stage receives the amount produced by the stage before it, so the position of a stage
// changes the result: a promotion placed after the seasonal stage discounts the seasonal price,
// placed before it the discount itself gets scaled.
package pipeline

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StageBaseRate       = "base_rate"
	StageRoomTypeFactor = "room_type_factor"
	StageRoomModifier   = "room_modifier"
	StageSeasonal       = "seasonal"
	StageOccupancy      = "occupancy"
	StagePromotion      = "promotion"

	amountScale = 2
)

// Context is everything a stage may look at. It is passed by value and never mutated.
type Context struct {
	RoomID        string
	HotelID       string
	RoomTypeID    string
	BasePrice     decimal.Decimal
	PriceFactor   decimal.Decimal
	PriceModifier decimal.NullDecimal
	CheckIn       time.Time
	CheckOut      time.Time
}

// Nights is the number of nights in [CheckIn, CheckOut).
func (c Context) Nights() int {
	return int(c.CheckOut.Sub(c.CheckIn).Hours() / 24) //nolint:mnd
}

type Stage struct {
	Name  string
	Apply func(amount decimal.Decimal, pc Context) decimal.Decimal
}

type Pipeline []Stage

type Step struct {
	Stage  string          `json:"stage"`
	Amount decimal.Decimal `json:"amount"`
}

// Quote is a nightly price together with the amount after each stage.
type Quote struct {
	Amount decimal.Decimal
	Steps  []Step
}

// DefaultPipeline runs the six pricing stages in their required order.
// The adjustment stages are identity until rules are supplied.
func DefaultPipeline() Pipeline {
	return New(nil, nil, nil)
}

func New(seasonal []SeasonalRule, occupancy []OccupancyRule, promotions []PromotionRule) Pipeline {
	return Pipeline{
		BaseRate(),
		RoomTypeFactor(),
		RoomModifier(),
		Seasonal(seasonal...),
		Occupancy(occupancy...),
		Promotion(promotions...),
	}
}

// Insert returns a copy of the pipeline with stage placed at index.
func (p Pipeline) Insert(index int, stage Stage) Pipeline {
	index = max(0, min(index, len(p)))

	out := make(Pipeline, 0, len(p)+1)
	out = append(out, p[:index]...)
	out = append(out, stage)
	out = append(out, p[index:]...)

	return out
}

func (p Pipeline) Calculate(pc Context) decimal.Decimal {
	return p.Quote(pc).Amount
}

func (p Pipeline) Quote(pc Context) Quote {
	amount := decimal.Zero
	steps := make([]Step, 0, len(p))

	for _, stage := range p {
		amount = stage.Apply(amount, pc)
		steps = append(steps, Step{Stage: stage.Name, Amount: amount.Round(amountScale)})
	}

	if amount.IsNegative() {
		amount = decimal.Zero
	}

	return Quote{Amount: amount.Round(amountScale), Steps: steps}
}

func BaseRate() Stage {
	return Stage{
		Name: StageBaseRate,
		Apply: func(_ decimal.Decimal, pc Context) decimal.Decimal {
			return pc.BasePrice
		},
	}
}

func RoomTypeFactor() Stage {
	return Stage{
		Name: StageRoomTypeFactor,
		Apply: func(amount decimal.Decimal, pc Context) decimal.Decimal {
			return amount.Mul(pc.PriceFactor)
		},
	}
}

func RoomModifier() Stage {
	return Stage{
		Name: StageRoomModifier,
		Apply: func(amount decimal.Decimal, pc Context) decimal.Decimal {
			if !pc.PriceModifier.Valid {
				return amount
			}

			return amount.Mul(pc.PriceModifier.Decimal)
		},
	}
}
