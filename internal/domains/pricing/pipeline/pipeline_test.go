package pipeline_test

import (
	"testing"
	"time"

	"hotelos/internal/domains/pricing/pipeline"
	"hotelos/shared/failure"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func room101() pipeline.Context {
	return pipeline.Context{
		RoomID:      "room-101",
		HotelID:     "hotel-1",
		RoomTypeID:  "standard",
		BasePrice:   dec("100"),
		PriceFactor: dec("1.0"),
		CheckIn:     date(2024, 6, 1),
		CheckOut:    date(2024, 6, 5),
	}
}

func TestDefaultPipeline(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(pc *pipeline.Context)
		want   string
	}{
		{
			name:   "base rate with neutral factor",
			mutate: func(_ *pipeline.Context) {},
			want:   "100",
		},
		{
			name:   "suite factor doubles the base rate",
			mutate: func(pc *pipeline.Context) { pc.PriceFactor = dec("2.0") },
			want:   "200",
		},
		{
			name: "room modifier applies after the type factor",
			mutate: func(pc *pipeline.Context) {
				pc.PriceFactor = dec("1.5")
				pc.PriceModifier = decimal.NewNullDecimal(dec("1.1"))
			},
			want: "165",
		},
		{
			name:   "amount is rounded to cents",
			mutate: func(pc *pipeline.Context) { pc.PriceFactor = dec("0.333") },
			want:   "33.3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pc := room101()
			tt.mutate(&pc)

			got := pipeline.DefaultPipeline().Calculate(pc)

			assert.True(t, dec(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestPipeline_IsDeterministic(t *testing.T) {
	p := pipeline.New(
		[]pipeline.SeasonalRule{{From: pipeline.MonthDay{Month: time.June, Day: 1}, To: pipeline.MonthDay{Month: time.August, Day: 31}, Multiplier: dec("1.25")}},
		[]pipeline.OccupancyRule{{MinNights: 3, Multiplier: dec("0.9")}},
		[]pipeline.PromotionRule{{PercentOff: dec("10")}},
	)
	pc := room101()

	first := p.Quote(pc)
	second := p.Quote(pc)

	assert.True(t, first.Amount.Equal(second.Amount))
	assert.Equal(t, first.Steps, second.Steps)
}

func TestPipeline_StageOrderChangesResult(t *testing.T) {
	seasonal := pipeline.Seasonal(pipeline.SeasonalRule{
		From:       pipeline.MonthDay{Month: time.June, Day: 1},
		To:         pipeline.MonthDay{Month: time.June, Day: 30},
		Multiplier: dec("1.5"),
	})
	promotion := pipeline.Promotion(pipeline.PromotionRule{AmountOff: dec("20")})

	seasonalFirst := pipeline.Pipeline{pipeline.BaseRate(), pipeline.RoomTypeFactor(), seasonal, promotion}
	promotionFirst := pipeline.Pipeline{pipeline.BaseRate(), pipeline.RoomTypeFactor(), promotion, seasonal}

	pc := room101()

	assert.Equal(t, "130", seasonalFirst.Calculate(pc).String())
	assert.Equal(t, "120", promotionFirst.Calculate(pc).String())
}

func TestPipeline_QuoteRecordsEveryStage(t *testing.T) {
	quote := pipeline.DefaultPipeline().Quote(room101())

	require.Len(t, quote.Steps, 6)

	names := make([]string, len(quote.Steps))
	for i, step := range quote.Steps {
		names[i] = step.Stage
	}

	assert.Equal(t, []string{
		pipeline.StageBaseRate,
		pipeline.StageRoomTypeFactor,
		pipeline.StageRoomModifier,
		pipeline.StageSeasonal,
		pipeline.StageOccupancy,
		pipeline.StagePromotion,
	}, names)
}

func TestPipeline_NeverBelowZero(t *testing.T) {
	p := pipeline.New(nil, nil, []pipeline.PromotionRule{{AmountOff: dec("500")}})

	assert.True(t, p.Calculate(room101()).IsZero())
}

func TestPipeline_Insert(t *testing.T) {
	surcharge := pipeline.Stage{
		Name: "city_tax_free_surcharge",
		Apply: func(amount decimal.Decimal, _ pipeline.Context) decimal.Decimal {
			return amount.Add(dec("5"))
		},
	}

	base := pipeline.DefaultPipeline()
	p := base.Insert(3, surcharge)

	assert.Len(t, base, 6)
	assert.Equal(t, "city_tax_free_surcharge", p[3].Name)
	assert.Equal(t, "105", p.Calculate(room101()).String())
}

func TestSeasonal_WrapsNewYear(t *testing.T) {
	stage := pipeline.Seasonal(pipeline.SeasonalRule{
		HotelID:    "hotel-1",
		From:       pipeline.MonthDay{Month: time.December, Day: 20},
		To:         pipeline.MonthDay{Month: time.January, Day: 5},
		Multiplier: dec("2"),
	})

	tests := []struct {
		name    string
		checkIn time.Time
		hotelID string
		want    string
	}{
		{name: "late december", checkIn: date(2024, 12, 24), hotelID: "hotel-1", want: "200"},
		{name: "early january", checkIn: date(2025, 1, 5), hotelID: "hotel-1", want: "200"},
		{name: "outside window", checkIn: date(2025, 1, 6), hotelID: "hotel-1", want: "100"},
		{name: "other hotel", checkIn: date(2024, 12, 24), hotelID: "hotel-2", want: "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pc := room101()
			pc.CheckIn = tt.checkIn
			pc.HotelID = tt.hotelID

			assert.Equal(t, tt.want, stage.Apply(dec("100"), pc).String())
		})
	}
}

func TestOccupancy_PicksLongestQualifyingRule(t *testing.T) {
	stage := pipeline.Occupancy(
		pipeline.OccupancyRule{MinNights: 3, Multiplier: dec("0.9")},
		pipeline.OccupancyRule{MinNights: 7, Multiplier: dec("0.8")},
	)

	pc := room101()
	assert.Equal(t, "90", stage.Apply(dec("100"), pc).String())

	pc.CheckOut = date(2024, 6, 8)
	assert.Equal(t, "80", stage.Apply(dec("100"), pc).String())

	pc.CheckOut = date(2024, 6, 2)
	assert.Equal(t, "100", stage.Apply(dec("100"), pc).String())
}

func TestPromotion_RespectsValidityWindow(t *testing.T) {
	stage := pipeline.Promotion(pipeline.PromotionRule{
		RoomID:     "room-101",
		ValidFrom:  date(2024, 6, 1),
		ValidTo:    date(2024, 6, 2),
		PercentOff: dec("25"),
	})

	pc := room101()
	assert.Equal(t, "75", stage.Apply(dec("100"), pc).String())

	pc.CheckIn = date(2024, 6, 2)
	assert.Equal(t, "100", stage.Apply(dec("100"), pc).String())
}

func TestDefaultWindow(t *testing.T) {
	today := date(2024, 6, 1)
	checkIn := date(2024, 6, 3)
	checkOut := date(2024, 6, 5)

	window, err := pipeline.DefaultWindow(nil, nil, today)
	require.NoError(t, err)
	assert.Equal(t, today, window.CheckIn)
	assert.Equal(t, date(2024, 6, 2), window.CheckOut)

	window, err = pipeline.DefaultWindow(&checkIn, &checkOut, today)
	require.NoError(t, err)
	assert.Equal(t, checkIn, window.CheckIn)

	_, err = pipeline.DefaultWindow(&checkIn, nil, today)
	assert.True(t, failure.IsBadRequest(err))

	_, err = pipeline.DefaultWindow(&checkIn, &checkIn, today)
	assert.True(t, failure.IsBadRequest(err))

	_, err = pipeline.DefaultWindow(&checkOut, &checkIn, today)
	assert.True(t, failure.IsBadRequest(err))
}
