package dto

import (
	"hotelos/internal/domains/pricing/pipeline"
	"hotelos/shared/constant"

	"github.com/shopspring/decimal"
)

type PriceStepResponse struct {
	Stage  string          `json:"stage"`
	Amount decimal.Decimal `json:"amount"`
}

type RoomPriceResponse struct {
	RoomID       string              `json:"room_id"`
	HotelID      string              `json:"hotel_id"`
	CheckIn      string              `json:"check_in"`
	CheckOut     string              `json:"check_out"`
	Nights       int                 `json:"nights"`
	NightlyPrice decimal.Decimal     `json:"nightly_price"`
	TotalPrice   decimal.Decimal     `json:"total_price"`
	Breakdown    []PriceStepResponse `json:"breakdown"`
}

func (r *RoomPriceResponse) FromQuote(pc pipeline.Context, quote pipeline.Quote) {
	r.RoomID = pc.RoomID
	r.HotelID = pc.HotelID
	r.CheckIn = pc.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = pc.CheckOut.Format(constant.DateOnlyFormat)
	r.Nights = pc.Nights()
	r.NightlyPrice = quote.Amount
	r.TotalPrice = quote.Amount.Mul(decimal.NewFromInt(int64(r.Nights)))

	r.Breakdown = make([]PriceStepResponse, len(quote.Steps))
	for i, step := range quote.Steps {
		r.Breakdown[i] = PriceStepResponse{Stage: step.Stage, Amount: step.Amount}
	}
}
