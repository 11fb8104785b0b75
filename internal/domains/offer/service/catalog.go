package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"hotelos/config"
	hotelRepository "hotelos/internal/domains/hotel/repository"
	"hotelos/internal/domains/offer/model/dto"
	"hotelos/internal/domains/pricing/pipeline"
	gDto "hotelos/shared/dto"
	"hotelos/shared/timezone"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Catalog answers the multi-hotel offer query. Implementations own filtering, sorting and paging.
type Catalog interface {
	Search(ctx context.Context, criteria dto.OfferCriteria, params gDto.QueryParams) ([]dto.HotelOfferResponse, int, error)
}

// memoryCatalog filters hotels in the store, then builds, sorts and pages every matching offer in memory.
// It suits a catalog of a few hundred hotels.
type memoryCatalog struct {
	hotelRepo hotelRepository.Hotel
	builder   *offerBuilder
	cfg       *config.Config
}

func (c *memoryCatalog) Search(ctx context.Context, criteria dto.OfferCriteria, params gDto.QueryParams) ([]dto.HotelOfferResponse, int, error) {
	hotels, err := c.hotelRepo.GetAll(ctx, gDto.QueryParams{}, criteria.ToFilterGroup())
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotels")

		return nil, 0, fmt.Errorf("failed to get hotels: %w", err)
	}

	// the listing has no stay dates, so every hotel is quoted for tonight
	window, err := pipeline.DefaultWindow(nil, nil, timezone.Today())
	if err != nil {
		return nil, 0, err
	}

	offers := make([]dto.HotelOfferResponse, len(hotels))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, c.cfg.App.Offer.Concurrency))

	for i, hotel := range hotels {
		g.Go(func() error {
			offer, err := c.builder.build(gctx, hotel, window, false)
			if err != nil {
				return err
			}

			offers[i] = offer

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, 0, fmt.Errorf("failed to build hotel offers: %w", err)
	}

	sortOffers(offers, dto.ParseSort(criteria.Sort))

	return paginate(offers, params), len(offers), nil
}

// sortOffers orders offers in place. Offers without a priced room always sort last on price.
func sortOffers(offers []dto.HotelOfferResponse, spec dto.SortSpec) {
	slices.SortStableFunc(offers, func(a, b dto.HotelOfferResponse) int {
		var c int

		if spec.Field == dto.SortFieldPrice {
			priceA, okA := a.CheapestPrice()
			priceB, okB := b.CheapestPrice()

			switch {
			case !okA && !okB:
				c = 0
			case !okA:
				return 1
			case !okB:
				return -1
			default:
				c = priceA.Cmp(priceB)
			}
		} else {
			c = strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}

		if spec.Desc {
			c = -c
		}

		if c == 0 {
			c = strings.Compare(a.ID, b.ID)
		}

		return c
	})
}

func paginate(offers []dto.HotelOfferResponse, params gDto.QueryParams) []dto.HotelOfferResponse {
	if params.Limit <= 0 {
		return offers
	}

	start := params.Offset()
	if start >= len(offers) {
		return []dto.HotelOfferResponse{}
	}

	return offers[start:min(start+params.Limit, len(offers))]
}
