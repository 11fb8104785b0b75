package shared

import (
	"context"
	"encoding/json"
	"hotelos/shared/cache"
	"hotelos/shared/constant"
	"hotelos/shared/dto"
	"hotelos/shared/failure"
	"hotelos/shared/timezone"
	"math"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

// ConvertStringToDate parses an optional YYYY-MM-DD query value. An empty value yields nil.
func ConvertStringToDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil //nolint:nilnil
	}

	date, err := timezone.ParseDate(value)
	if err != nil {
		return nil, failure.BadRequestFromString(field + " must be a date in YYYY-MM-DD format") //nolint:wrapcheck
	}

	return &date, nil
}

// ParseStayDates reads check_in and check_out from a query. Both or neither must be given.
func ParseStayDates(query url.Values) (checkIn, checkOut *time.Time, err error) {
	checkIn, err = ConvertStringToDate(constant.RequestParamCheckIn, query.Get(constant.RequestParamCheckIn))
	if err != nil {
		return nil, nil, err
	}

	checkOut, err = ConvertStringToDate(constant.RequestParamCheckOut, query.Get(constant.RequestParamCheckOut))
	if err != nil {
		return nil, nil, err
	}

	if (checkIn == nil) != (checkOut == nil) {
		return nil, nil, failure.BadRequestFromString("check_in and check_out must be given together") //nolint:wrapcheck
	}

	return checkIn, checkOut, nil
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the fields of a struct into a map of updated fields.
func TransformFields(data interface{}, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins the prefix and every part with ":".
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}

// BuildCacheKeyWithQuery keys a list query by a hash of its pagination and filter.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	raw, err := json.Marshal(struct {
		Params dto.QueryParams `json:"params"`
		Filter dto.FilterGroup `json:"filter"`
	}{params, filter})
	if err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to marshal cache key query")

		return prefix
	}

	return BuildCacheKey(prefix, strconv.FormatUint(xxhash.Sum64(raw), 16))
}

// InvalidateCaches removes every key stored under prefix.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+cacheKeySeparator+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
