package services

import (
	"fmt"
	"strconv"

	"places2gpx/models"
	"places2gpx/utils/errors"
)

// ExtractRecords pulls the record list out of a decoded JSON payload.
// Three shapes are supported, tried in order: a bare array, an object with
// "items", and an object with "response.items". Anything else fails with
// the observed top-level type in the error.
func ExtractRecords(payload any) ([]models.RawRecord, error) {
	switch v := payload.(type) {
	case []any:
		return toRecords(v)
	case map[string]any:
		if items, ok := v["items"].([]any); ok {
			return toRecords(items)
		}
		if resp, ok := v["response"].(map[string]any); ok {
			if items, ok := resp["items"].([]any); ok {
				return toRecords(items)
			}
		}
	}
	return nil, errors.NewUnrecognizedPayload(jsonTypeName(payload))
}

func toRecords(items []any) ([]models.RawRecord, error) {
	records := make([]models.RawRecord, 0, len(items))
	for i, item := range items {
		rec, ok := item.(map[string]any)
		if !ok {
			return nil, errors.NewUnrecognizedPayload(
				fmt.Sprintf("element %d is %s, expected object", i, jsonTypeName(item)))
		}
		records = append(records, models.RawRecord(rec))
	}
	return records, nil
}

// BuildPoints maps every raw record into a Point. A failure on any record
// aborts the whole batch; there is no per-record skip mode.
func BuildPoints(records []models.RawRecord) ([]models.Point, error) {
	points := make([]models.Point, 0, len(records))
	for i, rec := range records {
		p, err := BuildPoint(i, rec)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

// BuildPoint builds the canonical Point for the record at the given input
// position. index is only used for error reporting.
func BuildPoint(index int, rec models.RawRecord) (models.Point, error) {
	lat, ok := numericField(rec, "latitude")
	if !ok {
		return models.Point{}, errors.NewMissingField(index, "latitude")
	}
	lon, ok := numericField(rec, "longitude")
	if !ok {
		return models.Point{}, errors.NewMissingField(index, "longitude")
	}

	p := models.Point{
		Lat:         lat,
		Lon:         lon,
		Name:        stringField(rec, "title"),
		Description: stringField(rec, "description"),
		LinkPath:    stringField(rec, "viewurl"),
		CreatedAt:   stringField(rec, "whenadded"),
		Kind:        stringField(rec, "kind"),
	}
	if ele, ok := numericField(rec, "sealevel"); ok {
		p.Ele = &ele
	}
	return p, nil
}

// numericField reads a float64 from a JSON number or a numeric string.
func numericField(rec models.RawRecord, key string) (float64, bool) {
	switch v := rec[key].(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	}
	return 0, false
}

func stringField(rec models.RawRecord, key string) string {
	s, _ := rec[key].(string)
	return s
}

func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
