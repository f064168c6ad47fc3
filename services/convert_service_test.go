package services

import (
	"strings"
	"testing"

	"places2gpx/utils/errors"
)

func testConfig() Config {
	return Config{
		BaseURL:       DefaultBaseURL,
		GroupName:     "Test",
		GroupByKind:   false,
		UseExtensions: true,
	}
}

func TestConvertEndToEnd(t *testing.T) {
	payload := []any{
		map[string]any{"latitude": 48.159, "longitude": 24.651, "title": "Говерла", "kind": "mount"},
	}

	doc, count, err := NewConvertService(testConfig()).Convert(payload)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}

	out := string(doc)
	for _, want := range []string{
		`<wpt lat="48.159" lon="24.651">`,
		`<name>Говерла</name>`,
		`<type>Test</type>`,
		`<osmand:icon>natural</osmand:icon>`,
		`<osmand:color>#8B0000</osmand:color>`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConvertWithoutExtensions(t *testing.T) {
	payload := []any{
		map[string]any{"latitude": 48.159, "longitude": 24.651, "title": "Говерла", "kind": "mount"},
	}
	cfg := testConfig()
	cfg.UseExtensions = false

	doc, _, err := NewConvertService(cfg).Convert(payload)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if strings.Contains(string(doc), "osmand") {
		t.Fatalf("output must carry no OsmAnd elements:\n%s", doc)
	}
}

func TestConvertUnrecognizedPayload(t *testing.T) {
	_, _, err := NewConvertService(testConfig()).Convert(map[string]any{"foo": float64(1)})
	if !errors.HasCode(err, errors.CodeUnrecognizedPayload) {
		t.Fatalf("Convert error = %v, want code %s", err, errors.CodeUnrecognizedPayload)
	}
}

func TestConvertMissingCoordinate(t *testing.T) {
	_, _, err := NewConvertService(testConfig()).Convert([]any{map[string]any{"title": "X"}})
	if !errors.HasCode(err, errors.CodeMissingField) {
		t.Fatalf("Convert error = %v, want code %s", err, errors.CodeMissingField)
	}
	if !strings.Contains(err.Error(), "latitude") {
		t.Fatalf("Convert error %q does not name latitude", err)
	}
}
