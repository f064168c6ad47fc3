package services

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"places2gpx/utils/errors"
)

const (
	DefaultInputFile = "my_places.json"
	DefaultBaseURL   = "https://vpohid.com.ua"
	DefaultGroupName = "Places"
)

// Config is the fully resolved runtime configuration. The pipeline only
// ever sees this struct; flag and environment lookup happen once, before
// the run starts.
type Config struct {
	Input         string // local JSON file path
	URL           string // remote JSON endpoint; mutually exclusive with Input
	Output        string
	BaseURL       string
	GroupName     string
	GroupByKind   bool
	UseExtensions bool
	ServeAddr     string // non-empty switches to serve mode
}

// FlagValues carries raw CLI flag values into config resolution. Set holds
// the names of flags that were explicitly given on the command line, so
// flags can override the environment without their defaults doing so.
type FlagValues struct {
	Input         string
	URL           string
	Output        string
	BaseURL       string
	GroupName     string
	GroupByKind   bool
	UseExtensions bool
	ServeAddr     string
	Set           map[string]bool
}

// ResolveConfig merges the three configuration layers, CLI flags over
// environment variables over built-in defaults, into one Config.
func ResolveConfig(fv FlagValues, getenv func(string) string) (Config, error) {
	cfg := Config{
		BaseURL:       DefaultBaseURL,
		GroupByKind:   true,
		UseExtensions: true,
	}

	// Environment layer
	if v := getenv("GPX_INPUT"); v != "" {
		cfg.Input = v
	}
	if v := getenv("GPX_URL"); v != "" {
		cfg.URL = v
	}
	if v := getenv("GPX_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := getenv("GPX_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := getenv("GPX_GROUP_NAME"); strings.TrimSpace(v) != "" {
		cfg.GroupName = strings.TrimSpace(v)
		cfg.GroupByKind = false
	}
	if v := getenv("GPX_USE_OSMAND"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, errors.NewAPIError(errors.CodeInvalidInput,
				"Invalid GPX_USE_OSMAND value", http.StatusBadRequest, v)
		}
		cfg.UseExtensions = b
	}

	// CLI layer
	if fv.Set["input"] {
		cfg.Input = fv.Input
	}
	if fv.Set["url"] {
		cfg.URL = fv.URL
	}
	if fv.Set["output"] {
		cfg.Output = fv.Output
	}
	if fv.Set["base-url"] {
		cfg.BaseURL = fv.BaseURL
	}
	if fv.Set["group-name"] {
		cfg.GroupName = strings.TrimSpace(fv.GroupName)
		cfg.GroupByKind = cfg.GroupName == ""
	}
	if fv.Set["by-kind"] {
		cfg.GroupByKind = fv.GroupByKind
	}
	if fv.Set["serve"] {
		cfg.ServeAddr = fv.ServeAddr
	}

	if cfg.Input != "" && cfg.URL != "" {
		return Config{}, errors.NewAPIError(errors.CodeInvalidInput,
			"Choose a single data source: an input file or a URL, not both", http.StatusBadRequest)
	}
	if cfg.Input == "" && cfg.URL == "" {
		cfg.Input = DefaultInputFile
	}
	if cfg.Output == "" {
		variant := "standard"
		if cfg.UseExtensions {
			variant = "osmand"
		}
		cfg.Output = fmt.Sprintf("converted_places_%s.gpx", variant)
	}
	if !cfg.GroupByKind && cfg.GroupName == "" {
		cfg.GroupName = DefaultGroupName
	}

	return cfg, nil
}
