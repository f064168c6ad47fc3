package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"places2gpx/handlers"
	"places2gpx/middleware"
	"places2gpx/services"
)

func main() {
	os.Exit(run())
}

// run parses flags, resolves configuration and dispatches to a one-shot
// conversion or serve mode. Exit codes: 0 success, 1 handled error,
// 2 invalid input configuration.
func run() int {
	input := flag.String("input", "", "input JSON file (default: my_places.json)")
	url := flag.String("url", "", "URL returning a JSON response (records under response.items)")
	output := flag.String("output", "", "output GPX file (default: generated from the OsmAnd flag)")
	baseURL := flag.String("base-url", services.DefaultBaseURL, "base URL for place links")
	groupName := flag.String("group-name", "", "single group name; when empty, waypoints are grouped by kind")
	byKind := flag.Bool("by-kind", true, "group waypoints by their kind")
	osmand := flag.Bool("osmand", true, "add OsmAnd extensions (icons, colors)")
	serveAddr := flag.String("serve", "", "run an HTTP conversion endpoint on this address instead of converting once")

	flag.Parse()

	// .env supplies the environment layer; running without one is fine.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default configuration")
	}

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg, err := services.ResolveConfig(services.FlagValues{
		Input:         *input,
		URL:           *url,
		Output:        *output,
		BaseURL:       *baseURL,
		GroupName:     *groupName,
		GroupByKind:   *byKind,
		UseExtensions: *osmand,
		ServeAddr:     *serveAddr,
		Set:           set,
	}, os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	if cfg.ServeAddr != "" {
		return serve(cfg)
	}
	return convertOnce(cfg)
}

func convertOnce(cfg services.Config) int {
	source := services.NewSourceService()

	var payload any
	var err error
	if cfg.URL != "" {
		log.Printf("Source: URL -> %s", cfg.URL)
		payload, err = source.FetchURL(context.Background(), cfg.URL)
	} else {
		log.Printf("Source: file -> %s", cfg.Input)
		payload, err = source.LoadFile(cfg.Input)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	doc, count, err := services.NewConvertService(cfg).Convert(payload)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := os.WriteFile(cfg.Output, doc, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to write %s: %v\n", cfg.Output, err)
		return 1
	}

	log.Printf("Wrote %s (%d points)", cfg.Output, count)
	return 0
}

func serve(cfg services.Config) int {
	convertHandler := handlers.NewConvertHandler(cfg)

	r := mux.NewRouter()
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.ErrorMiddleware())
	r.Use(middleware.CORSMiddleware([]string{"*"}))

	r.HandleFunc("/convert", convertHandler.Convert).Methods("POST", "OPTIONS")
	r.HandleFunc("/health", convertHandler.Health).Methods("GET")

	log.Printf("Server starting on %s", cfg.ServeAddr)
	if err := http.ListenAndServe(cfg.ServeAddr, r); err != nil {
		log.Printf("Server failed: %v", err)
		return 1
	}
	return 0
}
