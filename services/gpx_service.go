package services

import (
	"encoding/xml"
	"fmt"
	"math"
	"strconv"
	"strings"

	"places2gpx/models"
	"places2gpx/utils/errors"
)

const (
	gpxNamespace    = "http://www.topografix.com/GPX/1/1"
	osmandNamespace = "https://osmand.net"
	gpxCreator      = "places2gpx"

	// Link caption on the source site, kept in the source language.
	linkText = "Детальніше"

	osmandBackground = "circle"
)

// GPXService renders point groups into a GPX 1.1 document.
type GPXService struct {
	baseURL string
}

func NewGPXService(baseURL string) *GPXService {
	return &GPXService{baseURL: strings.TrimRight(baseURL, "/")}
}

// Serialize renders the groups into a UTF-8 GPX 1.1 document. Identical
// groups and flag always produce byte-identical output.
func (s *GPXService) Serialize(groups []models.Group, useExtensions bool) ([]byte, error) {
	doc := models.GPX{
		Version: "1.1",
		Creator: gpxCreator,
		Xmlns:   gpxNamespace,
	}
	if useExtensions {
		doc.XmlnsOsmand = osmandNamespace
	}

	for _, g := range groups {
		for _, p := range g.Points {
			wpt, err := s.waypoint(g.Name, p, useExtensions)
			if err != nil {
				return nil, err
			}
			doc.Waypoints = append(doc.Waypoints, wpt)
		}
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.NewSerializationError(err.Error())
	}
	return append([]byte(xml.Header), body...), nil
}

func (s *GPXService) waypoint(group string, p models.Point, useExtensions bool) (models.Waypoint, error) {
	// The builder only emits finite coordinates, so this should never fire.
	if !isFinite(p.Lat) || !isFinite(p.Lon) {
		return models.Waypoint{}, errors.NewSerializationError(
			fmt.Sprintf("point %q has non-finite coordinates", p.Name))
	}

	lat := formatCoord(p.Lat)
	lon := formatCoord(p.Lon)

	wpt := models.Waypoint{
		Lat:  lat,
		Lon:  lon,
		Time: p.CreatedAt,
		Name: p.Name,
		Type: group,
	}
	if wpt.Name == "" {
		wpt.Name = lat + ", " + lon
	}
	if p.Ele != nil {
		wpt.Ele = formatCoord(*p.Ele)
	}

	desc := p.Description
	if p.LinkPath != "" {
		href := s.baseURL + p.LinkPath
		desc += fmt.Sprintf(`<br/><br/><a href="%s">%s</a>`, href, linkText)
		wpt.Link = &models.Link{Href: href, Text: linkText}
	}
	wpt.Desc = desc

	if useExtensions {
		icon, color := ResolveCategory(p.Kind)
		wpt.Extensions = &models.OsmandExtensions{
			Icon:       icon,
			Color:      color,
			Background: osmandBackground,
		}
	}
	return wpt, nil
}

// formatCoord renders a coordinate with the shortest representation that
// round-trips, independent of locale.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
