package models

import "encoding/xml"

// GPX is the root element of a GPX 1.1 document. Struct field order
// matches the element order the schema requires, which also keeps the
// marshaled output byte-stable.
type GPX struct {
	XMLName     xml.Name   `xml:"gpx"`
	Version     string     `xml:"version,attr"`
	Creator     string     `xml:"creator,attr"`
	Xmlns       string     `xml:"xmlns,attr"`
	XmlnsOsmand string     `xml:"xmlns:osmand,attr,omitempty"`
	Waypoints   []Waypoint `xml:"wpt"`
}

// Waypoint is a single <wpt> element.
type Waypoint struct {
	Lat        string            `xml:"lat,attr"`
	Lon        string            `xml:"lon,attr"`
	Ele        string            `xml:"ele,omitempty"`
	Time       string            `xml:"time,omitempty"`
	Name       string            `xml:"name"`
	Desc       string            `xml:"desc,omitempty"`
	Link       *Link             `xml:"link,omitempty"`
	Type       string            `xml:"type"`
	Extensions *OsmandExtensions `xml:"extensions,omitempty"`
}

// Link points back at the place's page on the source site.
type Link struct {
	Href string `xml:"href,attr"`
	Text string `xml:"text"`
}

// OsmandExtensions carries the display metadata OsmAnd reads from inside
// <extensions>.
type OsmandExtensions struct {
	Icon       string `xml:"osmand:icon"`
	Color      string `xml:"osmand:color"`
	Background string `xml:"osmand:background"`
}
