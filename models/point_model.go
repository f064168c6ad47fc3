package models

// RawRecord is one place record exactly as decoded from the source JSON.
type RawRecord map[string]any

// Point is the canonical in-memory form of one place record. Lat and Lon
// are always set; the optional fields stay empty (or nil) when the source
// record did not carry them, and are then omitted from the output.
type Point struct {
	Lat         float64
	Lon         float64
	Ele         *float64
	Name        string
	Description string
	LinkPath    string // relative path to the place's web page
	CreatedAt   string // original timestamp text, passed through verbatim
	Kind        string
}

// Group is a named bucket of points. Group order follows the first
// appearance of each group key; points keep their input order.
type Group struct {
	Name   string
	Points []Point
}
