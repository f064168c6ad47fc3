package services

// OsmAnd icon identifiers by place kind.
var kindIcons = map[string]string{
	"dangerplace":     "hazard",
	"guide":           "tourism_information",
	"kampplace":       "tourism_camp_site",
	"lake":            "water",
	"mount":           "natural",
	"parking":         "parking",
	"pasture":         "grassland",
	"photo":           "special_photo_camera",
	"placeofinterest": "special_star",
	"rescuepost":      "mountain_rescue",
	"usefulbuilding":  "special_house",
	"watersource":     "natural_spring",
}

// Marker colors by place kind.
var kindColors = map[string]string{
	"dangerplace":     "#FF0000",
	"guide":           "#0000FF",
	"kampplace":       "#964B00",
	"lake":            "#00FFFF",
	"mount":           "#8B0000",
	"parking":         "#0000FF",
	"pasture":         "#008000",
	"photo":           "#FFA500",
	"placeofinterest": "#FFD700",
	"rescuepost":      "#FF0000",
	"usefulbuilding":  "#808080",
	"watersource":     "#00FFFF",
}

// Fallbacks for kinds not present in the tables.
const (
	DefaultIcon  = "special_star"
	DefaultColor = "#4A4A4A"
)

// ResolveCategory returns the icon and color for a place kind. Unknown and
// empty kinds get the defaults, so the lookup never fails.
func ResolveCategory(kind string) (icon, color string) {
	icon, ok := kindIcons[kind]
	if !ok {
		icon = DefaultIcon
	}
	color, ok = kindColors[kind]
	if !ok {
		color = DefaultColor
	}
	return icon, color
}
