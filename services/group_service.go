package services

import "places2gpx/models"

// UncategorizedGroup is the by-kind bucket for points without a kind.
const UncategorizedGroup = "uncategorized"

// GroupPoints partitions points into named groups. With byKind false all
// points land in a single group called name, in input order. With byKind
// true there is one group per distinct kind, ordered by first appearance.
func GroupPoints(points []models.Point, byKind bool, name string) []models.Group {
	if !byKind {
		return []models.Group{{Name: name, Points: points}}
	}

	index := make(map[string]int)
	var groups []models.Group
	for _, p := range points {
		key := p.Kind
		if key == "" {
			key = UncategorizedGroup
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, models.Group{Name: key})
		}
		groups[i].Points = append(groups[i].Points, p)
	}
	return groups
}
