// Package geo resolves decimal coordinates to the region labels posts are
// filed under.
package geo

import (
	"math"

	"github.com/2025AIT-HISHIDA-GroupA/LocalGrammer-v1.0/post"
)

// Box is an inclusive latitude/longitude bounding box for one region.
type Box struct {
	Region post.Region

	LatMin, LatMax float64
	LngMin, LngMax float64
}

// Contains reports whether the point is inside the box, edges included.
func (b Box) Contains(lat, lng float64) bool {
	return lat >= b.LatMin && lat <= b.LatMax &&
		lng >= b.LngMin && lng <= b.LngMax
}

// Center is the representative point of a region, used only when no box
// contains the queried point.
type Center struct {
	Region post.Region

	Lat, Lng float64
}

// Table is an ordered region lookup: boxes are evaluated front to back
// and the first containing box wins. Centers must not be empty; they make
// Classify total.
type Table struct {
	Boxes   []Box
	Centers []Center
}

// Classify resolves coordinates to a region label. It never fails: a
// point outside every box falls back to the nearest center by planar
// distance in raw degree units. No geodesy here; at this scale the
// approximation picks the same region the boxes would.
func (t Table) Classify(lat, lng float64) post.Region {
	for _, box := range t.Boxes {
		if box.Contains(lat, lng) {
			return box.Region
		}
	}
	return t.nearestCenter(lat, lng)
}

func (t Table) nearestCenter(lat, lng float64) post.Region {
	nearest := t.Centers[0].Region
	nearestDist := math.Inf(1)
	for _, center := range t.Centers {
		dLat, dLng := lat-center.Lat, lng-center.Lng
		dist := dLat*dLat + dLng*dLng
		// Strict less-than: ties keep the earlier entry.
		if dist < nearestDist {
			nearest, nearestDist = center.Region, dist
		}
	}
	return nearest
}

// Japan is the production table. Box order is part of the contract: the
// boxes overlap at their edges (首都圏/東海圏 share 138.5..139, 東海圏/
// 関西圏 share 136.0..136.5, and so on) and the stored posts were
// classified with exactly this precedence. Do not reorder or "fix" the
// overlaps.
var Japan = Table{
	Boxes: []Box{
		{post.RegionShutoken, 35.0, 36.5, 138.5, 140.5},
		{post.RegionTokai, 34.0, 36.0, 136.0, 139.0},
		{post.RegionKansai, 33.8, 35.8, 134.0, 136.5},
		{post.RegionKyushu, 31.0, 34.0, 129.0, 132.0},
		{post.RegionOkinawa, 24.0, 27.0, 122.0, 131.0},
		{post.RegionHokkaido, 41.0, 46.0, 139.0, 146.0},
		{post.RegionTohoku, 37.0, 41.5, 139.0, 142.0},
		{post.RegionChugoku, 33.0, 36.0, 131.0, 135.0},
		{post.RegionHokuriku, 35.5, 38.5, 136.0, 140.0},
	},
	Centers: []Center{
		{post.RegionTokai, 35.1803, 136.9066},    // 愛知県庁（名古屋）
		{post.RegionShutoken, 35.6895, 139.6917}, // 東京駅
		{post.RegionKansai, 34.6937, 135.5023},   // 大阪駅
		{post.RegionKyushu, 33.5902, 130.4017},   // 福岡市
		{post.RegionOkinawa, 26.2123, 127.6792},  // 那覇市
		{post.RegionHokkaido, 43.0642, 141.3469}, // 札幌市
		{post.RegionTohoku, 38.2682, 140.8694},   // 仙台市
		{post.RegionChugoku, 34.3963, 132.4596},  // 広島市
		{post.RegionHokuriku, 36.6513, 138.1812}, // 長野市
	},
}

// Classify resolves coordinates against the production table.
func Classify(lat, lng float64) post.Region {
	return Japan.Classify(lat, lng)
}
