package geo

import (
	"testing"

	"github.com/matryer/is"

	"github.com/2025AIT-HISHIDA-GroupA/LocalGrammer-v1.0/post"
)

func TestClassifyKnownPlaces(t *testing.T) {
	fixtures := []struct {
		Name     string
		Lat, Lng float64
		Want     post.Region
	}{
		{"東京駅", 35.6895, 139.6917, post.RegionShutoken},
		{"横浜", 35.4437, 139.6380, post.RegionShutoken},
		{"名古屋", 35.1803, 136.9066, post.RegionTokai},
		{"静岡", 34.9756, 138.3828, post.RegionTokai},
		{"大阪", 34.6937, 135.5023, post.RegionKansai},
		{"神戸", 34.6901, 135.1956, post.RegionKansai},
		{"福岡", 33.5902, 130.4017, post.RegionKyushu},
		{"那覇", 26.2123, 127.6792, post.RegionOkinawa},
		{"札幌", 43.0642, 141.3469, post.RegionHokkaido},
		{"仙台", 38.2682, 140.8694, post.RegionTohoku},
		{"広島", 34.3963, 132.4596, post.RegionChugoku},
		{"金沢", 36.5613, 136.6562, post.RegionHokuriku},
		{"長野", 36.6513, 138.1812, post.RegionHokuriku},
	}
	for _, fixture := range fixtures {
		t.Run(fixture.Name, func(t *testing.T) {
			is := is.New(t)
			is.Equal(Classify(fixture.Lat, fixture.Lng), fixture.Want)
		})
	}
}

// The production boxes overlap; a point in the 138.5..139 band sits in
// both the 首都圏 and 東海圏 boxes and must resolve by table order.
func TestClassifyOverlapPrecedence(t *testing.T) {
	is := is.New(t)
	is.Equal(Classify(35.5, 138.7), post.RegionShutoken)
}

func TestClassifyTotality(t *testing.T) {
	is := is.New(t)
	for lat := -90.0; lat <= 90.0; lat += 7.5 {
		for lng := -180.0; lng <= 180.0; lng += 7.5 {
			is.True(Classify(lat, lng).Valid())
		}
	}
}

func TestClassifyFallbackNearestCenter(t *testing.T) {
	is := is.New(t)

	// (10, 10) is outside every box; 那覇 is the nearest center in raw
	// degree units.
	is.Equal(Classify(10.0, 10.0), post.RegionOkinawa)

	// Far north-east of every box, 札幌 wins.
	is.Equal(Classify(50.0, 160.0), post.RegionHokkaido)
}

func TestTablePrecedence(t *testing.T) {
	is := is.New(t)

	boxA := Box{post.RegionKansai, 0, 10, 0, 10}
	boxB := Box{post.RegionKyushu, 0, 10, 0, 10}
	centers := []Center{{post.RegionTokai, -40, -40}}

	first := Table{Boxes: []Box{boxA, boxB}, Centers: centers}
	is.Equal(first.Classify(5, 5), post.RegionKansai) // first listed box wins

	flipped := Table{Boxes: []Box{boxB, boxA}, Centers: centers}
	is.Equal(flipped.Classify(5, 5), post.RegionKyushu)
}

func TestTableFallbackTieBreak(t *testing.T) {
	is := is.New(t)

	// Two centers equidistant from the origin; table order breaks the tie.
	table := Table{
		Centers: []Center{
			{post.RegionTohoku, 0, 10},
			{post.RegionOkinawa, 0, -10},
		},
	}
	is.Equal(table.Classify(0, 0), post.RegionTohoku)
}

func TestBoxContainsEdges(t *testing.T) {
	is := is.New(t)

	box := Box{post.RegionTokai, 34.0, 36.0, 136.0, 139.0}
	is.True(box.Contains(34.0, 136.0))
	is.True(box.Contains(36.0, 139.0))
	is.True(!box.Contains(36.0001, 137.0))
}
