package post

import "golang.org/x/exp/slices"

// Region is a type alias used for the closed set of region labels posts
// and accounts are scoped by.
type Region string

// The nine regions. Labels are stored verbatim in the collection files,
// so they must never be renamed.
const (
	RegionTokai    Region = "東海圏"
	RegionShutoken Region = "首都圏"
	RegionKansai   Region = "関西圏"
	RegionKyushu   Region = "九州"
	RegionOkinawa  Region = "沖縄"
	RegionHokkaido Region = "北海道"
	RegionTohoku   Region = "東北"
	RegionChugoku  Region = "中国・四国"
	RegionHokuriku Region = "北陸・甲信越"
)

// Regions lists every region in display order.
var Regions = []Region{
	RegionTokai,
	RegionShutoken,
	RegionKansai,
	RegionKyushu,
	RegionOkinawa,
	RegionHokkaido,
	RegionTohoku,
	RegionChugoku,
	RegionHokuriku,
}

// DefaultRegion is seeded into the region preference of every new account.
const DefaultRegion = RegionTokai

// Tag is a type alias used for the closed set of post tags.
type Tag string

const (
	TagScenery    Tag = "景色"
	TagAnimal     Tag = "動物"
	TagSweets     Tag = "スイーツ"
	TagPhotogenic Tag = "映え"
	TagMorning    Tag = "モーニング"
	TagLunch      Tag = "ランチ"
	TagDinner     Tag = "ディナー"
	TagSports     Tag = "スポーツ"
)

// Tags lists every tag in display order. New accounts subscribe to all of
// them.
var Tags = []Tag{
	TagScenery,
	TagAnimal,
	TagSweets,
	TagPhotogenic,
	TagMorning,
	TagLunch,
	TagDinner,
	TagSports,
}

// Valid reports whether the region belongs to the enumeration. Stale
// labels already stored are tolerated on read; Valid gates writes only.
func (r Region) Valid() bool {
	return slices.Contains(Regions, r)
}

// Valid reports whether the tag belongs to the enumeration.
func (t Tag) Valid() bool {
	return slices.Contains(Tags, t)
}
