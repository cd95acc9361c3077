package standings

import (
	"sort"

	"github.com/Dosada05/tournament-standings/models"
)

// Rank returns the records of one conference, best first. Ties are broken
// by points for, then by point differential; records still equal keep
// their input order.
func Rank(records []TeamRecord, conference models.Conference) []TeamRecord {
	ranked := make([]TeamRecord, 0)
	for _, r := range records {
		if r.Conference == conference {
			ranked = append(ranked, r)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranksAhead(ranked[i], ranked[j])
	})
	return ranked
}

func ranksAhead(a, b TeamRecord) bool {
	aNum, aDen := a.winFraction()
	bNum, bDen := b.winFraction()
	if left, right := aNum*bDen, bNum*aDen; left != right {
		return left > right
	}
	if a.PointsFor != b.PointsFor {
		return a.PointsFor > b.PointsFor
	}
	return a.PointDifferential() > b.PointDifferential()
}
