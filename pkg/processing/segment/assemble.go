package segment

import (
	"slices"
	"strings"

	"github.com/mpapenbr/gc-segments/pkg/model"
)

// Assemble orders the entries by the time the segment was attempted during
// the activity. This differs from the duration order used within an entry.
func Assemble(overview model.Overview, entries []*model.Entry) *model.Leaderboard {
	ordered := slices.Clone(entries)
	slices.SortStableFunc(ordered, func(a, b *model.Entry) int {
		if c := a.Current.Compare(b.Current); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	overview.NumSegments = len(ordered)
	return &model.Leaderboard{Overview: overview, Entries: ordered}
}
