package scoring

import "strconv"

// DefaultRankPrecision is the rounding applied to scores before tie
// comparison when the caller does not pick one.
const DefaultRankPrecision = 2

// RankLabels walks an already-sorted (score descending) sequence and
// produces display labels. Non-finite scores get "-" and never consume a
// rank. Within a tie group only the first item shows a number; the rest
// show "-", and the next distinct score gets the next sequential rank.
// This is deliberately not textbook dense ranking: tied items after the
// first display a dash instead of repeating the rank number.
func RankLabels(scores []float64, precision int) []string {
	labels := make([]string, len(scores))
	rank := 0
	prev := 0.0
	for i, s := range scores {
		if !isFinite(s) {
			labels[i] = "-"
			continue
		}
		r := roundTo(s, precision)
		if rank > 0 && r == prev {
			labels[i] = "-"
			continue
		}
		rank++
		prev = r
		labels[i] = strconv.Itoa(rank)
	}
	return labels
}
