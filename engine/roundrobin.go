package engine

import (
	"github.com/piotronm/tourney-backend-sub000/models"
)

// RoundRobinOptions controls match generation across pools.
type RoundRobinOptions struct {
	// AvoidBackToBack assigns a SlotIndex to every match so that two matches
	// sharing a team never land in the same slot, spacing each team's
	// matches apart where the greedy pass can manage it. When false,
	// SlotIndex is left unset.
	AvoidBackToBack bool
}

// byeMarker pads an odd pool so the circle method always pairs evenly.
const byeMarker = -1

// GenerateRoundRobinMatches produces the complete circle-method round robin
// for every pool: each unordered pair of teams meets exactly once, for
// n*(n-1)/2 matches per pool of n. MatchNumber increments globally across
// pools in generation order.
func GenerateRoundRobinMatches(pools []models.Pool, opts RoundRobinOptions) ([]models.Match, error) {
	matches := make([]models.Match, 0)
	matchNumber := 0

	for _, pool := range pools {
		matches = append(matches, generatePoolMatches(pool, &matchNumber)...)
	}

	if opts.AvoidBackToBack {
		assignSlots(matches)
	}
	return matches, nil
}

// generatePoolMatches runs the circle method: one team is fixed, the rest
// rotate one position per round. Odd pools get a bye marker so pairing
// stays even; pairs involving the marker are simply not emitted, which
// leaves the marked team idle for that round.
func generatePoolMatches(pool models.Pool, matchNumber *int) []models.Match {
	ids := make([]int, len(pool.TeamIDs))
	copy(ids, pool.TeamIDs)
	if len(ids) < 2 {
		return nil
	}
	if len(ids)%2 == 1 {
		ids = append(ids, byeMarker)
	}

	n := len(ids)
	rounds := n - 1
	half := n / 2

	matches := make([]models.Match, 0, len(pool.TeamIDs)*(len(pool.TeamIDs)-1)/2)
	for r := 1; r <= rounds; r++ {
		for i := 0; i < half; i++ {
			a, b := ids[i], ids[n-1-i]
			if a == byeMarker || b == byeMarker {
				continue
			}
			*matchNumber++
			teamB := b
			matches = append(matches, models.Match{
				ID:          *matchNumber,
				PoolID:      pool.ID,
				Round:       r,
				MatchNumber: *matchNumber,
				TeamAID:     a,
				TeamBID:     &teamB,
				Status:      models.MatchStatusScheduled,
			})
		}

		// Rotate everything except ids[0] one step clockwise.
		last := ids[n-1]
		copy(ids[2:], ids[1:n-1])
		ids[1] = last
	}
	return matches
}

// assignSlots colors the shares-a-team conflict graph greedily, visiting
// matches in generation order. Each match takes the lowest slot where
// neither team is booked, preferring a slot at least two away from every
// prior slot of both teams when one exists within the current range.
func assignSlots(matches []models.Match) {
	occupied := make(map[int]map[int]bool)
	teamSlots := make(map[int][]int)
	maxSlot := -1

	for i := range matches {
		m := &matches[i]
		teams := []int{m.TeamAID}
		if m.TeamBID != nil {
			teams = append(teams, *m.TeamBID)
		}

		slot := -1
		for s := 0; s <= maxSlot+2; s++ {
			if slotConflicts(occupied[s], teams) {
				continue
			}
			if minSlotGap(teamSlots, teams, s) >= 2 {
				slot = s
				break
			}
		}
		if slot == -1 {
			for s := 0; ; s++ {
				if !slotConflicts(occupied[s], teams) {
					slot = s
					break
				}
			}
		}

		if occupied[slot] == nil {
			occupied[slot] = make(map[int]bool)
		}
		for _, id := range teams {
			occupied[slot][id] = true
			teamSlots[id] = append(teamSlots[id], slot)
		}
		if slot > maxSlot {
			maxSlot = slot
		}
		v := slot
		m.SlotIndex = &v
	}
}

func slotConflicts(booked map[int]bool, teams []int) bool {
	for _, id := range teams {
		if booked[id] {
			return true
		}
	}
	return false
}

// minSlotGap is the distance from s to the nearest slot already held by any
// of the given teams.
func minSlotGap(teamSlots map[int][]int, teams []int, s int) int {
	gap := int(^uint(0) >> 1)
	for _, id := range teams {
		for _, prev := range teamSlots[id] {
			d := s - prev
			if d < 0 {
				d = -d
			}
			if d < gap {
				gap = d
			}
		}
	}
	return gap
}
