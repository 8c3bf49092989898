package engine

import (
	"fmt"
	"sort"

	"github.com/piotronm/tourney-backend-sub000/models"
)

// ScheduleOptions configures court assignment.
type ScheduleOptions struct {
	NumberOfCourts       int `json:"number_of_courts"`
	MatchDurationMinutes int `json:"match_duration_minutes"`
	BreakMinutes         int `json:"break_minutes"`
}

// ValidationResult reports invariant violations found in a schedule.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// ScheduleMatchesToCourts places matches onto courts and time slots, one
// round at a time: a round begins only once the previous round is fully
// placed. Within a round the scan is greedy in match order; a match takes
// the current slot when both its teams are free and a court is open, and
// the slot advances when nothing more fits. This is a heuristic, not an
// optimal packer; the placement order is part of the contract.
//
// Byes take no court time and receive no assignment. The slot counter and
// the running start-minute offset carry across round boundaries.
func ScheduleMatchesToCourts(matches []models.Match, opts ScheduleOptions) ([]models.CourtAssignment, error) {
	if opts.NumberOfCourts < 1 {
		return nil, ErrInvalidCourtCount
	}

	rounds := make(map[int][]models.Match)
	var roundKeys []int
	for _, m := range matches {
		if m.TeamBID == nil {
			continue
		}
		if _, seen := rounds[m.Round]; !seen {
			roundKeys = append(roundKeys, m.Round)
		}
		rounds[m.Round] = append(rounds[m.Round], m)
	}
	sort.Ints(roundKeys)

	slotMinutes := opts.MatchDurationMinutes + opts.BreakMinutes
	assignments := make([]models.CourtAssignment, 0, len(matches))
	slot := 1

	for _, r := range roundKeys {
		pending := rounds[r]
		for len(pending) > 0 {
			busy := make(map[int]bool)
			courtsUsed := 0

			remaining := make([]models.Match, 0, len(pending))
			for _, m := range pending {
				if courtsUsed < opts.NumberOfCourts && !busy[m.TeamAID] && !busy[*m.TeamBID] {
					courtsUsed++
					busy[m.TeamAID] = true
					busy[*m.TeamBID] = true
					assignments = append(assignments, models.CourtAssignment{
						MatchID:               m.ID,
						CourtNumber:           courtsUsed,
						TimeSlot:              slot,
						EstimatedStartMinutes: (slot - 1) * slotMinutes,
					})
				} else {
					remaining = append(remaining, m)
				}
			}

			pending = remaining
			if len(pending) > 0 {
				slot++
			}
		}
		// Next round starts on a fresh slot.
		slot++
	}

	return assignments, nil
}

// ValidateSchedule confirms that no team appears twice in one time slot and
// that no (court, slot) pair hosts two matches. The pipeline service runs it
// as a gate after scheduling; it also stands alone for external schedules.
func ValidateSchedule(assignments []models.CourtAssignment, matches []models.Match) ValidationResult {
	byID := make(map[int]models.Match, len(matches))
	for _, m := range matches {
		byID[m.ID] = m
	}

	type courtSlot struct{ court, slot int }
	type teamSlot struct{ team, slot int }
	courtBooked := make(map[courtSlot]int)
	teamBooked := make(map[teamSlot]int)

	var errs []string
	for _, a := range assignments {
		cs := courtSlot{a.CourtNumber, a.TimeSlot}
		if prev, taken := courtBooked[cs]; taken {
			errs = append(errs, fmt.Sprintf(
				"court %d double-booked at slot %d (matches %d and %d)",
				a.CourtNumber, a.TimeSlot, prev, a.MatchID))
		}
		courtBooked[cs] = a.MatchID

		m, known := byID[a.MatchID]
		if !known {
			errs = append(errs, fmt.Sprintf("assignment references unknown match %d", a.MatchID))
			continue
		}

		teams := []int{m.TeamAID}
		if m.TeamBID != nil {
			teams = append(teams, *m.TeamBID)
		}
		for _, id := range teams {
			ts := teamSlot{id, a.TimeSlot}
			if prev, taken := teamBooked[ts]; taken {
				errs = append(errs, fmt.Sprintf(
					"team %d booked twice at slot %d (matches %d and %d)",
					id, a.TimeSlot, prev, a.MatchID))
			}
			teamBooked[ts] = a.MatchID
		}
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}
