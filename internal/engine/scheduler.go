package engine

import (
	"log"
	"math"

	"wayfare/pkg/utils"
)

// DayCapacity caps how much of a single itinerary day may be spent visiting
// and traveling. Both the scheduler and the renderer work from the same
// policy so day boundaries cannot disagree.
type DayCapacity struct {
	MaxVisitHours  float64
	MaxTravelHours float64
}

func DefaultDayCapacity() DayCapacity {
	return DayCapacity{MaxVisitHours: 5.0, MaxTravelHours: 3.0}
}

// Assignment maps 1-based day numbers to ordered candidate indices.
// Unplaced lists the pool indices that did not fit anywhere.
type Assignment struct {
	Days     map[int][]int
	Unplaced []int
}

// TotalPlaced returns how many candidates were scheduled across all days.
func (a Assignment) TotalPlaced() int {
	total := 0
	for _, indices := range a.Days {
		total += len(indices)
	}
	return total
}

// Schedule assigns candidates to days greedily: each round picks the
// highest-scoring unvisited candidate that fits the remaining budget and the
// day's visit/travel capacity. Ties go to the lowest pool index, which is
// deterministic because the pool itself is deterministically ordered.
//
// budgetRef is the budget in the reference currency; nil means unlimited.
func Schedule(
	candidates []Candidate,
	travelMatrix [][]float64,
	tripDays int,
	budgetRef *float64,
	capacity DayCapacity,
) (Assignment, error) {
	if tripDays < 1 {
		return Assignment{}, utils.ErrInvalidInput
	}
	if len(candidates) == 0 {
		return Assignment{}, utils.ErrNoSuitableCandidates
	}

	remainingBudget := math.Inf(1)
	if budgetRef != nil {
		remainingBudget = *budgetRef
	}

	visited := make([]bool, len(candidates))
	visitedCount := 0
	days := make(map[int][]int, tripDays)

	for day := 1; day <= tripDays && visitedCount < len(candidates); day++ {
		days[day] = []int{}
		lastPlaced := -1
		dayVisitHours := 0.0
		dayTravelHours := 0.0

		for visitedCount < len(candidates) {
			best := -1
			bestScore := math.Inf(-1)
			bestTravel := 0.0

			for i, cand := range candidates {
				if visited[i] {
					continue
				}
				if cand.CostRef > remainingBudget {
					continue
				}
				if dayVisitHours+cand.VisitHours > capacity.MaxVisitHours {
					continue
				}

				travel := 0.0
				if lastPlaced >= 0 {
					travel = travelMatrix[lastPlaced][i]
					if dayTravelHours+travel > capacity.MaxTravelHours {
						continue
					}
				}

				if cand.Score > bestScore {
					bestScore = cand.Score
					best = i
					bestTravel = travel
				}
			}

			if best < 0 {
				break // nothing fits; leave the day short and move on
			}

			days[day] = append(days[day], best)
			visited[best] = true
			visitedCount++

			remainingBudget -= candidates[best].CostRef
			dayVisitHours += candidates[best].VisitHours
			dayTravelHours += bestTravel
			lastPlaced = best
		}
	}

	assignment := Assignment{Days: days}
	for i := range candidates {
		if !visited[i] {
			assignment.Unplaced = append(assignment.Unplaced, i)
		}
	}

	if assignment.TotalPlaced() == 0 {
		log.Printf("scheduler: no candidate fit within budget and day caps")
		return Assignment{}, utils.ErrGenerationFailed
	}

	return assignment, nil
}
