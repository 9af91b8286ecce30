package stats

import "math"

// Tier buckets a productivity score
type Tier string

const (
	TierExcellent         Tier = "excellent"
	TierGood              Tier = "good"
	TierAverage           Tier = "average"
	TierNeedsImprovement  Tier = "needs-improvement"
	TierInsufficientInput Tier = "insufficient-input"
)

// Score thresholds on the 0-10 scale
const (
	ThresholdExcellent = 8.0
	ThresholdGood      = 6.0
	ThresholdAverage   = 4.0
	MaxScore           = 10.0
)

// ProductivityResult is the outcome of the productivity calculator
type ProductivityResult struct {
	TasksPerHour float64
	Score        float64
	Tier         Tier
	// Efficiency is the score as a percentage of MaxScore
	Efficiency int
}

// Label is the human readable tier description
func (t Tier) Label() string {
	switch t {
	case TierExcellent:
		return "Excellent productivity!"
	case TierGood:
		return "Good productivity"
	case TierAverage:
		return "Average productivity"
	case TierNeedsImprovement:
		return "Room to improve"
	default:
		return "Enter the hours worked to calculate productivity"
	}
}

// Productivity scores tasks completed per hour worked on a 0-10 scale.
// Non-positive hours or negative tasks give TierInsufficientInput.
func Productivity(hours float64, tasks int) ProductivityResult {
	if hours <= 0 || tasks < 0 || math.IsNaN(hours) || math.IsInf(hours, 0) {
		return ProductivityResult{Tier: TierInsufficientInput}
	}

	perHour := float64(tasks) / hours
	score := math.Min(perHour*2, MaxScore)

	return ProductivityResult{
		TasksPerHour: perHour,
		Score:        score,
		Tier:         tierFor(score),
		Efficiency:   Percentage(score, MaxScore),
	}
}

func tierFor(score float64) Tier {
	switch {
	case score >= ThresholdExcellent:
		return TierExcellent
	case score >= ThresholdGood:
		return TierGood
	case score >= ThresholdAverage:
		return TierAverage
	default:
		return TierNeedsImprovement
	}
}
