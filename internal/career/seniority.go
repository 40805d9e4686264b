package career

import (
	"strings"

	"github.com/spigell/hh-scorer/internal/model"
)

// Trajectories.
const (
	StrongUpward = "strong_upward"
	SteadyUpward = "steady_upward"
	Lateral      = "lateral"
	Stagnant     = "stagnant"
	Declining    = "declining"
	Unclear      = "unclear"
)

const progressionWindow = 5

var (
	seniorKeywords = []string{"senior", "lead", "principal", "architect", "manager", "director", "vp", "head"}
	juniorKeywords = []string{"junior", "associate", "assistant", "intern", "trainee"}
)

// TitleSeniority scores a job title from 1 (intern) to 10 (C-level).
func TitleSeniority(title string) int {
	t := strings.ToLower(title)

	switch {
	case hasWord(t, "cto", "ceo", "cfo", "vp") || strings.Contains(t, "vice president"):
		return 10
	case containsAny(t, "director", "head of"):
		return 9
	case strings.Contains(t, "manager"):
		if containsAny(t, "senior", "lead") {
			return 7
		}
		return 6
	case containsAny(t, "architect", "principal"):
		return 6
	case containsAny(t, "lead", "senior"):
		return 5
	case containsAny(t, "engineer", "developer", "analyst", "specialist") && !containsAny(t, "junior", "associate", "trainee"):
		return 3
	case containsAny(t, "junior", "associate", "assistant"):
		return 2
	case containsAny(t, "intern", "trainee"):
		return 1
	}
	return 3
}

// IsSeniorTitle reports whether a title carries a senior keyword.
func IsSeniorTitle(title string) bool {
	return containsAny(strings.ToLower(title), seniorKeywords...)
}

// IsJuniorTitle reports whether a title carries a junior keyword.
func IsJuniorTitle(title string) bool {
	return containsAny(strings.ToLower(title), juniorKeywords...)
}

// Progression compares the seniority of the two most recent roles against
// older ones within the last five positions.
func Progression(history []model.Employment) model.CareerProgression {
	if len(history) < 2 {
		return model.CareerProgression{Trajectory: Unclear}
	}

	ordered := Ordered(history)
	if len(ordered) > progressionWindow {
		ordered = ordered[:progressionWindow]
	}

	levels := make([]int, len(ordered))
	for i, e := range ordered {
		levels[i] = TitleSeniority(e.JobTitle)
	}

	recent := float64(levels[0]+levels[1]) / 2
	older := recent
	if len(levels) > 2 {
		sum := 0
		for _, l := range levels[2:] {
			sum += l
		}
		older = float64(sum) / float64(len(levels)-2)
	}
	growth := recent - older

	var trajectory string
	switch {
	case growth >= 2:
		trajectory = StrongUpward
	case growth >= 1:
		trajectory = SteadyUpward
	case growth > -0.5:
		trajectory = Lateral
	case growth > -1.5:
		trajectory = Stagnant
	default:
		trajectory = Declining
	}

	return model.CareerProgression{
		Trajectory:       trajectory,
		GrowthRate:       growth,
		SeniorityLevels:  levels,
		CurrentSeniority: levels[0],
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func hasWord(s string, words ...string) bool {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	for _, f := range fields {
		for _, w := range words {
			if f == w {
				return true
			}
		}
	}
	return false
}
