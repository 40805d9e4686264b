package scoring

import (
	"math"

	"github.com/spigell/hh-scorer/internal/model"
	"github.com/spigell/hh-scorer/internal/taxonomy"
)

// Aggregation is the weighted base score and the weights that produced it.
type Aggregation struct {
	Base    int
	Profile string
	// Weights are renormalised over the sections that had data.
	Weights       map[model.Section]float64
	Contributions map[model.Section]float64
}

// Aggregate combines section scores with the profile weights. Sections absent
// from scores are excluded rather than counted as zero.
func Aggregate(scores map[model.Section]float64, profile taxonomy.Profile) Aggregation {
	agg := Aggregation{
		Profile:       profile.Name,
		Weights:       make(map[model.Section]float64, len(scores)),
		Contributions: make(map[model.Section]float64, len(scores)),
	}

	var total float64
	for _, sec := range model.Sections {
		if _, ok := scores[sec]; ok {
			total += profile.Weights[sec]
		}
	}
	if total == 0 {
		return agg
	}

	var sum float64
	for _, sec := range model.Sections {
		score, ok := scores[sec]
		if !ok {
			continue
		}
		w := profile.Weights[sec] / total
		agg.Weights[sec] = w
		agg.Contributions[sec] = clamp(score) * w
		sum += clamp(score) * w
	}
	agg.Base = clampInt(int(math.Round(sum)))
	return agg
}
