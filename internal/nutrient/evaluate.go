package nutrient

// Scale converts a per-serving amount to the 100 g / 100 ml basis.
func Scale(raw, servingSize float64) float64 {
	return raw / servingSize * 100
}

// Samples scales every nutrient of s and pairs it with the threshold for
// s.ProductType. The order is fixed: calories, sugar, fat, salt.
func Samples(s Submission) []Sample {
	th := ThresholdsFor(s.ProductType)
	return []Sample{
		{Name: NameCalories, Scaled: Scale(s.Calories, s.ServingSize), Threshold: th.Calories},
		{Name: NameSugar, Scaled: Scale(s.Sugar, s.ServingSize), Threshold: th.Sugar},
		{Name: NameFat, Scaled: Scale(s.Fat, s.ServingSize), Threshold: th.Fat},
		{Name: NameSalt, Scaled: Scale(s.Salt, s.ServingSize), Threshold: th.Salt},
	}
}

// Compare computes the absolute and relative distance of a sample from its
// threshold. Values are kept at full precision; rounding happens on output.
func Compare(s Sample) Comparison {
	diff := s.Scaled - s.Threshold
	return Comparison{
		Name:       s.Name,
		Difference: diff,
		Percentage: diff / s.Threshold * 100,
	}
}

// Evaluate runs Compare over Samples(s).
func Evaluate(s Submission) []Comparison {
	samples := Samples(s)
	out := make([]Comparison, len(samples))
	for i, smp := range samples {
		out[i] = Compare(smp)
	}
	return out
}
