package nutrient

// ProductType selects which threshold table a product is compared against.
type ProductType int

const (
	Solid ProductType = iota
	Liquid
)

func (t ProductType) String() string {
	switch t {
	case Solid:
		return "solid"
	case Liquid:
		return "liquid"
	}
	return "unknown"
}

// Submission is the validated per-serving data for one product.
type Submission struct {
	ProductName string
	ProductType ProductType
	ServingSize float64 // grams or millilitres, always > 0
	Calories    float64
	Sugar       float64 // g
	Fat         float64 // g
	Salt        float64 // mg
}

// Thresholds holds the per-100 g (or per-100 ml) reference values.
// None of the fields may be zero.
type Thresholds struct {
	Calories float64
	Sugar    float64
	Fat      float64
	Salt     float64
}

var (
	solidThresholds  = Thresholds{Calories: 250, Sugar: 3, Fat: 4.2, Salt: 625}
	liquidThresholds = Thresholds{Calories: 70, Sugar: 2, Fat: 1.5, Salt: 175}
)

// ThresholdsFor returns a copy of the table for t.
// Anything that is not Liquid is treated as Solid.
func ThresholdsFor(t ProductType) Thresholds {
	if t == Liquid {
		return liquidThresholds
	}
	return solidThresholds
}

// Display names, in report order.
const (
	NameCalories = "Calories"
	NameSugar    = "Total Added Sugar"
	NameFat      = "Total Added Fat"
	NameSalt     = "Salt (mg)"
)

// Sample is a nutrient amount scaled to the 100-unit basis, paired with
// the threshold it is checked against.
type Sample struct {
	Name      string
	Scaled    float64
	Threshold float64
}

// Comparison is the outcome of checking one Sample.
type Comparison struct {
	Name       string
	Difference float64
	Percentage float64
}
