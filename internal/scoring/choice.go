package scoring

// Value is the numeric weight of a Likert choice.
type Value int

// MaxValue is the weight of the strongest choice.
const MaxValue Value = 3

// Choice is one selectable option of a question block.
type Choice struct {
	Value Value
	Label string
}

// Choices lists the four options every question offers, in display order.
var Choices = []Choice{
	{Value: 3, Label: "very true"},
	{Value: 2, Label: "somewhat true"},
	{Value: 1, Label: "slightly true"},
	{Value: 0, Label: "not true"},
}

// Valid reports whether v is one of the offered choice values.
func (v Value) Valid() bool {
	return v >= 0 && v <= MaxValue
}

// Label returns the display label for v, or "" when v is not offered.
func (v Value) Label() string {
	for _, c := range Choices {
		if c.Value == v {
			return c.Label
		}
	}
	return ""
}
