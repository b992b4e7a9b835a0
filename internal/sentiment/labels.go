package sentiment

const (
	LabelPositive = "positive"
	LabelNegative = "negative"
	LabelNeutral  = "neutral"

	SubjectivityHigh = "high"
	SubjectivityLow  = "low"

	// neutralBand is the polarity magnitude at or below which text counts
	// as neutral.
	neutralBand = 0.05
)

// Label classifies a polarity score.
func Label(polarity float64) string {
	switch {
	case polarity > neutralBand:
		return LabelPositive
	case polarity < -neutralBand:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// SubjectivityLabel classifies a subjectivity score.
func SubjectivityLabel(subjectivity float64) string {
	if subjectivity > 0.5 {
		return SubjectivityHigh
	}
	return SubjectivityLow
}

// Emoji returns the marker shown next to a sentence with the given label.
func Emoji(label string) string {
	switch label {
	case LabelPositive:
		return "😊"
	case LabelNegative:
		return "😟"
	default:
		return "😐"
	}
}
