package strength

import "github.com/nao1215/pwstrength/internal/model"

// Classify maps a total score to a label using inclusive upper bounds.
// The score is compared as is; 3.0 is Weak while 3.01 is Moderate.
func Classify(score float64) model.Label {
	switch {
	case score <= 0:
		return model.LabelVeryWeak
	case score <= 3:
		return model.LabelWeak
	case score <= 6:
		return model.LabelModerate
	case score <= 9:
		return model.LabelStrong
	case score <= 12:
		return model.LabelVeryStrong
	default:
		return model.LabelExcellent
	}
}
