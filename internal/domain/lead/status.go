package lead

// DisplayCategory groups statuses for badge rendering.
type DisplayCategory string

const (
	CategoryPending    DisplayCategory = "pending"
	CategoryProcessing DisplayCategory = "processing"
	CategoryCompleted  DisplayCategory = "completed"
	CategoryCancelled  DisplayCategory = "cancelled"
	CategoryNeutral    DisplayCategory = "neutral"
)

// Classify never fails: statuses edited outside this service fall back to CategoryNeutral.
// Each known status has the category of the same name.
func Classify(status string) DisplayCategory {
	if st := Status(status); st.IsValid() {
		return DisplayCategory(st)
	}
	return CategoryNeutral
}

func (c DisplayCategory) Tone() string {
	switch c {
	case CategoryPending:
		return "amber"
	case CategoryProcessing:
		return "blue"
	case CategoryCompleted:
		return "emerald"
	case CategoryCancelled:
		return "red"
	default:
		return "gray"
	}
}

func (c DisplayCategory) String() string {
	return string(c)
}
