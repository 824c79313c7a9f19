package progress

// Milestone is an achievement unlocked at a progress threshold.
type Milestone struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Threshold int    `json:"threshold"`
	Unlocked  bool   `json:"unlocked"`
}

var milestones = []Milestone{
	{ID: 1, Title: "Getting Started", Threshold: 0},
	{ID: 2, Title: "25% Complete", Threshold: 25},
	{ID: 3, Title: "Halfway There", Threshold: 50},
	{ID: 4, Title: "75% Complete", Threshold: 75},
	{ID: 5, Title: "Completed!", Threshold: 100},
}

// Milestones returns the milestone list with unlocked flags for the given
// overall percentage.
func Milestones(percent int) []Milestone {
	result := make([]Milestone, len(milestones))
	for i, m := range milestones {
		m.Unlocked = percent >= m.Threshold
		result[i] = m
	}
	return result
}
