package models

// Profile is the per-user tracker document. The JSON field names are the
// stored document shape and are shared with previously written data, so they
// must not be renamed.
type Profile struct {
	Email          string              `json:"email"`
	DisplayName    string              `json:"displayName"`
	Course         string              `json:"course"`
	Level          string              `json:"level"`
	TargetExam     string              `json:"targetExam"`
	Groups         []string            `json:"groups"`
	Progress       map[string][]string `json:"progress"`
	CustomSubjects []CustomSubject     `json:"customSubjects"`
	StudyStreak    StudyStreak         `json:"studyStreak"`
	CreatedAt      string              `json:"createdAt"`
}

// CustomSubject is a user-defined analog of a syllabus paper.
type CustomSubject struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Modules   []ModuleItem `json:"modules"`
	CreatedAt string       `json:"createdAt"`
}

// ModuleItem is the smallest trackable unit inside a custom subject.
type ModuleItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// StudyStreak counts consecutive calendar days with an affirmative check-in.
// LastCheckedDate is an RFC3339 timestamp, or "" before the first check-in.
type StudyStreak struct {
	Current         int    `json:"current"`
	LastCheckedDate string `json:"lastCheckedDate"`
}

// CompletedChapters returns the recorded chapter ids for a paper. A missing
// key means zero completion.
func (p *Profile) CompletedChapters(paperID string) []string {
	if p.Progress == nil {
		return nil
	}
	return p.Progress[paperID]
}
