package progress

import (
	"math"

	"github.com/ineverydomain/exam-tracker/backend/models"
	"github.com/ineverydomain/exam-tracker/backend/syllabus"
)

// Overall computes the aggregate completion percentage across the resolved
// syllabus papers and all custom subjects. Completed chapter counts are taken
// from the progress map as recorded, so entries left over from a previous
// course selection still count; the tracker never drops user data on a
// selection change. Returns 0 when there is nothing to track.
func Overall(papers []syllabus.Paper, progressMap map[string][]string, subjects []models.CustomSubject) int {
	total := 0
	for _, paper := range papers {
		total += len(paper.Chapters)
	}
	completed := 0
	for _, chapters := range progressMap {
		completed += len(chapters)
	}

	for _, subject := range subjects {
		total += len(subject.Modules)
		for _, module := range subject.Modules {
			if module.Completed {
				completed++
			}
		}
	}

	return percent(completed, total)
}

// PaperPercent is the completion percentage of a single paper, 0 when the
// paper has no chapters.
func PaperPercent(paper syllabus.Paper, completedIDs []string) int {
	return percent(len(completedIDs), len(paper.Chapters))
}

// SubjectPercent is the completion percentage of a single custom subject, 0
// when the subject has no modules.
func SubjectPercent(subject models.CustomSubject) int {
	completed := 0
	for _, module := range subject.Modules {
		if module.Completed {
			completed++
		}
	}
	return percent(completed, len(subject.Modules))
}

func percent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
