package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ineverydomain/exam-tracker/backend/config"
	"github.com/ineverydomain/exam-tracker/backend/examdate"
	"github.com/ineverydomain/exam-tracker/backend/progress"
	"github.com/ineverydomain/exam-tracker/backend/store"
	"github.com/ineverydomain/exam-tracker/backend/syllabus"
	"github.com/ineverydomain/exam-tracker/backend/utils"
)

type DashboardController struct {
	Store store.ProfileStore
	Cfg   *config.Config
}

func NewDashboardController(profiles store.ProfileStore, cfg *config.Config) *DashboardController {
	return &DashboardController{Store: profiles, Cfg: cfg}
}

// GetDashboard godoc
// @Summary Dashboard summary
// @Description Returns resolved papers with per-paper completion, custom
// @Description subjects with per-subject completion, the overall percentage,
// @Description the streak and the exam countdown in one payload
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /dashboard [get]
func (dc *DashboardController) GetDashboard(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, dc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	profile, err := dc.Store.Load(utils.ProfileKey(userID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFound(c, "Profile not found")
		}
		return utils.InternalServerError(c, "Could not load profile")
	}

	now := time.Now()
	papers := syllabus.Papers(profile.Course, profile.Level, profile.Groups)

	paperViews := make([]fiber.Map, 0, len(papers))
	for _, paper := range papers {
		completed := profile.CompletedChapters(paper.ID)
		paperViews = append(paperViews, fiber.Map{
			"id":                paper.ID,
			"name":              paper.Name,
			"chapters":          paper.Chapters,
			"completedChapters": completed,
			"percent":           progress.PaperPercent(paper, completed),
		})
	}

	subjectViews := make([]fiber.Map, 0, len(profile.CustomSubjects))
	for _, subject := range profile.CustomSubjects {
		subjectViews = append(subjectViews, fiber.Map{
			"id":        subject.ID,
			"name":      subject.Name,
			"modules":   subject.Modules,
			"createdAt": subject.CreatedAt,
			"percent":   progress.SubjectPercent(subject),
		})
	}

	overall := progress.Overall(papers, profile.Progress, profile.CustomSubjects)

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"displayName":    profile.DisplayName,
		"course":         profile.Course,
		"level":          profile.Level,
		"overall":        overall,
		"papers":         paperViews,
		"customSubjects": subjectViews,
		"studyStreak":    profile.StudyStreak,
		"countdown":      examdate.Until(profile.TargetExam, now),
		"targetExam":     profile.TargetExam,
		"milestones":     progress.Milestones(overall),
	})
}
