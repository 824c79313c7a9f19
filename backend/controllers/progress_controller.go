package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ineverydomain/exam-tracker/backend/config"
	"github.com/ineverydomain/exam-tracker/backend/progress"
	"github.com/ineverydomain/exam-tracker/backend/store"
	"github.com/ineverydomain/exam-tracker/backend/syllabus"
	"github.com/ineverydomain/exam-tracker/backend/utils"
)

type ProgressController struct {
	Store store.ProfileStore
	Cfg   *config.Config
}

func NewProgressController(profiles store.ProfileStore, cfg *config.Config) *ProgressController {
	return &ProgressController{Store: profiles, Cfg: cfg}
}

// ToggleChapter godoc
// @Summary Toggle chapter completion
// @Description Flips one chapter's completion state for a syllabus paper
// @Tags progress
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/toggle [post]
func (pc *ProgressController) ToggleChapter(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	type ToggleInput struct {
		PaperID   string `json:"paperId"`
		ChapterID string `json:"chapterId"`
	}

	var input ToggleInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	profile, err := pc.Store.Load(utils.ProfileKey(userID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFound(c, "Profile not found")
		}
		return utils.InternalServerError(c, "Could not load profile")
	}

	papers := syllabus.Papers(profile.Course, profile.Level, profile.Groups)
	if !chapterInPapers(papers, input.PaperID, input.ChapterID) {
		return utils.NotFound(c, "Paper or chapter not found")
	}

	updated := *profile
	updated.Progress = toggledProgress(profile.Progress, input.PaperID, input.ChapterID)

	if err := pc.Store.Save(utils.ProfileKey(userID), &updated); err != nil {
		return utils.InternalServerError(c, "Could not save progress")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"progress": updated.Progress[input.PaperID],
		"overall":  progress.Overall(papers, updated.Progress, updated.CustomSubjects),
	})
}

// GetMilestones godoc
// @Summary Get achievement milestones
// @Description Returns milestones with unlocked flags for the overall progress
// @Tags progress
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /progress/milestones [get]
func (pc *ProgressController) GetMilestones(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	profile, err := pc.Store.Load(utils.ProfileKey(userID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFound(c, "Profile not found")
		}
		return utils.InternalServerError(c, "Could not load profile")
	}

	papers := syllabus.Papers(profile.Course, profile.Level, profile.Groups)
	overall := progress.Overall(papers, profile.Progress, profile.CustomSubjects)

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"overall":    overall,
		"milestones": progress.Milestones(overall),
	})
}

func chapterInPapers(papers []syllabus.Paper, paperID, chapterID string) bool {
	for _, paper := range papers {
		if paper.ID != paperID {
			continue
		}
		for _, chapter := range paper.Chapters {
			if chapter.ID == chapterID {
				return true
			}
		}
	}
	return false
}

// toggledProgress returns a new progress map with chapterID flipped for
// paperID. Entries for other papers carry over untouched, including ones no
// longer in the resolved catalog.
func toggledProgress(current map[string][]string, paperID, chapterID string) map[string][]string {
	next := make(map[string][]string, len(current)+1)
	for paper, chapters := range current {
		next[paper] = chapters
	}

	recorded := next[paperID]
	updated := make([]string, 0, len(recorded)+1)
	removed := false
	for _, id := range recorded {
		if id == chapterID {
			removed = true
			continue
		}
		updated = append(updated, id)
	}
	if !removed {
		updated = append(updated, chapterID)
	}
	next[paperID] = updated
	return next
}
