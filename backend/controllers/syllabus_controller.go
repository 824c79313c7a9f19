package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ineverydomain/exam-tracker/backend/config"
	"github.com/ineverydomain/exam-tracker/backend/store"
	"github.com/ineverydomain/exam-tracker/backend/syllabus"
	"github.com/ineverydomain/exam-tracker/backend/utils"
)

type SyllabusController struct {
	Store store.ProfileStore
	Cfg   *config.Config
}

func NewSyllabusController(profiles store.ProfileStore, cfg *config.Config) *SyllabusController {
	return &SyllabusController{Store: profiles, Cfg: cfg}
}

// GetCourses godoc
// @Summary List selectable courses
// @Description Returns the course, level and group options for onboarding
// @Tags syllabus
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /syllabus/courses [get]
func (sc *SyllabusController) GetCourses(c *fiber.Ctx) error {
	levels := map[string][]string{}
	for _, course := range syllabus.Courses() {
		levels[course] = syllabus.Levels(course)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"courses": syllabus.Courses(),
		"levels":  levels,
		"groups":  syllabus.GroupOptions(),
	})
}

// GetPapers godoc
// @Summary Resolved syllabus papers
// @Description Returns the papers for the user's course/level/group selection
// @Tags syllabus
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /syllabus/papers [get]
func (sc *SyllabusController) GetPapers(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, sc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	profile, err := sc.Store.Load(utils.ProfileKey(userID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFound(c, "Profile not found")
		}
		return utils.InternalServerError(c, "Could not load profile")
	}

	papers := syllabus.Papers(profile.Course, profile.Level, profile.Groups)
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"papers": papers,
	})
}
