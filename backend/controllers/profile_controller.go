package controllers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ineverydomain/exam-tracker/backend/config"
	"github.com/ineverydomain/exam-tracker/backend/examdate"
	"github.com/ineverydomain/exam-tracker/backend/models"
	"github.com/ineverydomain/exam-tracker/backend/store"
	"github.com/ineverydomain/exam-tracker/backend/streak"
	"github.com/ineverydomain/exam-tracker/backend/syllabus"
	"github.com/ineverydomain/exam-tracker/backend/utils"
)

type ProfileController struct {
	Store store.ProfileStore
	Cfg   *config.Config
}

func NewProfileController(profiles store.ProfileStore, cfg *config.Config) *ProfileController {
	return &ProfileController{Store: profiles, Cfg: cfg}
}

// GetProfile godoc
// @Summary Get the tracker profile
// @Description Returns the user's profile document. Runs the streak gap
// @Description check, so a streak broken by missed days reads as zero.
// @Tags profile
// @Produce json
// @Success 200 {object} models.Profile
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /profile [get]
func (pc *ProfileController) GetProfile(c *fiber.Ctx) error {
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

	if next, changed := streak.GapCheck(profile.StudyStreak, time.Now()); changed {
		updated := *profile
		updated.StudyStreak = next
		if err := pc.Store.Save(utils.ProfileKey(userID), &updated); err != nil {
			return utils.InternalServerError(c, "Could not update streak")
		}
		profile = &updated
	}

	return utils.Success(c, fiber.StatusOK, profile)
}

// CompleteOnboarding godoc
// @Summary Complete onboarding
// @Description Populates the profile with course, level, groups and exam date
// @Tags profile
// @Accept json
// @Produce json
// @Success 200 {object} models.Profile
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /profile/onboarding [post]
func (pc *ProfileController) CompleteOnboarding(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	type OnboardingInput struct {
		DisplayName string   `json:"displayName"`
		Course      string   `json:"course"`
		Level       string   `json:"level"`
		TargetExam  string   `json:"targetExam"`
		Groups      []string `json:"groups"`
	}

	var input OnboardingInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if strings.TrimSpace(input.DisplayName) == "" {
		input.DisplayName = "Student"
	}
	if !validCourse(input.Course) {
		return utils.ValidationError(c, errors.New("unknown course"))
	}
	if !syllabus.ValidLevel(input.Course, input.Level) {
		return utils.ValidationError(c, errors.New("unknown level for course"))
	}
	if err := examdate.Validate(input.TargetExam, time.Now()); err != nil {
		return utils.ValidationError(c, err)
	}
	if err := validateGroups(input.Course, input.Groups); err != nil {
		return utils.ValidationError(c, err)
	}

	profile, err := pc.Store.Load(utils.ProfileKey(userID))
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return utils.InternalServerError(c, "Could not load profile")
	}

	populated := models.Profile{
		DisplayName:    input.DisplayName,
		Course:         input.Course,
		Level:          input.Level,
		TargetExam:     input.TargetExam,
		Groups:         input.Groups,
		Progress:       map[string][]string{},
		CustomSubjects: []models.CustomSubject{},
		CreatedAt:      time.Now().Format(time.RFC3339),
	}
	if profile != nil {
		populated.Email = profile.Email
		populated.CreatedAt = profile.CreatedAt
	}
	if input.Course == syllabus.CourseOther {
		populated.Level = syllabus.LevelNotApplicable
		populated.Groups = []string{}
	}

	if err := pc.Store.Save(utils.ProfileKey(userID), &populated); err != nil {
		return utils.InternalServerError(c, "Could not save profile")
	}

	return utils.Success(c, fiber.StatusOK, populated)
}

// UpdateSettings godoc
// @Summary Update settings
// @Description Updates the target exam date and group selection
// @Tags profile
// @Accept json
// @Produce json
// @Success 200 {object} models.Profile
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /profile/settings [put]
func (pc *ProfileController) UpdateSettings(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	type SettingsInput struct {
		TargetExam string   `json:"targetExam"`
		Groups     []string `json:"groups"`
	}

	var input SettingsInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	// Settings entry is a strict call site: legacy free-text dates stay
	// readable, but new input must be a real future DD-MM-YYYY date.
	if err := examdate.Validate(input.TargetExam, time.Now()); err != nil {
		return utils.ValidationError(c, err)
	}

	profile, err := pc.Store.Load(utils.ProfileKey(userID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFound(c, "Profile not found")
		}
		return utils.InternalServerError(c, "Could not load profile")
	}

	updated := *profile
	updated.TargetExam = input.TargetExam

	// Group selection does not apply to the "Other" course.
	if updated.Course != syllabus.CourseOther && input.Groups != nil {
		if err := validateGroups(updated.Course, input.Groups); err != nil {
			return utils.ValidationError(c, err)
		}
		updated.Groups = input.Groups
	}

	if err := pc.Store.Save(utils.ProfileKey(userID), &updated); err != nil {
		return utils.InternalServerError(c, "Could not save profile")
	}

	return utils.Message(c, "Settings updated successfully!", updated)
}

func validCourse(course string) bool {
	for _, c := range syllabus.Courses() {
		if c == course {
			return true
		}
	}
	return false
}

func validateGroups(course string, groups []string) error {
	if course == syllabus.CourseOther {
		return nil
	}
	if len(groups) == 0 {
		return errors.New("select at least one group")
	}
	options := syllabus.GroupOptions()
	for _, g := range groups {
		valid := false
		for _, opt := range options {
			if g == opt {
				valid = true
				break
			}
		}
		if !valid {
			return errors.New("unknown group: " + g)
		}
	}
	return nil
}
