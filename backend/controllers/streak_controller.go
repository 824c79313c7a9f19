package controllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ineverydomain/exam-tracker/backend/config"
	"github.com/ineverydomain/exam-tracker/backend/store"
	"github.com/ineverydomain/exam-tracker/backend/streak"
	"github.com/ineverydomain/exam-tracker/backend/utils"
)

type StreakController struct {
	Store store.ProfileStore
	Cfg   *config.Config
}

func NewStreakController(profiles store.ProfileStore, cfg *config.Config) *StreakController {
	return &StreakController{Store: profiles, Cfg: cfg}
}

// CheckIn godoc
// @Summary Daily study check-in
// @Description Records whether the user studied today and updates the streak
// @Tags streak
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /streak/checkin [post]
func (sc *StreakController) CheckIn(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, sc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	type CheckInInput struct {
		Studied bool `json:"studied"`
	}

	var input CheckInInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	profile, err := sc.Store.Load(utils.ProfileKey(userID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFound(c, "Profile not found")
		}
		return utils.InternalServerError(c, "Could not load profile")
	}

	next, result := streak.CheckIn(profile.StudyStreak, input.Studied, time.Now())

	if result == streak.AlreadyRecorded {
		// Affirmative check-ins have effect once per calendar day; nothing
		// is written.
		return utils.Message(c, "You've already logged your study for today!", fiber.Map{
			"streak": profile.StudyStreak,
			"result": "already_recorded",
		})
	}

	updated := *profile
	updated.StudyStreak = next
	if err := sc.Store.Save(utils.ProfileKey(userID), &updated); err != nil {
		return utils.InternalServerError(c, "Could not save streak")
	}

	message := "No worries! Tomorrow is a new day to start your streak."
	resultName := "cleared"
	switch result {
	case streak.Extended:
		message = fmt.Sprintf("Great! Your streak is now %d days!", next.Current)
		resultName = "extended"
	case streak.Started:
		message = fmt.Sprintf("Great! Your streak is now %d days!", next.Current)
		resultName = "started"
	}

	return utils.Message(c, message, fiber.Map{
		"streak": next,
		"result": resultName,
	})
}
