package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ineverydomain/exam-tracker/backend/config"
	"github.com/ineverydomain/exam-tracker/backend/models"
	"github.com/ineverydomain/exam-tracker/backend/store"
	"github.com/ineverydomain/exam-tracker/backend/subjects"
	"github.com/ineverydomain/exam-tracker/backend/utils"
)

type SubjectsController struct {
	Store store.ProfileStore
	Cfg   *config.Config
}

func NewSubjectsController(profiles store.ProfileStore, cfg *config.Config) *SubjectsController {
	return &SubjectsController{Store: profiles, Cfg: cfg}
}

// AddSubject godoc
// @Summary Add a custom subject
// @Description Creates a custom subject with numbered modules
// @Tags subjects
// @Accept json
// @Produce json
// @Success 201 {object} models.CustomSubject
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /subjects [post]
func (sc *SubjectsController) AddSubject(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, sc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	type AddInput struct {
		Name        string `json:"name"`
		ModuleCount int    `json:"moduleCount"`
	}

	var input AddInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	return sc.withProfile(c, userID, func(profile *models.Profile) (string, error) {
		list, _, err := subjects.Add(profile.CustomSubjects, input.Name, input.ModuleCount, time.Now())
		if err != nil {
			return "", err
		}
		profile.CustomSubjects = list
		return "Custom subject added successfully!", nil
	})
}

// DeleteSubject godoc
// @Summary Delete a custom subject
// @Tags subjects
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /subjects/{id} [delete]
func (sc *SubjectsController) DeleteSubject(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, sc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	subjectID := c.Params("id")

	return sc.withProfile(c, userID, func(profile *models.Profile) (string, error) {
		// Deleting an absent id is a no-op.
		profile.CustomSubjects = subjects.Delete(profile.CustomSubjects, subjectID)
		return "Subject deleted successfully.", nil
	})
}

// ToggleModule godoc
// @Summary Toggle a module's completion
// @Tags subjects
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /subjects/{id}/modules/{moduleId}/toggle [post]
func (sc *SubjectsController) ToggleModule(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, sc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	subjectID := c.Params("id")
	moduleID := c.Params("moduleId")

	return sc.withProfile(c, userID, func(profile *models.Profile) (string, error) {
		list, err := subjects.ToggleModule(profile.CustomSubjects, subjectID, moduleID)
		if err != nil {
			return "", err
		}
		profile.CustomSubjects = list
		return "", nil
	})
}

// RenameModule godoc
// @Summary Rename a module
// @Description Renames one module; completion state is untouched
// @Tags subjects
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /subjects/{id}/modules/{moduleId} [put]
func (sc *SubjectsController) RenameModule(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, sc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	subjectID := c.Params("id")
	moduleID := c.Params("moduleId")

	type RenameInput struct {
		Name string `json:"name"`
	}

	var input RenameInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	return sc.withProfile(c, userID, func(profile *models.Profile) (string, error) {
		list, err := subjects.RenameModule(profile.CustomSubjects, subjectID, moduleID, input.Name)
		if err != nil {
			return "", err
		}
		profile.CustomSubjects = list
		return "", nil
	})
}

// withProfile loads the profile, applies mutate, and persists the result.
// The stored document only changes when both the mutation and the save
// succeed.
func (sc *SubjectsController) withProfile(c *fiber.Ctx, userID uint, mutate func(*models.Profile) (string, error)) error {
	profile, err := sc.Store.Load(utils.ProfileKey(userID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFound(c, "Profile not found")
		}
		return utils.InternalServerError(c, "Could not load profile")
	}

	updated := *profile
	message, err := mutate(&updated)
	if err != nil {
		if errors.Is(err, subjects.ErrNotFound) {
			return utils.NotFound(c, err.Error())
		}
		return utils.ValidationError(c, err)
	}

	if err := sc.Store.Save(utils.ProfileKey(userID), &updated); err != nil {
		return utils.InternalServerError(c, "Could not save profile")
	}

	if message == "" {
		return utils.Success(c, fiber.StatusOK, fiber.Map{
			"customSubjects": updated.CustomSubjects,
		})
	}
	return utils.Message(c, message, fiber.Map{
		"customSubjects": updated.CustomSubjects,
	})
}
