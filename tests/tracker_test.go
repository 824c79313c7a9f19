package tests

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestOnboardingValidation(t *testing.T) {
	base := map[string]interface{}{
		"displayName": "Test Student",
		"course":      "CA",
		"level":       "Foundation",
		"targetExam":  "25-12-2099",
		"groups":      []string{"Group 1"},
	}

	bad := func(key string, value interface{}) map[string]interface{} {
		input := map[string]interface{}{}
		for k, v := range base {
			input[k] = v
		}
		input[key] = value
		return input
	}

	resp := request(t, "POST", "/api/profile/onboarding", bad("targetExam", "2099-12-25"))
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp = request(t, "POST", "/api/profile/onboarding", bad("targetExam", "01-01-2020"))
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp = request(t, "POST", "/api/profile/onboarding", bad("course", "MBA"))
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp = request(t, "POST", "/api/profile/onboarding", bad("level", "Professional"))
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp = request(t, "POST", "/api/profile/onboarding", bad("groups", []string{}))
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCompleteOnboarding(t *testing.T) {
	resp := request(t, "POST", "/api/profile/onboarding", map[string]interface{}{
		"displayName": "Test Student",
		"course":      "CA",
		"level":       "Foundation",
		"targetExam":  "25-12-2099",
		"groups":      []string{"Group 1"},
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decode(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, "CA", data["course"])
	assert.Equal(t, "Foundation", data["level"])
	assert.Equal(t, "student@example.com", data["email"])
}

func TestGetPapers(t *testing.T) {
	resp := request(t, "GET", "/api/syllabus/papers", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decode(t, resp)["data"].(map[string]interface{})
	papers := data["papers"].([]interface{})
	assert.Len(t, papers, 2)

	first := papers[0].(map[string]interface{})
	assert.Equal(t, "ca_found_g1_p1", first["id"])
}

func TestToggleChapter(t *testing.T) {
	resp := request(t, "POST", "/api/progress/toggle", map[string]string{
		"paperId":   "ca_found_g1_p1",
		"chapterId": "ppa_ch1",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// 1 of 7 chapters -> 14%.
	data := decode(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, float64(14), data["overall"])
	assert.Equal(t, []interface{}{"ppa_ch1"}, data["progress"])
}

func TestToggleChapterUnknownIDs(t *testing.T) {
	resp := request(t, "POST", "/api/progress/toggle", map[string]string{
		"paperId":   "ca_found_g1_p1",
		"chapterId": "no_such_chapter",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = request(t, "POST", "/api/progress/toggle", map[string]string{
		"paperId":   "no_such_paper",
		"chapterId": "ppa_ch1",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAddSubjectValidation(t *testing.T) {
	resp := request(t, "POST", "/api/subjects", map[string]interface{}{
		"name": "", "moduleCount": 5,
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp = request(t, "POST", "/api/subjects", map[string]interface{}{
		"name": "Physics", "moduleCount": 0,
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp = request(t, "POST", "/api/subjects", map[string]interface{}{
		"name": "Physics", "moduleCount": 101,
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

var testSubjectID string

func TestAddSubject(t *testing.T) {
	resp := request(t, "POST", "/api/subjects", map[string]interface{}{
		"name": "Physics", "moduleCount": 3,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decode(t, resp)["data"].(map[string]interface{})
	list := data["customSubjects"].([]interface{})
	assert.Len(t, list, 1)

	subject := list[0].(map[string]interface{})
	testSubjectID = subject["id"].(string)
	assert.Equal(t, "Physics", subject["name"])

	modules := subject["modules"].([]interface{})
	assert.Len(t, modules, 3)
	first := modules[0].(map[string]interface{})
	assert.Equal(t, "Module 1", first["name"])
	assert.Equal(t, false, first["completed"])
}

func TestToggleModuleAPI(t *testing.T) {
	resp := request(t, "POST", "/api/subjects/"+testSubjectID+"/modules/module_1/toggle", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decode(t, resp)["data"].(map[string]interface{})
	subject := data["customSubjects"].([]interface{})[0].(map[string]interface{})
	module := subject["modules"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, true, module["completed"])

	resp = request(t, "POST", "/api/subjects/"+testSubjectID+"/modules/module_9/toggle", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRenameModuleAPI(t *testing.T) {
	resp := request(t, "PUT", "/api/subjects/"+testSubjectID+"/modules/module_1", map[string]string{
		"name": "one two three four five six seven eight nine ten",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp = request(t, "PUT", "/api/subjects/"+testSubjectID+"/modules/module_1", map[string]string{
		"name": "Mechanics Basics",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decode(t, resp)["data"].(map[string]interface{})
	subject := data["customSubjects"].([]interface{})[0].(map[string]interface{})
	module := subject["modules"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "Mechanics Basics", module["name"])
	assert.Equal(t, true, module["completed"], "rename keeps completion state")
}

func TestStreakCheckIn(t *testing.T) {
	resp := request(t, "POST", "/api/streak/checkin", map[string]bool{"studied": true})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decode(t, resp)
	data := result["data"].(map[string]interface{})
	assert.Equal(t, "started", data["result"])
	streak := data["streak"].(map[string]interface{})
	assert.Equal(t, float64(1), streak["current"])

	// Second affirmative the same day has no effect.
	resp = request(t, "POST", "/api/streak/checkin", map[string]bool{"studied": true})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	data = decode(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, "already_recorded", data["result"])
	streak = data["streak"].(map[string]interface{})
	assert.Equal(t, float64(1), streak["current"])

	// A negative check-in always wins, even on the same day.
	resp = request(t, "POST", "/api/streak/checkin", map[string]bool{"studied": false})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	data = decode(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, "cleared", data["result"])
	streak = data["streak"].(map[string]interface{})
	assert.Equal(t, float64(0), streak["current"])
}

func TestDashboard(t *testing.T) {
	resp := request(t, "GET", "/api/dashboard", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decode(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, "CA", data["course"])
	assert.Len(t, data["papers"].([]interface{}), 2)
	assert.NotNil(t, data["overall"])
	assert.NotNil(t, data["studyStreak"])
	assert.NotNil(t, data["milestones"])

	countdown := data["countdown"].(map[string]interface{})
	assert.Greater(t, countdown["months"].(float64), float64(0))
}

func TestDeleteSubject(t *testing.T) {
	resp := request(t, "DELETE", "/api/subjects/"+testSubjectID, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decode(t, resp)["data"].(map[string]interface{})
	assert.Len(t, data["customSubjects"].([]interface{}), 0)

	// Deleting again is a no-op, not an error.
	resp = request(t, "DELETE", "/api/subjects/"+testSubjectID, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestUpdateSettings(t *testing.T) {
	resp := request(t, "PUT", "/api/profile/settings", map[string]interface{}{
		"targetExam": "December 2099",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp = request(t, "PUT", "/api/profile/settings", map[string]interface{}{
		"targetExam": "15-06-2099",
		"groups":     []string{"Both Groups"},
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decode(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, "15-06-2099", data["targetExam"])
	assert.Equal(t, []interface{}{"Both Groups"}, data["groups"])

	// Both groups doubles the paper list.
	resp = request(t, "GET", "/api/syllabus/papers", nil)
	papersData := decode(t, resp)["data"].(map[string]interface{})
	assert.Len(t, papersData["papers"].([]interface{}), 4)
}
