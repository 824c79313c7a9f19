package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ineverydomain/exam-tracker/backend/config"
	"github.com/ineverydomain/exam-tracker/backend/controllers"
	"github.com/ineverydomain/exam-tracker/backend/middleware"
	"github.com/ineverydomain/exam-tracker/backend/store"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, profiles store.ProfileStore, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(db, profiles, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)

	// Syllabus routes
	syllabusController := controllers.NewSyllabusController(profiles, cfg)
	app.Get("/api/syllabus/courses", syllabusController.GetCourses)
	app.Get("/api/syllabus/papers", authMiddleware, syllabusController.GetPapers)

	// Profile routes
	profileController := controllers.NewProfileController(profiles, cfg)
	app.Get("/api/profile", authMiddleware, profileController.GetProfile)
	app.Post("/api/profile/onboarding", authMiddleware, profileController.CompleteOnboarding)
	app.Put("/api/profile/settings", authMiddleware, profileController.UpdateSettings)

	// Dashboard routes
	dashboardController := controllers.NewDashboardController(profiles, cfg)
	app.Get("/api/dashboard", authMiddleware, dashboardController.GetDashboard)

	// Progress routes
	progressController := controllers.NewProgressController(profiles, cfg)
	app.Post("/api/progress/toggle", authMiddleware, progressController.ToggleChapter)
	app.Get("/api/progress/milestones", authMiddleware, progressController.GetMilestones)

	// Streak routes
	streakController := controllers.NewStreakController(profiles, cfg)
	app.Post("/api/streak/checkin", authMiddleware, streakController.CheckIn)

	// Custom subject routes
	subjectsController := controllers.NewSubjectsController(profiles, cfg)
	subjectRoutes := app.Group("/api/subjects", authMiddleware)
	subjectRoutes.Post("/", subjectsController.AddSubject)
	subjectRoutes.Delete("/:id", subjectsController.DeleteSubject)
	subjectRoutes.Post("/:id/modules/:moduleId/toggle", subjectsController.ToggleModule)
	subjectRoutes.Put("/:id/modules/:moduleId", subjectsController.RenameModule)
}
