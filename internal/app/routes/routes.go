// Package routes maps the HTTP surface onto controllers. Route-level
// middleware only resolves the session; authorization decisions stay in the
// policy layer behind the services.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrek/registra/internal/app/controllers"
	"github.com/emrek/registra/internal/app/services"
	"github.com/emrek/registra/internal/middleware"
	"github.com/emrek/registra/internal/pkg/auth"
)

// Setup registers every route on the engine.
func Setup(engine *gin.Engine, svcs *services.Services, jwtService *auth.JWTService) {
	authController := controllers.NewAuthController(svcs.AuthService, svcs.UserService)
	userController := controllers.NewUserController(svcs.UserService)
	departmentController := controllers.NewDepartmentController(svcs.DepartmentService)
	courseController := controllers.NewCourseController(svcs.CourseService)
	enrollmentController := controllers.NewEnrollmentController(svcs.EnrollmentService)
	announcementController := controllers.NewAnnouncementController(svcs.AnnouncementService)
	statsController := controllers.NewStatsController(svcs.StatsService)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api/v1")

	// Session endpoints.
	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", authController.Register)
		authRoutes.POST("/login", authController.Login)
		authRoutes.POST("/refresh", authController.Refresh)

		session := authRoutes.Group("", middleware.RequireAuth(jwtService))
		{
			session.POST("/sign-out", authController.SignOut)
			session.PUT("/password", authController.UpdatePassword)
			session.GET("/me", authController.Me)
		}
	}

	// Catalog reads are public; an attached session still reaches the policy
	// layer so responses can be shaped per caller.
	public := api.Group("", middleware.OptionalAuth(jwtService))
	{
		public.GET("/departments", departmentController.ListDepartments)
		public.GET("/departments/:id", departmentController.GetDepartment)
		public.GET("/courses", courseController.ListCourses)
		public.GET("/courses/:id", courseController.GetCourse)
		public.GET("/announcements", announcementController.ListAnnouncements)
		public.GET("/announcements/:id", announcementController.GetAnnouncement)
	}

	// Everything else needs a session. The policy evaluator decides per
	// operation; no role checks here.
	protected := api.Group("", middleware.RequireAuth(jwtService))
	{
		protected.GET("/stats", statsController.GetStats)

		protected.GET("/users", userController.ListUsers)
		protected.GET("/users/:id", userController.GetUser)
		protected.PUT("/users/:id", userController.UpdateUser)
		protected.DELETE("/users/:id", userController.DeleteUser)

		protected.POST("/departments", departmentController.CreateDepartment)
		protected.PUT("/departments/:id", departmentController.UpdateDepartment)
		protected.DELETE("/departments/:id", departmentController.DeleteDepartment)

		protected.POST("/courses", courseController.CreateCourse)
		protected.PUT("/courses/:id", courseController.UpdateCourse)
		protected.DELETE("/courses/:id", courseController.DeleteCourse)
		protected.GET("/courses/:id/enrollments", enrollmentController.ListCourseEnrollments)
		protected.GET("/courses/:id/available-students", enrollmentController.GetAvailableStudents)

		protected.POST("/enrollments", enrollmentController.Enroll)
		protected.GET("/enrollments/me", enrollmentController.ListMyEnrollments)
		protected.GET("/enrollments/:id", enrollmentController.GetEnrollment)
		protected.PUT("/enrollments/:id", enrollmentController.UpdateEnrollment)
		protected.DELETE("/enrollments/:id", enrollmentController.DeleteEnrollment)
		protected.GET("/students/:id/enrollments", enrollmentController.ListStudentEnrollments)

		protected.POST("/announcements", announcementController.CreateAnnouncement)
		protected.PUT("/announcements/:id", announcementController.UpdateAnnouncement)
		protected.DELETE("/announcements/:id", announcementController.DeleteAnnouncement)
	}
}
