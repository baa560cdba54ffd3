package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/minilms/internal/app/controllers"
)

// Controllers groups the handlers mounted under /api
type Controllers struct {
	Course       *controllers.CourseController
	Student      *controllers.StudentController
	Enrolment    *controllers.EnrolmentController
	Report       *controllers.ReportController
	CourseDetail *controllers.CourseDetailController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrl Controllers) {
	api := router.Group("/api")

	courses := api.Group("/courses")
	{
		courses.GET("", ctrl.Course.GetAllCourses)
		courses.GET("/:id", ctrl.Course.GetCourseByID)
		courses.POST("", ctrl.Course.CreateCourse)
		courses.PUT("/:id", ctrl.Course.UpdateCourse)
		courses.DELETE("/:id", ctrl.Course.DeleteCourse)
	}

	students := api.Group("/students")
	{
		students.GET("", ctrl.Student.GetAllStudents)
		students.GET("/:id", ctrl.Student.GetStudentByID)
	}

	enrolments := api.Group("/enrolments")
	{
		enrolments.GET("", ctrl.Enrolment.GetAllEnrolments)
		enrolments.POST("", ctrl.Enrolment.CreateEnrolment)
		enrolments.DELETE("", ctrl.Enrolment.DeleteEnrolment)
	}

	reports := api.Group("/reports")
	{
		reports.GET("/enrolments-summary", ctrl.Report.GetEnrolmentsSummary)
	}

	courseDetails := api.Group("/course-details")
	{
		courseDetails.GET("", ctrl.CourseDetail.GetAllCourseDetails)
		courseDetails.GET("/:courseId", ctrl.CourseDetail.GetCourseDetail)
	}

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})
}
