package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/minilms/internal/app/models/dto"
	"github.com/yigit/minilms/internal/app/services"
	"github.com/yigit/minilms/internal/middleware"
)

// CourseDetailController serves the read-only course detail catalogue
type CourseDetailController struct {
	courseDetailService services.CourseDetailService
	logger              zerolog.Logger
}

// NewCourseDetailController creates a new CourseDetailController
func NewCourseDetailController(courseDetailService services.CourseDetailService, logger zerolog.Logger) *CourseDetailController {
	return &CourseDetailController{
		courseDetailService: courseDetailService,
		logger:              logger,
	}
}

// GetAllCourseDetails returns every course detail
// @Summary Get all course details
// @Tags course-details
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.CourseDetail} "Course details retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /course-details [get]
func (c *CourseDetailController) GetAllCourseDetails(ctx *gin.Context) {
	details, err := c.courseDetailService.GetAllCourseDetails(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Debug().Int("count", len(details)).Msg("Retrieved course details")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(details))
}

// GetCourseDetail returns the detail of one course
// @Summary Get course detail
// @Description Instructor, syllabus, requirements and other details of a course
// @Tags course-details
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.APIResponse{data=models.CourseDetail} "Course detail retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Course details not found"
// @Router /course-details/{courseId} [get]
func (c *CourseDetailController) GetCourseDetail(ctx *gin.Context) {
	courseID := ctx.Param("courseId")
	detail, err := c.courseDetailService.GetCourseDetail(ctx, courseID)
	if err != nil {
		c.logger.Warn().Err(err).Str("courseId", courseID).Msg("Course detail lookup failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(detail))
}
