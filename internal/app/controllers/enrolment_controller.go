package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/minilms/internal/app/models/dto"
	"github.com/yigit/minilms/internal/app/services"
	"github.com/yigit/minilms/internal/middleware"
	"github.com/yigit/minilms/internal/pkg/apperrors"
)

// EnrolmentController handles enrolment listing, creation and removal
type EnrolmentController struct {
	enrolmentService services.EnrolmentService
	logger           zerolog.Logger
}

// NewEnrolmentController creates a new EnrolmentController
func NewEnrolmentController(enrolmentService services.EnrolmentService, logger zerolog.Logger) *EnrolmentController {
	return &EnrolmentController{
		enrolmentService: enrolmentService,
		logger:           logger,
	}
}

// GetAllEnrolments lists enrolments
// @Summary List enrolments
// @Description Lists enrolments with student names and course titles. courseId takes precedence over studentId.
// @Tags enrolments
// @Produce json
// @Param courseId query string false "Filter by course ID" Format(uuid)
// @Param studentId query string false "Filter by student ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.EnrolmentResponse} "Enrolments retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Router /enrolments [get]
func (c *EnrolmentController) GetAllEnrolments(ctx *gin.Context) {
	var filter dto.EnrolmentFilter

	if raw := strings.TrimSpace(ctx.Query("courseId")); raw != "" {
		courseID, err := uuid.Parse(raw)
		if err != nil {
			middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("courseId must be a valid GUID"))
			return
		}
		filter.CourseID = &courseID
	}
	if raw := strings.TrimSpace(ctx.Query("studentId")); raw != "" {
		filter.StudentID = &raw
	}

	enrolments, err := c.enrolmentService.GetAllEnrolments(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(enrolments))
}

// CreateEnrolment enrols a student in a course
// @Summary Create an enrolment
// @Description Enrols a student in a course. Fails with 404 when the student or course does not exist and 409 when already enrolled.
// @Tags enrolments
// @Accept json
// @Produce json
// @Param request body dto.CreateEnrolmentRequest true "Enrolment information"
// @Success 201 {object} dto.APIResponse{data=dto.EnrolmentResponse} "Enrolment created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Failure 409 {object} dto.ErrorResponse "Student already enrolled"
// @Router /enrolments [post]
func (c *EnrolmentController) CreateEnrolment(ctx *gin.Context) {
	var req dto.CreateEnrolmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	courseID, err := uuid.Parse(req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("courseId must be a valid GUID"))
		return
	}

	enrolment, err := c.enrolmentService.CreateEnrolment(ctx, req.StudentID, courseID)
	if err != nil {
		c.logger.Debug().Err(err).Str("studentId", req.StudentID).Str("courseId", req.CourseID).Msg("Enrolment rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(enrolment))
}

// DeleteEnrolment removes an enrolment
// @Summary Delete an enrolment
// @Tags enrolments
// @Param studentId query string true "Student ID"
// @Param courseId query string true "Course ID" Format(uuid)
// @Success 204 "Enrolment deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid parameters"
// @Failure 404 {object} dto.ErrorResponse "Enrolment not found"
// @Router /enrolments [delete]
func (c *EnrolmentController) DeleteEnrolment(ctx *gin.Context) {
	studentID := strings.TrimSpace(ctx.Query("studentId"))
	if studentID == "" {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("studentId query parameter is required"))
		return
	}

	courseID, err := uuid.Parse(strings.TrimSpace(ctx.Query("courseId")))
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("courseId must be a valid GUID"))
		return
	}

	if err := c.enrolmentService.DeleteEnrolment(ctx, studentID, courseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
