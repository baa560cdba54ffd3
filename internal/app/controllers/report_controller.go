package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/minilms/internal/app/models/dto"
	"github.com/yigit/minilms/internal/app/services"
	"github.com/yigit/minilms/internal/middleware"
)

// ReportController serves aggregated reports
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// GetEnrolmentsSummary returns the per-course enrolment summary
// @Summary Enrolment summary
// @Description One row per course with the number of distinct enrolled students, sorted by title
// @Tags reports
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.ReportRowResponse} "Summary generated successfully"
// @Router /reports/enrolments-summary [get]
func (c *ReportController) GetEnrolmentsSummary(ctx *gin.Context) {
	rows, err := c.reportService.GetEnrolmentsSummary(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(rows))
}
