package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sidd-gupta05/getfly-project/internal/api/metrics"
	"github.com/sidd-gupta05/getfly-project/internal/core/domain"
	"github.com/sidd-gupta05/getfly-project/internal/core/ports"
)

// ReportHandler handles HTTP requests for daily progress reports.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

type createReportRequest struct {
	Date            string `json:"date" validate:"required"`
	WorkDescription string `json:"work_description" validate:"required"`
	Weather         string `json:"weather"`
	WorkerCount     int    `json:"worker_count" validate:"gte=0"`
	Challenges      string `json:"challenges"`
	MaterialsUsed   string `json:"materials_used"`
	EquipmentUsed   string `json:"equipment_used"`
	SafetyIncidents string `json:"safety_incidents"`
	NextDayPlan     string `json:"next_day_plan"`
}

type reportListResponse struct {
	Reports    []*domain.DailyReport `json:"reports"`
	Pagination ports.Pagination      `json:"pagination"`
}

// List handles GET /v1/projects/:id/reports.
//
// @Summary      List daily progress reports for a project
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      int     true   "Project id"
// @Param        date    query     string  false  "Only reports on this calendar day (YYYY-MM-DD)"
// @Param        limit   query     int     false  "Page size (default 50, max 100)"
// @Param        offset  query     int     false  "Page offset"
// @Success      200     {object}  apiResponse
// @Failure      403     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /v1/projects/{id}/reports [get]
func (h *ReportHandler) List(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	projectID, err := pathID(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	var date *time.Time
	if d := c.QueryParam("date"); d != "" {
		t, err := parseDate(d)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "date must be a valid date")
		}
		date = &t
	}

	page, err := h.service.List(c.Request().Context(), principal, projectID, ports.ListReportsInput{
		Date:   date,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ok(reportListResponse{
		Reports:    page.Reports,
		Pagination: page.Pagination,
	}))
}

// Create handles POST /v1/projects/:id/reports.
//
// @Summary      File a daily progress report
// @Tags         reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Project id"
// @Param        body  body      createReportRequest  true  "Report details"
// @Success      201   {object}  apiResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/projects/{id}/reports [post]
func (h *ReportHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	projectID, err := pathID(c)
	if err != nil {
		return err
	}

	var req createReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date must be a valid date")
	}

	report, err := h.service.Create(c.Request().Context(), principal, projectID, ports.CreateReportInput{
		Date:            date,
		WorkDescription: req.WorkDescription,
		Weather:         req.Weather,
		WorkerCount:     req.WorkerCount,
		Challenges:      req.Challenges,
		MaterialsUsed:   req.MaterialsUsed,
		EquipmentUsed:   req.EquipmentUsed,
		SafetyIncidents: req.SafetyIncidents,
		NextDayPlan:     req.NextDayPlan,
	})
	if err != nil {
		return err
	}

	metrics.ReportsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, okMsg(report, "daily progress report created successfully"))
}
