package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"

	"github.com/mariepimienta/task-app/internal/adapter/http/middleware"
	"github.com/mariepimienta/task-app/internal/adapter/http/validation"
	"github.com/mariepimienta/task-app/internal/core/domain"
	"github.com/mariepimienta/task-app/internal/core/ports"
	"github.com/mariepimienta/task-app/pkg/apierrors"
)

type ReportHandler struct {
	planner ports.PlannerService
}

func NewReportHandler(planner ports.PlannerService) *ReportHandler {
	return &ReportHandler{planner: planner}
}

// WeekReport renders a printable PDF of one week's plan, day by day
// with am/pm sections and checkbox glyphs for completion.
func (h *ReportHandler) WeekReport(c *gin.Context) {
	lang := middleware.GetLang(c)

	week := c.Param("week")
	if !validation.ValidWeekKey(week) {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidWeek, lang),
		)
		return
	}

	tasks, err := h.planner.TasksForWeek(c.Request.Context(), week)
	if err != nil {
		zap.L().Error("failed to load week for report", zap.String("week", week), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailReport, lang),
		)
		return
	}

	report, err := renderWeekReport(week, tasks)
	if err != nil {
		zap.L().Error("failed to render week report", zap.String("week", week), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailReport, lang),
		)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=week_%s.pdf", week))
	c.Data(http.StatusOK, "application/pdf", report)
}

func renderWeekReport(week string, tasks []domain.Task) ([]byte, error) {
	title := "Weekly Template"
	if week != domain.WeekTemplate {
		if r, err := domain.WeekRangeFrom(week); err == nil {
			title = fmt.Sprintf("Week of %s", r.Label)
		}
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)

	totalCompleted := 0
	for _, day := range domain.Days {
		dayTasks := domain.TasksByDay(tasks, day)
		if len(dayTasks) == 0 {
			continue
		}

		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, titleCase(string(day)))
		pdf.Ln(8)

		for _, timeOfDay := range []domain.TimeOfDay{domain.AM, domain.PM} {
			bucket := domain.SortByOrder(domain.RootTasks(domain.TasksByDayAndTime(dayTasks, day, timeOfDay)))
			if len(bucket) == 0 {
				continue
			}

			pdf.SetFont("Arial", "B", 12)
			pdf.Cell(0, 8, fmt.Sprintf("  %s", timeOfDay))
			pdf.Ln(6)

			pdf.SetFont("Arial", "", 12)
			for _, t := range bucket {
				writeTaskLine(pdf, t, 1)
				if t.Completed {
					totalCompleted++
				}
				for _, child := range domain.SortByOrder(domain.ChildTasks(tasks, t.ID)) {
					writeTaskLine(pdf, child, 2)
					if child.Completed {
						totalCompleted++
					}
				}
			}
		}
		pdf.Ln(4)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Tasks completed: %d of %d", totalCompleted, len(tasks)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeTaskLine(pdf *fpdf.Fpdf, t domain.Task, level int) {
	status := "[ ]"
	if t.Completed {
		status = "[x]"
	}
	indent := ""
	for i := 0; i < level; i++ {
		indent += "    "
	}
	pdf.Cell(0, 8, fmt.Sprintf("%s%s %s", indent, status, t.Title))
	pdf.Ln(6)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
