package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/educonnect-booking/internal/dto"
	"github.com/BruksfildServices01/educonnect-booking/internal/httpresp"
	ucCounseling "github.com/BruksfildServices01/educonnect-booking/internal/usecase/counseling"
)

// ======================================================
// HANDLER
// ======================================================

type CounselorHandler struct {
	search       *ucCounseling.SearchCounselors
	get          *ucCounseling.GetCounselor
	types        *ucCounseling.ListConsultationTypes
	availability *ucCounseling.GetAvailability
	calendar     *ucCounseling.GetMonthCalendar
	log          *zap.Logger
}

func NewCounselorHandler(
	search *ucCounseling.SearchCounselors,
	get *ucCounseling.GetCounselor,
	types *ucCounseling.ListConsultationTypes,
	availability *ucCounseling.GetAvailability,
	calendar *ucCounseling.GetMonthCalendar,
	log *zap.Logger,
) *CounselorHandler {
	return &CounselorHandler{
		search:       search,
		get:          get,
		types:        types,
		availability: availability,
		calendar:     calendar,
		log:          log,
	}
}

// ======================================================
// DIRECTORY
// ======================================================

// List answers GET /api/counselors?query=&specialty=&country=&availability=
func (h *CounselorHandler) List(c *gin.Context) {
	out, err := h.search.Execute(c.Request.Context(), ucCounseling.SearchCounselorsInput{
		Query:        c.Query("query"),
		Specialty:    c.Query("specialty"),
		Country:      c.Query("country"),
		Availability: c.Query("availability"),
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, dto.CounselorListDTO{
		Data:    dto.NewCounselorDTOs(out.Counselors),
		Count:   len(out.Counselors),
		Total:   out.Total,
		Options: out.Options,
	})
}

func (h *CounselorHandler) Get(c *gin.Context) {
	counselor, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, dto.NewCounselorDTO(*counselor))
}

// ConsultationTypes answers GET /api/consultation-types?counselor_id=
func (h *CounselorHandler) ConsultationTypes(c *gin.Context) {
	offers, err := h.types.Execute(c.Request.Context(), c.Query("counselor_id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	out := make([]dto.ConsultationTypeDTO, 0, len(offers))
	for _, o := range offers {
		out = append(out, dto.ConsultationTypeDTO{
			ConsultationType: o.ConsultationType,
			Price:            o.Price,
			FormattedPrice:   o.FormattedPrice,
		})
	}
	httpresp.List(c, out)
}

// ======================================================
// AVAILABILITY
// ======================================================

// Availability answers GET /api/counselors/:id/availability?date=yyyy-MM-dd
func (h *CounselorHandler) Availability(c *gin.Context) {
	out, err := h.availability.Execute(c.Request.Context(), ucCounseling.GetAvailabilityInput{
		CounselorID: c.Param("id"),
		Date:        c.Query("date"),
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, dto.AvailabilityResponseDTO{
		CounselorID: out.CounselorID,
		Date:        out.Date,
		Selectable:  out.Selectable,
		Slots:       out.Slots,
	})
}

// Calendar answers GET /api/counselors/:id/calendar?month=yyyy-MM
func (h *CounselorHandler) Calendar(c *gin.Context) {
	out, err := h.calendar.Execute(c.Request.Context(), c.Param("id"), c.Query("month"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, dto.CalendarDTO{
		CounselorID: out.CounselorID,
		Month:       out.Month,
		Days:        out.Days,
	})
}
