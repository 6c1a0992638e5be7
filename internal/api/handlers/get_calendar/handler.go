package get_calendar

import (
	"errors"
	"net/http"
	"time"

	"github.com/salonmagico/SM-ReservationService/internal/api/handlers"
	"github.com/salonmagico/SM-ReservationService/internal/api/middleware"
	getCalendar "github.com/salonmagico/SM-ReservationService/internal/usecase/get_calendar"
)

const (
	msgMissingMonth = "не указан месяц, ожидается параметр month=YYYY-MM"
	msgInvalidMonth = "некорректный формат месяца, ожидается YYYY-MM"
)

const monthFormat = "2006-01"

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/calendar?month=YYYY-MM
// Публичный маршрут; заголовок X-User-ID опционален
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	monthStr := r.URL.Query().Get("month")
	if monthStr == "" {
		h.logger.Warn("GET /availability/calendar - Missing month parameter")
		handlers.RespondBadRequest(w, msgMissingMonth)
		return
	}

	month, err := time.Parse(monthFormat, monthStr)
	if err != nil {
		h.logger.Warn("GET /availability/calendar - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	// userID опционален (через middleware OptionalAuth)
	userID, _ := middleware.GetUserID(r.Context())

	result, err := h.useCase.Execute(r.Context(), &getCalendar.Request{
		UserID: userID,
		Year:   month.Year(),
		Month:  month.Month(),
	})
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /availability/calendar - Invalid input: month=%s, error=%v", monthStr, err)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /availability/calendar - Failed to get calendar: month=%s, error=%v", monthStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/calendar - Calendar retrieved: month=%s, days=%d", monthStr, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
