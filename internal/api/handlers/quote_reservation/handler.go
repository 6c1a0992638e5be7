package quote_reservation

import (
	"errors"
	"net/http"

	"github.com/salonmagico/SM-ReservationService/internal/api/handlers"
	quoteReservation "github.com/salonmagico/SM-ReservationService/internal/usecase/quote_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgCatalogUnavailable = "каталог временно недоступен, попробуйте позже"
)

type Handler struct {
	useCase QuoteReservationUseCase
	logger  Logger
}

func NewHandler(useCase QuoteReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations/quote - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, quoteReservation.ErrCatalogUnavailable):
			h.logger.Error("POST /reservations/quote - Catalog unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgCatalogUnavailable)

		case errors.Is(err, quoteReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations/quote - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /reservations/quote - Failed to quote: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/quote - Quote calculated: total=%.2f", result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
