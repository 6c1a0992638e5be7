package create_reservation

import (
	"errors"
	"net/http"

	"github.com/salonmagico/SM-ReservationService/internal/api/handlers"
	"github.com/salonmagico/SM-ReservationService/internal/api/middleware"
	createReservation "github.com/salonmagico/SM-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты праздника, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgSlotNotAvailable   = "выбранный слот уже занят"
	msgPackageNotFound    = "пакет не найден"
	msgFoodOptionNotFound = "вариант меню не найден"
	msgThemeNotFound      = "тематика не найдена или неактивна"
	msgMamparaNotFound    = "мампара не найдена или неактивна"
	msgMamparaMismatch    = "мампара относится к другой тематике"
	msgExtraNotFound      = "дополнительная услуга не найдена"
	msgInvalidEventDate   = "некорректная дата праздника"
	msgDateTooSoon        = "до выбранной даты осталось слишком мало дней"
	msgOverrideNotAllowed = "изменение итоговой суммы доступно только сотрудникам"
	msgCatalogUnavailable = "каталог временно недоступен, попробуйте позже"
	msgInvalidReservation = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /reservations - Slot not available: user_id=%d, date=%s, slot=%s",
				userID, req.EventDate, req.Slot)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createReservation.ErrPackageNotFound):
			h.logger.Warn("POST /reservations - Package not found: package_id=%d", req.PackageID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, createReservation.ErrFoodOptionNotFound):
			h.logger.Warn("POST /reservations - Food option not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgFoodOptionNotFound)

		case errors.Is(err, createReservation.ErrThemeNotFound):
			h.logger.Warn("POST /reservations - Theme not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgThemeNotFound)

		case errors.Is(err, createReservation.ErrMamparaNotFound):
			h.logger.Warn("POST /reservations - Mampara not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgMamparaNotFound)

		case errors.Is(err, createReservation.ErrMamparaThemeMismatch):
			h.logger.Warn("POST /reservations - Mampara theme mismatch: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgMamparaMismatch)

		case errors.Is(err, createReservation.ErrExtraNotFound):
			h.logger.Warn("POST /reservations - Extra not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgExtraNotFound)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Invalid event date: user_id=%d, date=%s", userID, req.EventDate)
			handlers.RespondBadRequest(w, msgInvalidEventDate)

		case errors.Is(err, createReservation.ErrDateTooSoon):
			h.logger.Warn("POST /reservations - Date too soon: user_id=%d, date=%s", userID, req.EventDate)
			handlers.RespondBadRequest(w, msgDateTooSoon)

		case errors.Is(err, createReservation.ErrOverrideNotAllowed):
			h.logger.Warn("POST /reservations - Override not allowed: user_id=%d", userID)
			handlers.RespondForbidden(w, msgOverrideNotAllowed)

		case errors.Is(err, createReservation.ErrCatalogUnavailable):
			h.logger.Error("POST /reservations - Catalog unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgCatalogUnavailable)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidReservation)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, user_id=%d, date=%s, slot=%s",
		result.ID, userID, req.EventDate, req.Slot)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
