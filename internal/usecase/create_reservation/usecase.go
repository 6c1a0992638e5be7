package create_reservation

import (
	"context"
	"fmt"

	"github.com/salonmagico/SM-ReservationService/internal/adapter"
	"github.com/salonmagico/SM-ReservationService/internal/domain"
	"github.com/salonmagico/SM-ReservationService/internal/draft"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	catalogProvider CatalogProvider
	txManager       TransactionManager
	rules           domain.BookingRules
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	catalogProvider CatalogProvider,
	txManager TransactionManager,
	rules domain.BookingRules,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		catalogProvider: catalogProvider,
		txManager:       txManager,
		rules:           rules,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// два клиента, одновременно выбравшие один слот, не создадут двойное бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, package=%d, date=%s, slot=%s",
		req.UserID, req.PackageID, req.Date.Format(domain.DateFormat), req.Slot)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Ручной override суммы доступен только сотрудникам
	isStaff := uc.rules.IsStaff(req.UserID)
	if req.TotalOverride != nil && !isStaff {
		uc.logger.Warn("CreateReservation: total override requested by non-staff user=%d", req.UserID)
		return nil, ErrOverrideNotAllowed
	}

	// 4. Получаем снимок каталога
	catalog, err := uc.catalogProvider.GetCatalog(ctx)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to get catalog: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	// 5. Проверяем выбранные позиции против каталога
	if err := validateSelections(req, catalog); err != nil {
		uc.logger.Warn("CreateReservation: selection validation failed: %v", err)
		return nil, err
	}

	// 6. Валидация даты: прошлое и окно минимального срока
	// Сотрудники бронируют без ограничения минимального срока
	minLeadDays := uc.rules.MinLeadDays
	if isStaff {
		minLeadDays = 0
	}
	if err := validateDate(req.Date, now, minLeadDays); err != nil {
		uc.logger.Warn("CreateReservation: date validation failed: %v", err)
		return nil, err
	}

	slot := domain.TimeSlot(req.Slot)

	// Переменная для хранения результата
	var result *domain.Reservation

	// 7. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Получаем активные бронирования на дату с блокировкой (FOR UPDATE)
		reservations, err := uc.reservationRepo.GetActiveByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 7.2. Проверяем доступность слота
		if slotBooked(slot, req.Date, reservations) {
			uc.logger.Warn("CreateReservation: slot %s on %s already booked",
				req.Slot, req.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		// 7.3. Собираем черновик и считаем сумму
		d := uc.buildDraft(req, catalog)

		// 7.4. Преобразуем черновик в запись для хранилища
		record, err := adapter.ToRecord(d, req.UserID, catalog, uc.rules.TuesdaySurcharge)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to build record: %v", err)
			return fmt.Errorf("%w: failed to build record: %v", ErrInternal, err)
		}

		// 7.5. Сохраняем бронирование
		created, err := uc.reservationRepo.Create(txCtx, record)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d, total=%.2f",
		result.ID, result.Total)

	return toResponse(result), nil
}

// buildDraft собирает черновик из запроса и пересчитывает сумму
// Порядок мутаций повторяет порядок формы: тематика до мампары,
// чтобы сработала проверка связки тематика-мампара
func (uc *UseCase) buildDraft(req *Request, catalog *domain.Catalog) *draft.Draft {
	d := draft.New()

	d.Package = domain.SelectByID[domain.Package](req.PackageID)
	d.Date = req.Date
	d.Slot = domain.TimeSlot(req.Slot)

	if req.FoodOptionID != nil {
		d.FoodOption = domain.SelectByID[domain.FoodOption](*req.FoodOptionID)
	}
	if req.ThemeID != nil {
		d.SetTheme(domain.SelectByID[domain.Theme](*req.ThemeID), catalog)
	}
	if req.MamparaID != nil {
		d.SetMampara(domain.SelectByID[domain.Mampara](*req.MamparaID), catalog)
	}

	for _, extra := range req.Extras {
		d.SetExtraQuantity(extra.ID, extra.Quantity)
	}

	d.CelebrantName = req.CelebrantName
	d.CelebrantAge = req.CelebrantAge
	if req.Comments != nil {
		d.Comments = *req.Comments
	}

	if req.TotalOverride != nil {
		d.OverrideTotal(*req.TotalOverride)
	} else {
		d.Recompute(catalog, uc.rules.TuesdaySurcharge)
	}

	return d
}

// toResponse конвертирует созданную запись в response
func toResponse(r *domain.Reservation) *Response {
	resp := &Response{
		ID:              r.ID,
		UserID:          r.UserID,
		PackageID:       r.PackageID,
		FoodOptionID:    r.FoodOptionID,
		ThemeID:         r.ThemeID,
		MamparaID:       r.MamparaID,
		EventDate:       r.EventDate,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		Status:          string(r.Status),
		Extras:          r.Extras,
		CelebrantName:   r.CelebrantName,
		CelebrantAge:    r.CelebrantAge,
		Comments:        r.Comments,
		PackageName:     r.PackageName,
		PackagePrice:    r.PackagePrice,
		FoodOptionName:  r.FoodOptionName,
		FoodOptionPrice: r.FoodOptionPrice,
		MamparaPrice:    r.MamparaPrice,
		Total:           r.Total,
		TotalOverridden: r.TotalOverridden,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}

	if slot, ok := r.Slot(); ok {
		resp.Slot = string(slot)
	}

	return resp
}
