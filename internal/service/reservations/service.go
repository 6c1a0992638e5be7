package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/salonmagico/SM-ReservationService/internal/adapter"
	"github.com/salonmagico/SM-ReservationService/internal/domain"
	reservationRepo "github.com/salonmagico/SM-ReservationService/internal/infra/storage/reservation"
	"github.com/salonmagico/SM-ReservationService/internal/service/reservations/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	reservationRepo ReservationRepository
	catalogProvider CatalogProvider
	rules           domain.BookingRules
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	catalogProvider CatalogProvider,
	rules domain.BookingRules,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		catalogProvider: catalogProvider,
		rules:           rules,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
// Проверяет права доступа - пользователь может видеть только своё бронирование
// или если он сотрудник салона
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, userID)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkUserAccess(reservation, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to reservation id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return models.FromDomainReservation(reservation), nil
}

// GetDraft восстанавливает черновик формы редактирования из записи и текущего каталога
// id каталога без совпадения оставляют поле невыбранным; гидрация не падает
// при изменившемся каталоге
func (s *Service) GetDraft(ctx context.Context, id int64, userID int64) (*models.DraftResponse, error) {
	s.logger.Info("GetDraft: hydrating draft for reservation id=%d, user=%d", id, userID)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetDraft: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetDraft: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetDraft - repository error: %v", ErrInternal, err)
	}

	if err := s.checkUserAccess(reservation, userID); err != nil {
		s.logger.Warn("GetDraft: access denied for user=%d to reservation id=%d", userID, id)
		return nil, err
	}

	catalog, err := s.catalogProvider.GetCatalog(ctx)
	if err != nil {
		s.logger.Error("GetDraft: catalog unavailable for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetDraft: %v", ErrCatalogUnavailable, err)
	}

	d := adapter.HydrateDraft(reservation, catalog)

	s.logger.Info("GetDraft: successfully hydrated draft for reservation id=%d", id)
	return models.FromDraft(d), nil
}

// GetUserReservations получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserReservations(ctx context.Context, req *models.GetUserReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetUserReservations: fetching reservations for user=%d, requester=%d, status=%v",
		req.UserID, req.RequesterID, req.Status)

	// Историю чужого пользователя видит только сотрудник
	if req.RequesterID != req.UserID && !s.rules.IsStaff(req.RequesterID) {
		s.logger.Warn("GetUserReservations: access denied for requester=%d to user=%d", req.RequesterID, req.UserID)
		return nil, ErrAccessDenied
	}

	// Конвертируем статус из строки в domain.ReservationStatus
	var domainStatus *domain.ReservationStatus
	if req.Status != nil {
		status, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserReservations: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	reservations, err := s.reservationRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserReservations: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserReservations: successfully fetched %d reservations for user=%d", len(reservations), req.UserID)
	return models.FromDomainReservationList(reservations), nil
}

// ListReservations получает бронирования салона с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению неактивных бронирований
// Доступно только сотрудникам салона
//
// Примеры использования:
// - Все активные бронирования: ListReservations(ctx, &ListReservationsRequest{UserID: 456})
// - Бронирования на дату: StartDate и EndDate указывают на одну дату
// - Бронирования за период: StartDate и EndDate указывают на разные даты
// - Только подтвержденные: указать Status = "confirmed"
// - Включая отменённые: IncludeInactive = true
func (s *Service) ListReservations(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	logMsg := fmt.Sprintf("ListReservations: fetching reservations for user=%d", req.UserID)
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	// Проверяем права доступа сотрудника
	if err := s.checkStaffAccess(req.UserID); err != nil {
		return nil, err
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListReservations: invalid filter from user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListReservations: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListReservations: successfully fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// Cancel отменяет бронирование
// Пользователь может отменить только своё бронирование,
// сотрудник салона - любое
func (s *Service) Cancel(ctx context.Context, reservationID int64, req *models.CancelReservationRequest) error {
	s.logger.Info("Cancel: cancelling reservation id=%d by user=%d", reservationID, req.UserID)

	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа (владелец или сотрудник)
	if err := s.checkUserAccess(reservation, req.UserID); err != nil {
		s.logger.Warn("Cancel: access denied for user=%d to cancel reservation id=%d", req.UserID, reservationID)
		return ErrAccessDenied
	}

	// Проверяем, можно ли отменить бронирование
	if !reservation.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", reservationID, reservation.Status)
		return ErrCannotCancel
	}

	if err := s.reservationRepo.Cancel(ctx, reservationID, req.CancellationReason); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found during cancellation", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", reservationID)
	return nil
}

// UpdateStatus обновляет статус бронирования
// Доступно только сотрудникам салона
func (s *Service) UpdateStatus(ctx context.Context, reservationID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating reservation id=%d to status=%s by user=%d",
		reservationID, req.Status, req.UserID)

	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdateStatus: reservation id=%d not found", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа (только сотрудник салона)
	if err := s.checkStaffAccess(req.UserID); err != nil {
		return err
	}

	// Валидируем и конвертируем статус
	newStatus, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for reservation id=%d", req.Status, reservationID)
		return fmt.Errorf("%w: invalid status", ErrInvalidStatus)
	}

	// Отмена идёт через Cancel, чтобы зафиксировать причину и время отмены
	if newStatus == domain.StatusCancelled {
		s.logger.Warn("UpdateStatus: cancellation of reservation id=%d requested through status update", reservationID)
		return fmt.Errorf("%w: use cancel endpoint for cancellation", ErrInvalidTransition)
	}

	// Из терминальных статусов переходов нет
	if !reservation.IsActive() {
		s.logger.Warn("UpdateStatus: reservation id=%d is in terminal status=%s", reservationID, reservation.Status)
		return ErrInvalidTransition
	}

	if err := s.reservationRepo.UpdateStatus(ctx, reservationID, newStatus); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdateStatus: reservation id=%d not found during update", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated reservation id=%d to status=%s", reservationID, newStatus)
	return nil
}

// Вспомогательные методы

// checkUserAccess проверяет, что пользователь имеет доступ к бронированию
// Пользователь видит своё бронирование; сотрудник салона - любое
func (s *Service) checkUserAccess(reservation *domain.Reservation, userID int64) error {
	if reservation.UserID == userID {
		return nil
	}

	if s.rules.IsStaff(userID) {
		return nil
	}

	return ErrAccessDenied
}

// checkStaffAccess проверяет, что пользователь является сотрудником салона
func (s *Service) checkStaffAccess(userID int64) error {
	if s.rules.IsStaff(userID) {
		return nil
	}

	s.logger.Warn("checkStaffAccess: user=%d is not a staff member", userID)
	return ErrAccessDenied
}
