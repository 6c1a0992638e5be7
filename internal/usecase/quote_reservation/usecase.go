package quote_reservation

import (
	"context"
	"fmt"
	"time"

	"github.com/salonmagico/SM-ReservationService/internal/domain"
	"github.com/salonmagico/SM-ReservationService/internal/pricing"
)

// UseCase use case расчёта стоимости по текущему состоянию формы
// Движок ценообразования не возвращает ошибок: неполная форма даёт
// частичную разбивку, а не отказ
type UseCase struct {
	catalogProvider CatalogProvider
	rules           domain.BookingRules
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalogProvider CatalogProvider,
	rules domain.BookingRules,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogProvider: catalogProvider,
		rules:           rules,
		logger:          logger,
	}
}

// Execute выполняет use case расчёта стоимости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuoteReservation: package=%v, date=%s", req.PackageID, req.Date.Format(domain.DateFormat))

	if req == nil {
		return nil, fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	catalog, err := uc.catalogProvider.GetCatalog(ctx)
	if err != nil {
		uc.logger.Error("QuoteReservation: failed to get catalog: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	var pkgSel *domain.Selection[domain.Package]
	if req.PackageID != nil {
		pkgSel = domain.SelectByID[domain.Package](*req.PackageID)
	}

	var foodSel *domain.Selection[domain.FoodOption]
	if req.FoodOptionID != nil {
		foodSel = domain.SelectByID[domain.FoodOption](*req.FoodOptionID)
	}

	var mamparaSel *domain.Selection[domain.Mampara]
	if req.MamparaID != nil {
		mamparaSel = domain.SelectByID[domain.Mampara](*req.MamparaID)
	}

	extras := make([]domain.ExtraSelection, 0, len(req.Extras))
	for _, extra := range req.Extras {
		extras = append(extras, domain.ExtraSelection{ID: extra.ID, Quantity: extra.Quantity})
	}

	var pkg *domain.Package
	if pkgSel != nil {
		pkg = catalog.PackageByID(pkgSel.ID)
	}

	resp := &Response{
		PackagePrice:    pricing.PackagePrice(pkg, req.Date, uc.rules.TuesdaySurcharge),
		FoodOptionPrice: pricing.FoodOptionPrice(foodSel, catalog),
		MamparaPrice:    pricing.MamparaPrice(mamparaSel, catalog),
		ExtrasTotal:     pricing.ExtrasTotal(extras, catalog),
	}

	// Наценка показывается отдельной строкой, когда она вошла в цену пакета
	if pkg != nil && !req.Date.IsZero() && req.Date.Weekday() == time.Tuesday {
		resp.TuesdaySurcharge = uc.rules.TuesdaySurcharge
	}

	resp.Total = pricing.Round2(resp.PackagePrice + resp.FoodOptionPrice + resp.MamparaPrice + resp.ExtrasTotal)

	uc.logger.Info("QuoteReservation: total=%.2f", resp.Total)
	return resp, nil
}
