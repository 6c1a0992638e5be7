package create_reservation

import "errors"

var (
	// ErrPackageNotFound возвращается, когда пакет не найден в каталоге
	ErrPackageNotFound = errors.New("create_reservation: package not found")

	// ErrFoodOptionNotFound возвращается, когда вариант меню не найден в каталоге
	ErrFoodOptionNotFound = errors.New("create_reservation: food option not found")

	// ErrThemeNotFound возвращается, когда тематика не найдена или неактивна
	ErrThemeNotFound = errors.New("create_reservation: theme not found")

	// ErrMamparaNotFound возвращается, когда мампара не найдена или неактивна
	ErrMamparaNotFound = errors.New("create_reservation: mampara not found")

	// ErrMamparaThemeMismatch возвращается, когда мампара относится к другой тематике
	ErrMamparaThemeMismatch = errors.New("create_reservation: mampara does not belong to selected theme")

	// ErrExtraNotFound возвращается, когда дополнительная услуга не найдена в каталоге
	ErrExtraNotFound = errors.New("create_reservation: extra not found")

	// ErrInvalidDate возвращается при дате бронирования в прошлом
	ErrInvalidDate = errors.New("create_reservation: invalid reservation date")

	// ErrDateTooSoon возвращается, когда дата внутри окна минимального срока
	ErrDateTooSoon = errors.New("create_reservation: date is too soon")

	// ErrSlotNotAvailable возвращается, когда выбранный слот уже занят
	ErrSlotNotAvailable = errors.New("create_reservation: slot is not available")

	// ErrOverrideNotAllowed возвращается, когда ручной override суммы запрашивает не сотрудник
	ErrOverrideNotAllowed = errors.New("create_reservation: total override is not allowed")

	// ErrCatalogUnavailable возвращается, когда каталог недоступен
	ErrCatalogUnavailable = errors.New("create_reservation: catalog unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
