package domain

// Package пакет праздника с ценой, зависящей от дня недели
type Package struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	PriceWeekday float64 `json:"price_weekday"` // Пн-Чт
	PriceWeekend float64 `json:"price_weekend"` // Пт-Вс
}

// FoodOption вариант питания с доплатой к базовой цене пакета
type FoodOption struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	ExtraPrice float64 `json:"extra_price"`
}

// Theme тематика оформления праздника
type Theme struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Active   bool    `json:"active"`
	PhotoURL *string `json:"photo_url,omitempty"`
}

// Mampara декоративная фотопанель, привязанная ровно к одной тематике
type Mampara struct {
	ID      int64   `json:"id"`
	ThemeID int64   `json:"theme_id"`
	Pieces  int     `json:"pieces"`
	Price   float64 `json:"price"`
	Active  bool    `json:"active"`
}

// Extra дополнительная услуга, выбираемая с количеством >= 1
type Extra struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Catalog снимок каталога площадки, полученный из каталог-сервиса
// Движки ценообразования и доступности работают только с таким
// read-only снимком и никогда его не мутируют
type Catalog struct {
	Packages    []Package    `json:"packages"`
	FoodOptions []FoodOption `json:"food_options"`
	Themes      []Theme      `json:"themes"`
	Mamparas    []Mampara    `json:"mamparas"`
	Extras      []Extra      `json:"extras"`
}

// PackageByID возвращает пакет по ID или nil, если не найден
func (c *Catalog) PackageByID(id int64) *Package {
	for i := range c.Packages {
		if c.Packages[i].ID == id {
			return &c.Packages[i]
		}
	}
	return nil
}

// FoodOptionByID возвращает вариант питания по ID или nil, если не найден
func (c *Catalog) FoodOptionByID(id int64) *FoodOption {
	for i := range c.FoodOptions {
		if c.FoodOptions[i].ID == id {
			return &c.FoodOptions[i]
		}
	}
	return nil
}

// ThemeByID возвращает тематику по ID или nil, если не найдена
func (c *Catalog) ThemeByID(id int64) *Theme {
	for i := range c.Themes {
		if c.Themes[i].ID == id {
			return &c.Themes[i]
		}
	}
	return nil
}

// MamparaByID возвращает мампару по ID или nil, если не найдена
func (c *Catalog) MamparaByID(id int64) *Mampara {
	for i := range c.Mamparas {
		if c.Mamparas[i].ID == id {
			return &c.Mamparas[i]
		}
	}
	return nil
}

// ExtraByID возвращает дополнительную услугу по ID или nil, если не найдена
func (c *Catalog) ExtraByID(id int64) *Extra {
	for i := range c.Extras {
		if c.Extras[i].ID == id {
			return &c.Extras[i]
		}
	}
	return nil
}

// ActiveThemes возвращает только активные тематики (только они доступны для выбора)
func (c *Catalog) ActiveThemes() []Theme {
	result := make([]Theme, 0, len(c.Themes))
	for _, t := range c.Themes {
		if t.Active {
			result = append(result, t)
		}
	}
	return result
}

// MamparasForTheme возвращает активные мампары указанной тематики
func (c *Catalog) MamparasForTheme(themeID int64) []Mampara {
	result := make([]Mampara, 0)
	for _, m := range c.Mamparas {
		if m.Active && m.ThemeID == themeID {
			result = append(result, m)
		}
	}
	return result
}
