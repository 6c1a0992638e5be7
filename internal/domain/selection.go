package domain

// Selection ссылка на запись каталога в черновике бронирования
// Либо только ID, либо ID вместе со встроенной записью каталога
// Единая точка нормализации вместо разбросанных по коду проверок "объект или id"
type Selection[T any] struct {
	ID       int64
	Embedded *T
}

// SelectByID создает выбор по голому ID
func SelectByID[T any](id int64) *Selection[T] {
	return &Selection[T]{ID: id}
}

// SelectEmbedded создает выбор со встроенной записью каталога
func SelectEmbedded[T any](id int64, record T) *Selection[T] {
	return &Selection[T]{ID: id, Embedded: &record}
}

// Resolve возвращает встроенную запись, если она есть,
// иначе ищет запись по ID через lookup; nil, если не найдена
// Встроенная запись имеет приоритет над каталогом: она зафиксирована
// в момент выбора и остаётся корректной после мутаций каталога
func (s *Selection[T]) Resolve(lookup func(id int64) *T) *T {
	if s == nil {
		return nil
	}
	if s.Embedded != nil {
		return s.Embedded
	}
	if lookup == nil {
		return nil
	}
	return lookup(s.ID)
}
