package domain

// MaxNameLength - максимальная длина имени пользователя
const MaxNameLength = 20

// ValidateBirthDate проверяет диапазоны дня, месяца и года независимо.
// Календарная корректность (например, 30 февраля) сознательно не проверяется:
// дата нужна только как источник сида.
func ValidateBirthDate(day, month, year int) error {
	if day < 1 || day > 31 {
		return NewInvalidDateError("day")
	}
	if month < 1 || month > 12 {
		return NewInvalidDateError("month")
	}
	if year <= 0 {
		return NewInvalidDateError("year")
	}
	return nil
}

// ValidateName проверяет, что имя непустое и не длиннее MaxNameLength
func ValidateName(name string) error {
	if len(name) < 1 || len(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}
