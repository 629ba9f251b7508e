package domain

// setOnce — обёртка для поля, которое может быть валидно присвоено ровно один
// раз. Повторное валидное присваивание молча игнорируется (set-once-wins),
// состояние "не присвоено" выражено явно, без значений-сентинелов.
type setOnce[T any] struct {
	value    T
	assigned bool
}

// set присваивает значение только при переходе unset -> set.
func (s *setOnce[T]) set(v T) {
	if s.assigned {
		return
	}
	s.value = v
	s.assigned = true
}

// get возвращает значение и признак того, что оно было присвоено.
func (s *setOnce[T]) get() (T, bool) {
	return s.value, s.assigned
}
