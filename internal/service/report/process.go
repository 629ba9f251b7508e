package report

// Process — обобщённый проход по коллекции: опциональная пересортировка,
// затем применение callback к каждому элементу; collector возвращается для
// сцепления вызовов. reorder получает копию, исходный срез не мутируется.
// nil-коллекция — no-op.
func Process[T any, R any](collector R, items []T, reorder func([]T) []T, each func(T)) R {
	if items == nil {
		return collector
	}
	if reorder != nil {
		items = reorder(append([]T(nil), items...))
	}
	for _, item := range items {
		each(item)
	}
	return collector
}
