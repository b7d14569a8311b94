package projection

// Shape is either a single record or a list of records. Render picks the
// projection from the shape, never from the record count.
type Shape[T any] struct {
	one  *T
	many []T
}

// One wraps a single record.
func One[T any](record T) Shape[T] {
	return Shape[T]{one: &record}
}

// Many wraps a list of records. A nil list renders as an empty list.
func Many[T any](records []T) Shape[T] {
	if records == nil {
		records = []T{}
	}
	return Shape[T]{many: records}
}

// IsOne reports whether the shape holds a single record.
func (s Shape[T]) IsOne() bool {
	return s.one != nil
}

// View holds the summary and detail projections of one entity type.
// T is the stored record, S its summary shape and D its detail shape.
type View[T, S, D any] struct {
	links   Links
	summary func(Links, T) S
	detail  func(Links, T) D
}

// NewView builds a View from its two projection functions.
func NewView[T, S, D any](links Links, summary func(Links, T) S, detail func(Links, T) D) View[T, S, D] {
	return View[T, S, D]{links: links, summary: summary, detail: detail}
}

// Summary projects one record for list results.
func (v View[T, S, D]) Summary(record T) S {
	return v.summary(v.links, record)
}

// Summaries projects every record for list results. The result is never nil.
func (v View[T, S, D]) Summaries(records []T) []S {
	out := make([]S, len(records))
	for i, r := range records {
		out[i] = v.summary(v.links, r)
	}
	return out
}

// Detail projects one record for a single lookup.
func (v View[T, S, D]) Detail(record T) D {
	return v.detail(v.links, record)
}

// Render returns a detail object for a single record and a list of
// summaries for a list of records.
func (v View[T, S, D]) Render(in Shape[T]) any {
	if in.IsOne() {
		return v.Detail(*in.one)
	}
	return v.Summaries(in.many)
}
