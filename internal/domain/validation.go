package domain

// ValidationResult maps each failing field to its message.
// Passing fields are absent.
type ValidationResult map[Field]string

// Valid reports whether no field failed
func (r ValidationResult) Valid() bool {
	return len(r) == 0
}

// Has reports whether field failed
func (r ValidationResult) Has(field Field) bool {
	_, ok := r[field]
	return ok
}

// First returns the first failing field in form order
func (r ValidationResult) First() (Field, bool) {
	for _, f := range FieldOrder {
		if r.Has(f) {
			return f, true
		}
	}
	return "", false
}

// Fields returns the failing fields in form order
func (r ValidationResult) Fields() []Field {
	fields := make([]Field, 0, len(r))
	for _, f := range FieldOrder {
		if r.Has(f) {
			fields = append(fields, f)
		}
	}
	return fields
}
