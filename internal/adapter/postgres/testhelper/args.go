package testhelper

import (
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v2"
)

// idArg matches a UUID argument however the query builder rendered it.
// squirrel expands driver.Valuer values inside sq.Eq into their string
// form, while Insert and Set values keep the uuid.UUID type.
type idArg struct {
	id uuid.UUID
}

var _ pgxmock.Argument = idArg{}

func (a idArg) Match(v any) bool {
	switch v := v.(type) {
	case uuid.UUID:
		return v == a.id
	case *uuid.UUID:
		return v != nil && *v == a.id
	case string:
		return v == a.id.String()
	case uuid.NullUUID:
		return v.Valid && v.UUID == a.id
	}
	return false
}

// Args prepares expected pgxmock arguments, replacing UUIDs (plain or
// non-nil pointers) with matchers that accept either the typed or the
// string form.
func Args(values ...any) []any {
	out := make([]any, len(values))
	for i, v := range values {
		switch v := v.(type) {
		case uuid.UUID:
			out[i] = idArg{id: v}
		case *uuid.UUID:
			if v != nil {
				out[i] = idArg{id: *v}
			} else {
				out[i] = v
			}
		default:
			out[i] = v
		}
	}
	return out
}

// AnyArgs expects n arguments of any value.
func AnyArgs(n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = pgxmock.AnyArg()
	}
	return out
}
