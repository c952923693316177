package validator

import (
	"github.com/google/uuid"
)

// checkUUID accepts a uuid.UUID or its canonical 36-character string form.
// With Options{"nonNil": true} the nil UUID is rejected.
func checkUUID(value any, args ...any) *Failure {
	var id uuid.UUID
	switch v := value.(type) {
	case uuid.UUID:
		id = v
	case string:
		// Fast rejection before parsing: uuid.Parse also accepts braced and urn forms.
		if len(v) != 36 || v[8] != '-' || v[13] != '-' || v[18] != '-' || v[23] != '-' {
			return mismatch("expected a UUID, got:", value)
		}
		parsed, err := uuid.Parse(v)
		if err != nil {
			return mismatch("expected a UUID, got:", value)
		}
		id = parsed
	default:
		return mismatch("expected a UUID, got:", value)
	}

	opts := arg(args, 0)
	if opts == nil {
		return nil
	}
	if f := checkShape(opts, Shape{"nonNil": "bool"}, ModeShapeIn); f != nil {
		return invalidOptions(f)
	}
	k, _ := keyedOf(opts)
	if nonNil, _ := k.get("nonNil").(bool); nonNil && id == uuid.Nil {
		return mismatch("expected a non-nil UUID, got:", value)
	}
	return nil
}
