package core

import (
	"fmt"
	"strconv"
	"time"
)

// Field represents a key-value pair for structured logging. The value
// is always a finalized string: constructors convert eagerly at the
// call site, so a Field never retains a reference to the original
// value and never re-evaluates it later.
type Field struct {
	Key   string
	Value string
}

// String creates a string field
func String(key, val string) Field {
	return Field{Key: key, Value: val}
}

// Int creates an int field
func Int(key string, val int) Field {
	return Field{Key: key, Value: strconv.Itoa(val)}
}

// Int64 creates an int64 field
func Int64(key string, val int64) Field {
	return Field{Key: key, Value: strconv.FormatInt(val, 10)}
}

// Uint64 creates a uint64 field
func Uint64(key string, val uint64) Field {
	return Field{Key: key, Value: strconv.FormatUint(val, 10)}
}

// Float64 creates a float64 field
func Float64(key string, val float64) Field {
	return Field{Key: key, Value: strconv.FormatFloat(val, 'f', -1, 64)}
}

// Bool creates a bool field
func Bool(key string, val bool) Field {
	return Field{Key: key, Value: strconv.FormatBool(val)}
}

// Duration creates a duration field
func Duration(key string, val time.Duration) Field {
	return Field{Key: key, Value: val.String()}
}

// Stamp creates a time field rendered in RFC3339
func Stamp(key string, val time.Time) Field {
	return Field{Key: key, Value: val.Format(time.RFC3339)}
}

// Err creates an error field under the key "error"
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: ""}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Any creates a field from an arbitrary value via fmt
func Any(key string, val interface{}) Field {
	return Field{Key: key, Value: fmt.Sprintf("%v", val)}
}
