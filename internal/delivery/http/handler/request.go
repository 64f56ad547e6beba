package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"

	"patient-registry/pkg/response"
)

// decodeJSON reads the request body into dst. A value of the wrong JSON
// type is reported against its field like any other validation failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		response.ValidationError(w, map[string]string{
			typeErr.Field: typeErr.Field + " must be " + expectedKind(typeErr.Type),
		})
		return false
	}

	response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
	return false
}

func expectedKind(t reflect.Type) string {
	if t == nil {
		return "valid"
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "a whole number"
	case reflect.String:
		return "text"
	case reflect.Slice, reflect.Array:
		return "a list"
	default:
		return "valid"
	}
}
