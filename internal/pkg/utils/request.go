package utils

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

var ErrMissingParam = errors.New("parameter is missing")

// ParsePositiveIntParam reads a chi URL param and rejects anything that is not a positive integer.
func ParsePositiveIntParam(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(chi.URLParam(r, name))
	if raw == "" {
		return 0, ErrMissingParam
	}
	return parsePositiveInt(raw)
}

// ParsePositiveIntQuery reads a required positive integer query parameter.
func ParsePositiveIntQuery(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, ErrMissingParam
	}
	return parsePositiveInt(raw)
}

// ParseOptionalPositiveIntQuery returns nil when the parameter is absent.
func ParseOptionalPositiveIntQuery(r *http.Request, name string) (*int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	value, err := parsePositiveInt(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func GetQueryString(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}

func parsePositiveInt(raw string) (int, error) {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if value <= 0 {
		return 0, errors.New("value must be positive")
	}
	return value, nil
}
