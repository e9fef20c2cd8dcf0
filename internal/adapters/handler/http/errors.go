package http

import (
	"errors"
	"net/http"

	"github.com/validately/api/internal/core/domain"
	"github.com/validately/api/internal/core/swipe"
)

// writeError maps the engine's error taxonomy to HTTP statuses. Everything
// in the taxonomy is recoverable, so the status tells the client whether to
// re-prompt (400), re-fetch (404) or retry the gesture (409).
func writeError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	var stateErr *swipe.StateError

	switch {
	case errors.As(err, &validationErr):
		http.Error(w, validationErr.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrInvalidCardID):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrCardNotFound), errors.Is(err, domain.ErrNoCardPresented):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &stateErr):
		http.Error(w, stateErr.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
