package http

import (
	"errors"
	"net/http"

	"github.com/sunjoo-dev/movein-registry/internal/service"
	"github.com/sunjoo-dev/movein-registry/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrWrongPassword:       http.StatusUnauthorized,
	service.ErrTokenExpired:        http.StatusUnauthorized,
	service.ErrTokenInvalid:        http.StatusUnauthorized,
	service.ErrMissingToken:        http.StatusUnauthorized,
	service.ErrForbidden:           http.StatusForbidden,
	service.ErrTokenCreationFailed: http.StatusInternalServerError,
	service.ErrEncryptionFailed:    http.StatusInternalServerError,
	service.ErrBlobStorage:         http.StatusInternalServerError,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrMoveInNotFound:     http.StatusNotFound,
	store.ErrFileNotFound:       http.StatusNotFound,
	store.ErrEmptyUpdate:        http.StatusBadRequest,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
