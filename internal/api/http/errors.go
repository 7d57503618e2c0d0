package http

import (
	"errors"
	"net/http"

	"github.com/eventconnect/backend/internal/repository"
	"github.com/eventconnect/backend/internal/service"
	"github.com/eventconnect/backend/internal/timebucket"
)

// errStatus maps domain failures onto the API taxonomy: 401 for bad
// credentials, 403 for policy, 404 for missing entities (including an
// event whose organizer is gone), 400 for validation caught before any
// write, 500 for everything else.
func errStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrNotOrganizer),
		errors.Is(err, service.ErrNotParticipant):
		return http.StatusForbidden
	case errors.Is(err, repository.ErrEventNotFound),
		errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrRSVPNotFound),
		errors.Is(err, service.ErrOrganizerMissing):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrUserEmailExists):
		return http.StatusConflict
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrEventInactive),
		errors.Is(err, service.ErrEmptyMessage),
		errors.Is(err, service.ErrMessageTooLong),
		errors.Is(err, service.ErrEmptyDescription),
		errors.Is(err, timebucket.ErrBadID):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
