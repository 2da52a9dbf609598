package discord

import (
	"errors"
	"log"

	"eventbot/internal/domain"
	"eventbot/internal/ports/input"
	"eventbot/internal/ports/output"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	events           input.EventUseCase
	interests        input.InterestUseCase
	translator       output.T
	locale           string
	notifierRoleName string
}

// NewHandler creates a Handler.
func NewHandler(
	events input.EventUseCase,
	interests input.InterestUseCase,
	translator output.T,
	locale string,
	notifierRoleName string,
) *Handler {
	return &Handler{
		events:           events,
		interests:        interests,
		translator:       translator,
		locale:           locale,
		notifierRoleName: notifierRoleName,
	}
}

func (h *Handler) translate(key string, data map[string]any) string {
	return h.translator.T(h.locale, key, data)
}

// errorMessage maps a use-case error to a user-facing reply. Validation
// errors get their specific message; anything unexpected gets the generic
// "try again later".
func (h *Handler) errorMessage(err error, eventID int64) string {
	if !domain.IsValidation(err) &&
		!errors.Is(err, domain.ErrEventNotFound) && !errors.Is(err, domain.ErrNotPermitted) {
		log.Printf("❌ Unexpected error handling interaction: %v", err)
	}
	switch {
	case errors.Is(err, domain.ErrEventNotFound):
		return h.translate("errors.event_not_found", map[string]any{"ID": eventID})
	case errors.Is(err, domain.ErrNotPermitted):
		return h.translate("errors.not_permitted", nil)
	case errors.Is(err, domain.ErrNameRequired):
		return h.translate("errors.name_required", nil)
	case errors.Is(err, domain.ErrNameTooLong):
		return h.translate("errors.name_too_long", nil)
	case errors.Is(err, domain.ErrDescriptionRequired):
		return h.translate("errors.description_required", nil)
	case errors.Is(err, domain.ErrDescriptionTooLong):
		return h.translate("errors.description_too_long", nil)
	case errors.Is(err, domain.ErrInvalidDateTime):
		return h.translate("errors.invalid_datetime", nil)
	case errors.Is(err, domain.ErrInvalidImageType):
		return h.translate("errors.invalid_image_type", nil)
	case errors.Is(err, domain.ErrNothingToEdit):
		return h.translate("errors.nothing_to_edit", nil)
	default:
		return h.translate("errors.generic", nil)
	}
}
