package analyzer

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"PokerAssist/internal/game/card"
	"PokerAssist/internal/game/engine"
)

var ErrDuplicateCard = errors.New("duplicate card")

type DuplicateCardError struct {
	Cards []string
}

func (e *DuplicateCardError) Error() string {
	return fmt.Sprintf("duplicate card: %s", strings.Join(e.Cards, ", "))
}

func (e *DuplicateCardError) Unwrap() error { return ErrDuplicateCard }

// Classify maps an error to its HTTP status and code. Anything unknown is an
// internal error.
func Classify(err error) (int, ErrorCode) {
	switch {
	case errors.Is(err, engine.ErrValidation):
		return http.StatusBadRequest, CodeValidation
	case errors.Is(err, card.ErrInvalidCard):
		return http.StatusBadRequest, CodeInvalidCard
	case errors.Is(err, ErrDuplicateCard):
		return http.StatusBadRequest, CodeDuplicateCard
	}
	return http.StatusInternalServerError, CodeInternal
}

// NewErrorResponse hides the message of internal errors from clients.
func NewErrorResponse(err error) (int, ErrorResponse) {
	status, code := Classify(err)
	msg := err.Error()
	if code == CodeInternal {
		msg = "internal error"
	}
	return status, ErrorResponse{Code: code, Error: msg}
}
