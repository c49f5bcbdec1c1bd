package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrQuizNotFound     ErrCode = "QUIZ_NOT_FOUND"
	ErrQuestionNotFound ErrCode = "QUESTION_NOT_FOUND"

	// ─── Referential integrity ─────────────────────────────────────────
	ErrOptionMismatch     ErrCode = "OPTION_MISMATCH"
	ErrCorrectOptionInUse ErrCode = "CORRECT_OPTION_IN_USE"
	ErrDataIntegrity      ErrCode = "DATA_INTEGRITY"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid ID format."
	case ErrInvalidPayload:
		return "Invalid request payload."
	case ErrQuizNotFound:
		return "Quiz not found."
	case ErrQuestionNotFound:
		return "Question not found."
	case ErrOptionMismatch:
		return "The option does not belong to this question."
	case ErrCorrectOptionInUse:
		return "The option is the current correct answer of its question."
	case ErrDataIntegrity:
		return "The stored correct answer could not be resolved."
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
