package service

import "errors"

// Sentinel errors returned by the services. Handlers map these onto HTTP
// statuses; anything else is treated as a storage failure (500).
var (
	ErrQuizNotFound     = errors.New("quiz not found")
	ErrQuestionNotFound = errors.New("question not found")

	// ErrOptionMismatch means the referenced option is not one of the
	// question's own options (or does not exist at all).
	ErrOptionMismatch = errors.New("option does not belong to question")

	// ErrCorrectOptionInUse means the option is some question's current
	// correct answer and deleting it would orphan that reference.
	ErrCorrectOptionInUse = errors.New("option is referenced as a correct answer")

	// ErrCorrectIndexOutOfRange means a batch entry's correctIndex does not
	// address any of its options.
	ErrCorrectIndexOutOfRange = errors.New("correct index out of range")

	// ErrUnresolvedCorrectOption means a stored correct-option reference
	// does not resolve to any of the question's options.
	ErrUnresolvedCorrectOption = errors.New("correct option reference does not resolve")
)
