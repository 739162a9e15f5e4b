package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrForbidden        = errors.New("not enough rights")
	ErrValidation       = errors.New("validation error")
)

var (
	ErrProfileNotFound       = errors.New("profile doesn't exist")
	ErrQuestionnaireNotFound = errors.New("questionnaire doesn't exist")
	ErrFoodNotFound          = errors.New("food doesn't exist")
	ErrWorkoutNotFound       = errors.New("workout doesn't exist")
	ErrReferenceNotFound     = errors.New("referenced user or catalog entry doesn't exist")
)

// Plan pipeline failures. Handlers turn every one of them into an {"error": msg} body.
var (
	ErrPreconditionMissing   = errors.New("questionnaire is not filled")
	ErrCompletionUnavailable = errors.New("completion service unavailable")
	ErrPlanFormat            = errors.New("AI did not return valid JSON")
	ErrPlanStructure         = errors.New("AI returned an invalid plan structure")
	ErrAIFormat              = errors.New("AI did not return valid JSON")
	ErrAIStructure           = errors.New("AI returned an invalid food info structure")
	ErrPersistence           = errors.New("persistence error")
)

// RejectedOutputError keeps the model output that failed to parse so the
// caller can log it with its own request scope.
type RejectedOutputError struct {
	Raw string
	Err error
}

func (e *RejectedOutputError) Error() string {
	return e.Err.Error()
}

func (e *RejectedOutputError) Unwrap() error {
	return e.Err
}
