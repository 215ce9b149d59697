package task

// Input carries the client supplied fields. A nil field was missing, null,
// or of the wrong JSON type.
type Input struct {
	Title     *string
	Completed *bool
}

func Validate(in Input) (string, bool, error) {
	if in.Title == nil || in.Completed == nil {
		return "", false, ErrInvalidInput
	}
	return *in.Title, *in.Completed, nil
}
