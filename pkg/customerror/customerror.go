package customerror

// CustomError pairs the message shown to a user with the one kept for
// logs. Error() reports the internal message.
type CustomError struct {
	userError     string
	internalError string
}

func New(userError, internalError string) CustomError {
	return CustomError{
		userError:     userError,
		internalError: internalError,
	}
}

func (c CustomError) Error() string {
	return c.internalError
}

func (c CustomError) UserError() string {
	return c.userError
}
