package checkout

// FlowError is a user-facing checkout failure. Message is shown as the
// error notification; Redirect, when set, is where the client should
// navigate; AuthRequired tells the client to open the login prompt.
type FlowError struct {
	Message      string
	Redirect     string
	AuthRequired bool
	Err          error
}

func (e *FlowError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return MsgGenericError
}

func (e *FlowError) Unwrap() error {
	return e.Err
}
