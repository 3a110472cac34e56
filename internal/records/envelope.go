package records

// Status is the outward result of an operation.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// Kind classifies an envelope for the transport layer. It is never serialized.
type Kind string

const (
	KindOK       Kind = "ok"
	KindInvalid  Kind = "invalid"
	KindNotFound Kind = "not_found"
	KindFailure  Kind = "failure"
)

// Envelope is the fixed response shape returned by every service operation.
type Envelope struct {
	Status   Status `json:"status"`
	Message  string `json:"message"`
	RowCount int    `json:"rowCount"`
	Data     any    `json:"data"`

	Kind Kind `json:"-"`
}

// EmptyData is the payload of failed envelopes and of successful deletes.
var EmptyData = []struct{}{}

// Single builds a success envelope for one record.
func Single(message string, value any) Envelope {
	return Envelope{
		Status:   StatusSuccess,
		Message:  message,
		RowCount: 1,
		Data:     value,
		Kind:     KindOK,
	}
}

// Many builds a success envelope for a collection; rowCount is its length.
func Many[T any](message string, values []T) Envelope {
	if values == nil {
		values = []T{}
	}

	return Envelope{
		Status:   StatusSuccess,
		Message:  message,
		RowCount: len(values),
		Data:     values,
		Kind:     KindOK,
	}
}

// Done builds a success envelope without payload.
func Done(message string) Envelope {
	return Envelope{
		Status:   StatusSuccess,
		Message:  message,
		RowCount: 0,
		Data:     EmptyData,
		Kind:     KindOK,
	}
}

// Fail builds a failed envelope.
func Fail(kind Kind, message string) Envelope {
	return Envelope{
		Status:   StatusFailed,
		Message:  message,
		RowCount: 0,
		Data:     EmptyData,
		Kind:     kind,
	}
}

func (e Envelope) Succeeded() bool {
	return e.Status == StatusSuccess
}
