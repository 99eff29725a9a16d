package apierrors

import (
	"fmt"

	"taskboard/pkg/translator"
)

// Envelope is the uniform JSON body returned for every failed API operation.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Cause   string `json:"error,omitempty"`
}

// Error implements the error interface for Envelope.
func (e Envelope) Error() string {
	if e.Cause != "" {
		return fmt.Sprintf("Message: %s, Cause: %s", e.Message, e.Cause)
	}
	return fmt.Sprintf("Message: %s", e.Message)
}

// CreateError generates an error Envelope with a translated message.
func CreateError(msgKey string, lang string) Envelope {
	return Envelope{Message: translator.Localize(msgKey, lang)}
}

// CreateErrorWithCause additionally surfaces the underlying failure, used for
// server-error responses so the caller sees what the store reported.
func CreateErrorWithCause(msgKey string, lang string, cause error) Envelope {
	envelope := CreateError(msgKey, lang)
	if cause != nil {
		envelope.Cause = cause.Error()
	}
	return envelope
}
