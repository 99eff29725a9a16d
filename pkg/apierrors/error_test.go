package apierrors_test

import (
	"errors"
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"taskboard/pkg/apierrors"
	"taskboard/pkg/translator"
)

func TestMain(m *testing.M) {
	// Initialize minimal translator for tests
	translator.Translator = i18n.NewBundle(language.English)
	// Add a test message
	err := translator.Translator.AddMessages(language.English, &i18n.Message{
		ID:    "test_key",
		Other: "Test message",
	})
	if err != nil {
		return
	}
	m.Run()
}

func TestCreateError_ReturnsEnvelope(t *testing.T) {
	envelope := apierrors.CreateError("test_key", "en")
	assert.False(t, envelope.Success)
	assert.Equal(t, "Test message", envelope.Message)
	assert.Empty(t, envelope.Cause)
}

func TestCreateErrorWithCause_SurfacesUnderlyingError(t *testing.T) {
	envelope := apierrors.CreateErrorWithCause("test_key", "en", errors.New("connection refused"))
	assert.Equal(t, "Test message", envelope.Message)
	assert.Equal(t, "connection refused", envelope.Cause)
}

func TestCreateErrorWithCause_NilCause(t *testing.T) {
	envelope := apierrors.CreateErrorWithCause("test_key", "en", nil)
	assert.Empty(t, envelope.Cause)
}

func TestEnvelope_ErrorMethod(t *testing.T) {
	envelope := apierrors.CreateError("test_key", "en")
	assert.Equal(t, "Message: Test message", envelope.Error())

	withCause := apierrors.CreateErrorWithCause("test_key", "en", errors.New("boom"))
	assert.Equal(t, "Message: Test message, Cause: boom", withCause.Error())
}

func TestCreateError_FallbackToKey(t *testing.T) {
	// No translation exists for "unknown_key"
	envelope := apierrors.CreateError("unknown_key", "en")
	assert.Equal(t, "unknown_key", envelope.Message)
}
