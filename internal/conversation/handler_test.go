package conversation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlerForTest(responder *mockResponder, synth *mockSynthesizer) *Handler {
	svc := NewService(&mockStore{}, responder, synth, testVoice, time.Minute)
	return NewHandler(svc)
}

func postTurn(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/conversation", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Simulate(rec, req)
	return rec
}

func TestSimulateHandler_Success(t *testing.T) {
	h := newHandlerForTest(
		&mockResponder{reply: "not interested"},
		&mockSynthesizer{audio: []byte("mp3-bytes")},
	)

	rec := postTurn(t, h, `{"user_input":"quick question","conversation_history":""}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "audio/mpeg", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Equal(t, "mp3-bytes", rec.Body.String())
}

func TestSimulateHandler_InvalidJSON(t *testing.T) {
	h := newHandlerForTest(&mockResponder{}, &mockSynthesizer{})

	rec := postTurn(t, h, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSimulateHandler_MissingUserInput(t *testing.T) {
	h := newHandlerForTest(&mockResponder{}, &mockSynthesizer{})

	rec := postTurn(t, h, `{"conversation_history":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSimulateHandler_GenerationFailure(t *testing.T) {
	h := newHandlerForTest(
		&mockResponder{err: errors.New("vendor exploded: secret internals")},
		&mockSynthesizer{},
	)

	rec := postTurn(t, h, `{"user_input":"hello"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "reply generation failed")
	// Raw vendor detail stays out of the client response.
	assert.NotContains(t, rec.Body.String(), "secret internals")
}

func TestSimulateHandler_SynthesisFailureDistinctFromGeneration(t *testing.T) {
	h := newHandlerForTest(
		&mockResponder{reply: "reply"},
		&mockSynthesizer{err: errors.New("tts down")},
	)

	rec := postTurn(t, h, `{"user_input":"hello"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "voice synthesis failed")
	assert.NotContains(t, rec.Body.String(), "generation")
}
