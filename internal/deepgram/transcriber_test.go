package deepgram

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotbound-ai/hotbound/internal/config"
	"github.com/hotbound-ai/hotbound/internal/vendors"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	client := NewClient(config.DeepgramConfig{
		APIKey:  "dg-test-key",
		BaseURL: srv.URL,
		Model:   "general",
	})
	return client, srv
}

func TestTranscribe_OK(t *testing.T) {
	var gotAuth, gotContentType, gotModel string

	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotModel = r.URL.Query().Get("model")
		assert.Equal(t, "/v1/listen", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":{"channels":[{"alternatives":[{"transcript":"hello from the call"}]}]}}`))
	})
	defer srv.Close()

	transcript, err := client.Transcribe(context.Background(), []byte("fake-audio"), "audio/wav")
	require.NoError(t, err)
	assert.Equal(t, "hello from the call", transcript)
	assert.Equal(t, "Token dg-test-key", gotAuth)
	assert.Equal(t, "audio/wav", gotContentType)
	assert.Equal(t, "general", gotModel)
}

func TestTranscribe_VendorErrorStatus(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"err_msg":"invalid credentials"}`, http.StatusUnauthorized)
	})
	defer srv.Close()

	_, err := client.Transcribe(context.Background(), []byte("fake-audio"), "audio/wav")
	require.Error(t, err)

	var ve *vendors.Error
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "deepgram", ve.Vendor)
	assert.Equal(t, "transcribe", ve.Op)
}

func TestTranscribe_NoAlternatives(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":{"channels":[]}}`))
	})
	defer srv.Close()

	_, err := client.Transcribe(context.Background(), []byte("fake-audio"), "audio/mpeg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no transcription alternatives")
}

func TestTranscribe_ContextCancellation(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Transcribe(ctx, []byte("fake-audio"), "audio/wav")
	require.Error(t, err)
}
