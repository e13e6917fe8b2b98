package vendors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_FormatAndUnwrap(t *testing.T) {
	cause := errors.New("status 429: rate limit exceeded; body: {...}")
	err := New("deepgram", "transcribe", cause)

	assert.Equal(t, "deepgram: transcribe: status 429: rate limit exceeded; body: {...}", err.Error())
	assert.True(t, errors.Is(err, cause))
}

func TestError_As(t *testing.T) {
	var wrapped error = New("vapi", "synthesize", errors.New("boom"))

	var ve *Error
	require.True(t, errors.As(wrapped, &ve))
	assert.Equal(t, "vapi", ve.Vendor)
	assert.Equal(t, "synthesize", ve.Op)
}

func TestSummary_OmitsVendorBody(t *testing.T) {
	err := Newf("gemini", "generate", "status 500: %s", `{"internal":"secret detail"}`)

	summary := Summary(err)
	assert.Equal(t, "gemini generate failed", summary)
	assert.NotContains(t, summary, "secret")
}
