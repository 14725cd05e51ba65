package request_test

import (
	"testing"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/request"

	"github.com/stretchr/testify/assert"
)

func TestResolveClientType(t *testing.T) {
	assert.Equal(t, request.ClientMobile, request.ResolveClientType("Mobile", "Mozilla/5.0"))
	assert.Equal(t, request.ClientWeb, request.ResolveClientType("", "Mozilla/5.0 (X11; Linux x86_64)"))
	assert.Equal(t, request.ClientMobile, request.ResolveClientType("", "okhttp/4.12"))
	assert.Equal(t, request.ClientAPI, request.ResolveClientType("", "curl/8.4"))
	assert.True(t, request.IsWebClient(request.ClientWeb))
	assert.False(t, request.IsWebClient(request.ClientAPI))
}
