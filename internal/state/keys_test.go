package state

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey_PrefersCertID(t *testing.T) {
	key := Key("CERT-123", "https://x/y.pdf", "Go avancé", "ACME")
	assert.Equal(t, "shareSteps:CERT-123", key)
}

func TestKey_FallbackHashIsStable(t *testing.T) {
	a := Key("", "https://x/y.pdf", "Go avancé", "ACME")
	b := Key("", "https://x/y.pdf", "Go avancé", "ACME")

	assert.Equal(t, a, b)
	assert.True(t, strings.HasPrefix(a, "shareSteps:"))
	assert.Len(t, strings.TrimPrefix(a, "shareSteps:"), 16)
}

func TestKey_FallbackHashDistinguishesSessions(t *testing.T) {
	a := Key("", "https://x/y.pdf", "Go avancé", "ACME")
	b := Key("", "https://x/z.pdf", "Go avancé", "ACME")
	c := Key("", "https://x/y.pdf", "Go avancé", "Globex")

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
}
