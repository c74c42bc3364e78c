package yobit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// go test -v --run TestSignerHeaders
func TestSignerHeaders(t *testing.T) {
	h := NewSigner("my-key", "secret").Headers("method=getInfo&nonce=1")

	assert.Equal(t, "my-key", h["Key"])
	assert.Equal(t, "application/x-www-form-urlencoded", h["Content-Type"])
	assert.Equal(t,
		"e420ff78eeeb55d09d89f116a88e586082dca58c52af2614c25c4087de562684b51949368104fe139ea2831345b7c50a229d04513b59319ceafb00b4b11f5995",
		h["Sign"])
}
