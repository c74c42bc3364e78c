package yobit

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
)

// Signer signs trade API request bodies.
type Signer struct {
	key    string
	secret []byte
}

func NewSigner(key, secret string) *Signer {
	return &Signer{key: key, secret: []byte(secret)}
}

// Headers returns the Key and Sign headers for the url-encoded body.
func (s *Signer) Headers(body string) map[string]string {
	return map[string]string{
		"Content-Type": "application/x-www-form-urlencoded",
		"Key":          s.key,
		"Sign":         s.sign(body),
	}
}

// sign is hex(HMAC-SHA512(secret, body)).
func (s *Signer) sign(body string) string {
	mac := hmac.New(sha512.New, s.secret)
	mac.Write([]byte(body))
	return hex.EncodeToString(mac.Sum(nil))
}
