package binance

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Signer handles Binance futures API authentication.
// Keys are kept as []byte so they can be wiped from memory.
type Signer struct {
	apiKey    []byte
	secretKey []byte
}

// NewSigner creates a new signer.
func NewSigner(apiKey, secretKey string) *Signer {
	return &Signer{
		apiKey:    []byte(apiKey),
		secretKey: []byte(secretKey),
	}
}

// APIKey returns the key for the X-MBX-APIKEY header.
func (s *Signer) APIKey() string {
	return string(s.apiKey)
}

// Sign returns the hex HMAC-SHA256 signature of the query string,
// appended as the `signature` parameter on signed endpoints.
func (s *Signer) Sign(query string) string {
	mac := hmac.New(sha256.New, s.secretKey)
	mac.Write([]byte(query))
	return hex.EncodeToString(mac.Sum(nil))
}

// Wipe clears the keys from memory.
func (s *Signer) Wipe() {
	if s == nil {
		return
	}
	wipeSlice(s.apiKey)
	wipeSlice(s.secretKey)
}

func wipeSlice(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
