package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const signaturePrefix = "sha256="

// HMACSignatureService implements ports.SignatureService over raw request
// bodies. Courier webhooks are signed this way.
type HMACSignatureService struct{}

func NewHMACSignatureService() *HMACSignatureService {
	return &HMACSignatureService{}
}

// Sign returns the lowercase hex HMAC-SHA256 of body.
func (s *HMACSignatureService) Sign(secret string, body []byte) string {
	return hex.EncodeToString(s.mac(secret, body))
}

// Verify compares signature against body. The header may carry a
// "sha256=" prefix and upper-case hex; anything that is not hex fails.
func (s *HMACSignatureService) Verify(secret string, body []byte, signature string) bool {
	signature = strings.TrimSpace(signature)
	if len(signature) >= len(signaturePrefix) && strings.EqualFold(signature[:len(signaturePrefix)], signaturePrefix) {
		signature = signature[len(signaturePrefix):]
	}
	got, err := hex.DecodeString(signature)
	if err != nil || len(got) != sha256.Size {
		return false
	}
	return hmac.Equal(s.mac(secret, body), got)
}

func (s *HMACSignatureService) mac(secret string, body []byte) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	m.Write(body)
	return m.Sum(nil)
}
