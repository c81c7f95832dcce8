package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSign_MatchesReferenceHMAC(t *testing.T) {
	payload := []byte(`{"run_id":"abc","code":"SP-1"}`)
	secret := "shared-secret"

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	assert.Equal(t, expected, sign(payload, secret))
}

func TestSign_DiffersPerSecret(t *testing.T) {
	payload := []byte(`{}`)
	assert.NotEqual(t, sign(payload, "a"), sign(payload, "b"))
}
