package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testSecret = "test_key_secret"

func signFor(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyPaymentSignature(t *testing.T) {
	sig := signFor("order_abc123", "pay_def456")

	assert.True(t, VerifyPaymentSignature("order_abc123", "pay_def456", sig, testSecret))
}

func TestVerifyPaymentSignatureAlteredByte(t *testing.T) {
	sig := signFor("order_abc123", "pay_def456")

	// Flip one hex character anywhere in the signature
	for i := range sig {
		altered := []byte(sig)
		if altered[i] == 'a' {
			altered[i] = 'b'
		} else {
			altered[i] = 'a'
		}
		assert.False(t, VerifyPaymentSignature("order_abc123", "pay_def456", string(altered), testSecret),
			"altered byte at %d must fail verification", i)
	}
}

func TestVerifyPaymentSignatureWrongSecret(t *testing.T) {
	sig := signFor("order_abc123", "pay_def456")

	assert.False(t, VerifyPaymentSignature("order_abc123", "pay_def456", sig, "another_secret"))
}

func TestVerifyPaymentSignatureSwappedIDs(t *testing.T) {
	sig := signFor("order_abc123", "pay_def456")

	assert.False(t, VerifyPaymentSignature("pay_def456", "order_abc123", sig, testSecret))
}
