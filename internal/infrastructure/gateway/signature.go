package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// ExpectedSignature computes the hex HMAC-SHA256 over "orderID|paymentID"
// with the gateway key secret, matching what Razorpay signs on a successful
// payment.
func ExpectedSignature(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyPaymentSignature reports whether the client-submitted signature is
// the one the gateway produced. The comparison is constant time; a spoofed
// client must not be able to learn the signature byte by byte.
func VerifyPaymentSignature(orderID, paymentID, signature, secret string) bool {
	expected := ExpectedSignature(orderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
