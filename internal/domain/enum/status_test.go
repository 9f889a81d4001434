package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillStatusUnmarshalKnownNames(t *testing.T) {
	var s BillStatus
	require.NoError(t, json.Unmarshal([]byte(`"paid"`), &s))
	assert.Equal(t, BillStatusPaid, s)

	require.NoError(t, json.Unmarshal([]byte(`"pending"`), &s))
	assert.Equal(t, BillStatusPending, s)
}

func TestBillStatusUnmarshalRejectsUnknownName(t *testing.T) {
	var s BillStatus
	err := json.Unmarshal([]byte(`"cancelled"`), &s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid bill status")
}

func TestPaymentStatusUnmarshalRejectsUnknownName(t *testing.T) {
	var s PaymentStatus
	err := json.Unmarshal([]byte(`"refunded"`), &s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid payment status")
}

func TestTicketStatusUnmarshalRejectsUnknownName(t *testing.T) {
	var s TicketStatus
	err := json.Unmarshal([]byte(`"resolved"`), &s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid ticket status")
}

func TestStatusRoundTripThroughJSON(t *testing.T) {
	out, err := json.Marshal(PaymentStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, `"completed"`, string(out))

	var s PaymentStatus
	require.NoError(t, json.Unmarshal(out, &s))
	assert.Equal(t, PaymentStatusCompleted, s)
}
