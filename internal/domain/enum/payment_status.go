package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PaymentStatus represents the state of a gateway payment
type PaymentStatus int

const (
	PaymentStatusPending   PaymentStatus = 0
	PaymentStatusCompleted PaymentStatus = 1
	PaymentStatusFailed    PaymentStatus = 2
)

func (s PaymentStatus) String() string {
	names := [...]string{"pending", "completed", "failed"}
	if int(s) < 0 || int(s) >= len(names) {
		return "pending"
	}
	return names[s]
}

func (s PaymentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PaymentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = PaymentStatus(i)
		return nil
	}
	switch str {
	case "pending":
		*s = PaymentStatusPending
	case "completed":
		*s = PaymentStatusCompleted
	case "failed":
		*s = PaymentStatusFailed
	default:
		return fmt.Errorf("invalid payment status: %q", str)
	}
	return nil
}

func (s PaymentStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *PaymentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PaymentStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = PaymentStatus(v)
	case int:
		*s = PaymentStatus(v)
	}
	return nil
}
