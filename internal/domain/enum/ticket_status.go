package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// TicketStatus represents the lifecycle state of a support ticket
type TicketStatus int

const (
	TicketStatusOpen   TicketStatus = 0
	TicketStatusClosed TicketStatus = 1
)

func (s TicketStatus) String() string {
	names := [...]string{"open", "closed"}
	if int(s) < 0 || int(s) >= len(names) {
		return "open"
	}
	return names[s]
}

func (s TicketStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *TicketStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = TicketStatus(i)
		return nil
	}
	switch str {
	case "open":
		*s = TicketStatusOpen
	case "closed":
		*s = TicketStatusClosed
	default:
		return fmt.Errorf("invalid ticket status: %q", str)
	}
	return nil
}

func (s TicketStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *TicketStatus) Scan(value interface{}) error {
	if value == nil {
		*s = TicketStatusOpen
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = TicketStatus(v)
	case int:
		*s = TicketStatus(v)
	}
	return nil
}
