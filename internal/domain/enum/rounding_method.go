package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// RoundingMethod determines how a slip total is snapped to the rounding unit
type RoundingMethod int

const (
	RoundingMethodRound RoundingMethod = 0
	RoundingMethodCeil  RoundingMethod = 1
	RoundingMethodFloor RoundingMethod = 2
)

func (m RoundingMethod) String() string {
	names := [...]string{"Round", "Ceil", "Floor"}
	if int(m) < 0 || int(m) >= len(names) {
		return "Round"
	}
	return names[m]
}

// Apply snaps value to a multiple of unit. A unit of zero or one leaves the
// value unchanged. Values are yen, always non-negative at the slip level.
func (m RoundingMethod) Apply(value, unit int64) int64 {
	if unit <= 1 {
		return value
	}
	rem := value % unit
	if rem == 0 {
		return value
	}
	switch m {
	case RoundingMethodCeil:
		return value + unit - rem
	case RoundingMethodFloor:
		return value - rem
	default:
		if rem*2 >= unit {
			return value + unit - rem
		}
		return value - rem
	}
}

func (m RoundingMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *RoundingMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = RoundingMethod(i)
		return nil
	}
	switch str {
	case "Round":
		*m = RoundingMethodRound
	case "Ceil":
		*m = RoundingMethodCeil
	case "Floor":
		*m = RoundingMethodFloor
	}
	return nil
}

func (m RoundingMethod) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *RoundingMethod) Scan(value interface{}) error {
	if value == nil {
		*m = RoundingMethodRound
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = RoundingMethod(v)
	case int:
		*m = RoundingMethod(v)
	}
	return nil
}
