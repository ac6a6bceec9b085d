package domain

import (
	"encoding/json"
	"errors"
	"strconv"
)

// ServerInfo is static metadata configured at startup.
type ServerInfo struct {
	Version           string         `json:"version"`
	GlobalCreditLimit CreditLimit    `json:"global_credit_limit"`
	Currency          string         `json:"currency"`
	CurrencyBefore    bool           `json:"currency_before"`
	DecimalSeparator  *string        `json:"decimal_seperator,omitempty"`
	Energy            string         `json:"energy"`
	Defaults          DefaultProduct `json:"defaults"`
}

// CreditLimit is an optional limit in minor units. On the wire a missing
// limit is the literal false.
type CreditLimit struct {
	Limit *int64
}

func (c CreditLimit) MarshalJSON() ([]byte, error) {
	if c.Limit == nil {
		return []byte("false"), nil
	}
	return []byte(strconv.FormatInt(*c.Limit, 10)), nil
}

func (c *CreditLimit) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		if b {
			return errors.New("global_credit_limit: expected integer or false, got true")
		}
		c.Limit = nil
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("global_credit_limit: expected integer or false")
	}
	c.Limit = &n
	return nil
}
