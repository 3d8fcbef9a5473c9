package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Car represents a sellable vehicle listing. Identity is the (brand, model)
// pair; there is no synthetic ID.
type Car struct {
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	Price       int    `json:"price"`
	Image       string `json:"image"`
	Description string `json:"desc"`
}

// CarListResponse is the payload for GET /api/cars.
type CarListResponse struct {
	Cars        []Car `json:"cars"`
	ShipmentFee int   `json:"shipment_fee"`
}

// FlexInt is an integer that unmarshals from either a JSON number or a
// numeric JSON string.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return fmt.Errorf("empty value")
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("not an integer: %q", s)
		}
		*f = FlexInt(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexInt(n)
	return nil
}

// SetPriceRequest is the payload for POST /api/admin/set_price. NewPrice is
// kept raw so the service can tell a missing value apart from a malformed one.
type SetPriceRequest struct {
	Brand    string          `json:"brand"`
	Model    string          `json:"model"`
	NewPrice json.RawMessage `json:"new_price"`
}

// AdminLoginRequest is the payload for POST /api/admin/login.
type AdminLoginRequest struct {
	Password string `json:"password"`
}
