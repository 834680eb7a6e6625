package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ChargeCategory classifies a slip line item. Time-based fee categories are
// owned by the charge deriver and wiped+regenerated on full recalculation;
// menu items and adjustments are never touched by it.
type ChargeCategory int

const (
	ChargeCategoryMenuItem   ChargeCategory = 0
	ChargeCategorySetFee     ChargeCategory = 1
	ChargeCategoryExtension  ChargeCategory = 2
	ChargeCategoryNomination ChargeCategory = 3
	ChargeCategoryDouhan     ChargeCategory = 4
	ChargeCategoryHouseFee   ChargeCategory = 5
	ChargeCategoryAdjustment ChargeCategory = 6
)

func (c ChargeCategory) String() string {
	names := [...]string{"MenuItem", "SetFee", "Extension", "Nomination", "Douhan", "HouseFee", "Adjustment"}
	if int(c) < 0 || int(c) >= len(names) {
		return "MenuItem"
	}
	return names[c]
}

// Label returns the display name printed on slips.
func (c ChargeCategory) Label() string {
	switch c {
	case ChargeCategorySetFee:
		return "セット料金"
	case ChargeCategoryExtension:
		return "延長料金"
	case ChargeCategoryNomination:
		return "指名料"
	case ChargeCategoryDouhan:
		return "同伴料"
	case ChargeCategoryHouseFee:
		return "場内料金"
	case ChargeCategoryAdjustment:
		return "調整"
	default:
		return ""
	}
}

// IsDerived reports whether the category is owned by the charge deriver.
func (c ChargeCategory) IsDerived() bool {
	switch c {
	case ChargeCategorySetFee, ChargeCategoryExtension, ChargeCategoryNomination,
		ChargeCategoryDouhan, ChargeCategoryHouseFee:
		return true
	}
	return false
}

// IsCastFee reports whether the category bills a cast's time with a guest.
func (c ChargeCategory) IsCastFee() bool {
	return c == ChargeCategoryNomination || c == ChargeCategoryDouhan || c == ChargeCategoryHouseFee
}

// DerivedChargeCategories lists the categories regenerated by a full recalculation.
func DerivedChargeCategories() []ChargeCategory {
	return []ChargeCategory{
		ChargeCategorySetFee,
		ChargeCategoryExtension,
		ChargeCategoryNomination,
		ChargeCategoryDouhan,
		ChargeCategoryHouseFee,
	}
}

func (c ChargeCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ChargeCategory) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*c = ChargeCategory(i)
		return nil
	}
	switch str {
	case "MenuItem":
		*c = ChargeCategoryMenuItem
	case "SetFee":
		*c = ChargeCategorySetFee
	case "Extension":
		*c = ChargeCategoryExtension
	case "Nomination":
		*c = ChargeCategoryNomination
	case "Douhan":
		*c = ChargeCategoryDouhan
	case "HouseFee":
		*c = ChargeCategoryHouseFee
	case "Adjustment":
		*c = ChargeCategoryAdjustment
	}
	return nil
}

func (c ChargeCategory) Value() (driver.Value, error) {
	return int64(c), nil
}

func (c *ChargeCategory) Scan(value interface{}) error {
	if value == nil {
		*c = ChargeCategoryMenuItem
		return nil
	}
	switch v := value.(type) {
	case int64:
		*c = ChargeCategory(v)
	case int:
		*c = ChargeCategory(v)
	}
	return nil
}
