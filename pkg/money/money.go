// Package money provides a fixed-point currency representation in minor units.
// All price arithmetic in the storefront goes through this package so that
// subtotal, tax and total derivation stays exact and never touches binary
// floating point.
//
// Package money 提供以最小货币单位表示的定点金额类型。
// 商店的所有价格运算都通过本包完成，保证小计、税费和总价的推导精确无误，
// 不经过二进制浮点数。
package money

import (
	"fmt"
	"strconv"
	"strings"
)

// Cents is an amount of currency expressed in minor units (hundredths).
// A value of 999 renders as "9.99".
//
// Cents 是以最小货币单位（百分之一）表示的金额。值999显示为"9.99"。
type Cents int64

// Parse converts a decimal string such as "449", "9.99" or "627.00" into
// Cents. At most two fractional digits are accepted.
//
// Parse 将"449"、"9.99"或"627.00"这样的十进制字符串转换为Cents。
// 最多接受两位小数。
func Parse(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("money: empty amount")
	}
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("money: too many fractional digits in %q", s)
	}
	for len(frac) < 2 {
		frac += "0"
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("money: invalid amount %q", s)
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("money: invalid amount %q", s)
	}
	c := Cents(w*100 + f)
	if neg {
		c = -c
	}
	return c, nil
}

// MustParse is like Parse but panics on malformed input.
// It is intended for literals in tests and seed data.
func MustParse(s string) Cents {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String renders the amount with exactly two fractional digits, e.g. "677.16".
func (c Cents) String() string {
	n := int64(c)
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	return fmt.Sprintf("%s%d.%02d", sign, n/100, n%100)
}

// MulQty multiplies the amount by an item quantity.
func (c Cents) MulQty(qty int) Cents {
	return c * Cents(qty)
}

// ApplyBasisPoints returns c scaled by rate/10000 with half-up rounding.
// A tax rate of 8% is 800 basis points.
//
// ApplyBasisPoints 返回按rate/10000缩放后的金额，采用四舍五入。
// 8%的税率对应800个基点。
func (c Cents) ApplyBasisPoints(bps int64) Cents {
	p := int64(c) * bps
	if p >= 0 {
		return Cents((p + 5000) / 10000)
	}
	return Cents(-((-p + 5000) / 10000))
}

// MarshalJSON encodes the amount as a plain JSON number with two fractional
// digits, matching the wire format consumed by storefront clients.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalJSON accepts either a JSON number or a quoted decimal string.
func (c *Cents) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		return nil
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// UnmarshalYAML decodes a scalar YAML node holding a decimal amount.
func (c *Cents) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}
