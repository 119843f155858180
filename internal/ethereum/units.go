package ethereum

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

const (
	EtherDecimals = 18
	GweiDecimals  = 9
)

var errInvalidAmount error = errors.New("invalid amount")

func pow10(decimals int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
}

// ParseUnits converts a non-negative decimal string to its integer base unit
// amount, e.g. ParseUnits("1.5", 9) is 1500000000.
func ParseUnits(value string, decimals int) (*big.Int, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(value))
	if !ok {
		return nil, fmt.Errorf("%w: %q", errInvalidAmount, value)
	}
	if r.Sign() < 0 {
		return nil, fmt.Errorf("%w: %q is negative", errInvalidAmount, value)
	}

	r.Mul(r, new(big.Rat).SetInt(pow10(decimals)))
	if !r.IsInt() {
		return nil, fmt.Errorf("%w: %q has more than %d decimals", errInvalidAmount, value, decimals)
	}
	return new(big.Int).Set(r.Num()), nil
}

// FormatUnits renders a base unit amount as a decimal string with at least one
// fractional digit, e.g. FormatUnits(1e18, 18) is "1.0".
func FormatUnits(value *big.Int, decimals int) string {
	if value == nil {
		return "0.0"
	}

	abs := new(big.Int).Abs(value)
	whole, frac := new(big.Int).QuoRem(abs, pow10(decimals), new(big.Int))

	fracStr := frac.String()
	if pad := decimals - len(fracStr); pad > 0 {
		fracStr = strings.Repeat("0", pad) + fracStr
	}
	fracStr = strings.TrimRight(fracStr, "0")
	if fracStr == "" {
		fracStr = "0"
	}

	sign := ""
	if value.Sign() < 0 {
		sign = "-"
	}
	return sign + whole.String() + "." + fracStr
}

// FixedRate converts at a configured constant USD/ETH price. It is a
// placeholder for a live price feed.
type FixedRate struct {
	usdPerEth *big.Rat
}

func NewFixedRate(usdPerEth string) (FixedRate, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(usdPerEth))
	if !ok || r.Sign() <= 0 {
		return FixedRate{}, fmt.Errorf("%w: usd per eth %q", errInvalidAmount, usdPerEth)
	}
	return FixedRate{usdPerEth: r}, nil
}

// USDToWei returns floor(usd / usdPerEth * 1e18).
func (f FixedRate) USDToWei(usd float64) (*big.Int, error) {
	if f.usdPerEth == nil {
		return nil, errors.New("rate not configured")
	}
	if usd <= 0 {
		return nil, fmt.Errorf("%w: usd amount must be positive", errInvalidAmount)
	}

	// going through the shortest decimal form keeps 5000.1 from becoming 5000.09999...
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(usd, 'f', -1, 64))
	if !ok {
		return nil, fmt.Errorf("%w: %v", errInvalidAmount, usd)
	}

	r.Mul(r, new(big.Rat).SetInt(pow10(EtherDecimals)))
	r.Quo(r, f.usdPerEth)
	return new(big.Int).Quo(r.Num(), r.Denom()), nil
}
