package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// EntityKind selects the explorer path for a linked entity.
type EntityKind string

const (
	EntityTransaction EntityKind = "transaction"
	EntityAddress     EntityKind = "address"
	EntityToken       EntityKind = "token"
)

// ExplorerURL builds a chain-explorer hyperlink for the given entity. The
// base URL comes from configuration; unknown kinds fall back to the
// transaction path.
func ExplorerURL(explorerBaseURL, entityID string, kind EntityKind) string {
	base := strings.TrimRight(explorerBaseURL, "/")
	switch kind {
	case EntityAddress:
		return fmt.Sprintf("%s/address/%s", base, entityID)
	case EntityToken:
		return fmt.Sprintf("%s/token/%s", base, entityID)
	default:
		return fmt.Sprintf("%s/tx/%s", base, entityID)
	}
}

// ShortenAddress renders an address as 0x1234...abcd. Valid hex addresses
// are checksummed first; anything else is shortened as-is.
func ShortenAddress(addr string) string {
	if common.IsHexAddress(addr) {
		addr = common.HexToAddress(addr).Hex()
	}
	if len(addr) <= 10 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}

// USD renders a dollar amount with thousands grouping and two decimals.
// Positive amounts below one cent collapse to "<$0.01".
func USD(amount decimal.Decimal) string {
	cent := decimal.New(1, -2)
	if amount.IsPositive() && amount.LessThan(cent) {
		return "<$0.01"
	}

	rounded := amount.Round(2)
	negative := rounded.IsNegative()
	whole := rounded.Abs().Floor()
	frac := rounded.Abs().Sub(whole).Mul(decimal.New(100, 0)).Round(0)

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(whole.String()), frac.IntPart())
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// RelativeTime renders a unix timestamp as a coarse "n units ago" label.
func RelativeTime(unixSeconds int64, now time.Time) string {
	elapsed := now.Sub(time.Unix(unixSeconds, 0))
	if elapsed < 0 {
		elapsed = 0
	}

	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		return plural(int(elapsed.Minutes()), "minute")
	case elapsed < 24*time.Hour:
		return plural(int(elapsed.Hours()), "hour")
	default:
		return plural(int(elapsed.Hours()/24), "day")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
