package tree

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Order selects how the children of a directory are arranged before printing.
type Order uint8

const (
	// OrderName sorts names byte-wise. Deterministic across runs and hosts.
	OrderName Order = iota
	// OrderNone keeps whatever order the host returned.
	OrderNone
	// OrderLocale sorts names with Unicode collation (root locale).
	OrderLocale
)

// String returns the config spelling of the order.
func (o Order) String() string {
	switch o {
	case OrderName:
		return "name"
	case OrderNone:
		return "none"
	case OrderLocale:
		return "locale"
	default:
		return "unknown"
	}
}

// ParseOrder converts a config or flag value to an Order.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "name":
		return OrderName, nil
	case "none":
		return OrderNone, nil
	case "locale":
		return OrderLocale, nil
	default:
		return OrderName, fmt.Errorf("invalid sort order %q (expected name|none|locale)", s)
	}
}

// sorter returns the function used to arrange names in place.
func (o Order) sorter() func([]string) {
	switch o {
	case OrderNone:
		return func([]string) {}
	case OrderLocale:
		// Collator is not safe for concurrent use; one per printer is enough.
		c := collate.New(language.Und)
		return c.SortStrings
	default:
		return sort.Strings
	}
}
