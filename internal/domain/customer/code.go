package customer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Codes are sequential per area: CUST-<shortCode>-<n>, n starting above 1000.
const codeFloor = 1000

func CodePrefix(areaShortCode string) string {
	return "CUST-" + strings.ToUpper(areaShortCode) + "-"
}

// NextCode derives the next customer code for an area from the codes already
// issued under its prefix. Codes that don't match the prefix or carry a
// non-numeric suffix are ignored.
func NextCode(areaShortCode string, existing []string) string {
	prefix := CodePrefix(areaShortCode)
	re := regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `(\d+)$`)

	max := codeFloor
	for _, code := range existing {
		m := re.FindStringSubmatch(code)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%d", prefix, max+1)
}
