package include

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseLineSpec expands a line-range spec such as "1,4-6" or "3-" into the
// 1-based line numbers it names, in spec order. Open ends clamp to the
// document: "-3" starts at line 1, "7-" runs to total.
func ParseLineSpec(spec string, total int) ([]int, error) {
	var out []int
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("empty range in %q", spec)
		}

		if !strings.Contains(part, "-") {
			n, err := strconv.Atoi(part)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("invalid line number %q", part)
			}
			out = append(out, n)
			continue
		}

		startRaw, endRaw, _ := strings.Cut(part, "-")
		start, end := 1, total
		var err error
		if strings.TrimSpace(startRaw) != "" {
			if start, err = strconv.Atoi(strings.TrimSpace(startRaw)); err != nil {
				return nil, fmt.Errorf("invalid range %q", part)
			}
		}
		if strings.TrimSpace(endRaw) != "" {
			if end, err = strconv.Atoi(strings.TrimSpace(endRaw)); err != nil {
				return nil, fmt.Errorf("invalid range %q", part)
			}
		}
		if start < 1 {
			return nil, fmt.Errorf("invalid range %q", part)
		}
		if strings.TrimSpace(endRaw) != "" && end < start {
			return nil, fmt.Errorf("invalid range %q", part)
		}
		if end > total {
			end = total
		}
		for n := start; n <= end; n++ {
			out = append(out, n)
		}
	}
	return out, nil
}
