package ic

import (
	"regexp"
	"strings"
)

var labelPattern = regexp.MustCompile(`^([A-Za-z_]\w*):(.*)$`)

// PreScanLabels makes a single linear pass over lines, recognizing
// `name:` prefixes at the start of a line and binding name to that line's
// zero-based index. The label prefix is stripped from the returned copy of
// lines so the driver loop can tokenize the remainder normally; a label on
// a line by itself becomes an empty (no-op) line. The second return value
// flags which lines carried a label prefix, so the driver can tell a
// no-op label line apart from a genuinely empty line (the latter is an
// error per spec §4.5/§7). Grounded on original_source/src/ic.rs's
// single-pass label resolution ahead of execution.
func PreScanLabels(s *ICState, lines []string) ([]string, []bool) {
	out := make([]string, len(lines))
	wasLabel := make([]bool, len(lines))
	for i, line := range lines {
		m := labelPattern.FindStringSubmatch(line)
		if m == nil {
			out[i] = line
			continue
		}
		s.AddLabel(m[1], i)
		out[i] = strings.TrimSpace(m[2])
		wasLabel[i] = true
	}
	return out, wasLabel
}
