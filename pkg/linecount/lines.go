package linecount

import "strings"

// CountLines returns the number of lines in content that are non-empty
// after trimming surrounding whitespace. Lines are split on '\n'.
func CountLines(content []byte) int {
	count := 0
	for _, line := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}
