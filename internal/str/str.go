package str

// Truncate cuts a string to at most n characters. Multibyte characters are
// never split.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	var count int
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
