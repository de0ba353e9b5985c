// Package utils holds small helpers shared by the config and tui packages.
package utils

// WrapIndex moves current by delta inside [0, n), wrapping at both ends.
// It reports false when n is not positive, current is out of range, or the
// addition would overflow.
func WrapIndex(current, delta, n int) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	if current < 0 || current >= n {
		return 0, false
	}
	if delta > 0 && current > 0 && delta >= int(^uint(0)>>1)-current {
		return 0, false
	}

	idx := (current + delta) % n
	if idx < 0 {
		idx += n
	}
	return idx, true
}

func BoolPtr(b bool) *bool {
	return &b
}

func IntPtr(i int) *int {
	return &i
}
