package arith

import "fmt"

// Mod returns the truncated remainder a % b. The sign of a non-zero result
// follows the dividend.
func Mod(a, b int32) (int32, error) {
	if b == 0 {
		return 0, fmt.Errorf("%w: %d %% 0", ErrDivisionByZero, a)
	}
	return a % b, nil
}
