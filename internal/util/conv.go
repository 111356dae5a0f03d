package util

// RoundDiv returns num/den rounded half up, for non-negative num and positive den.
func RoundDiv(num, den int) int {
	return (2*num + den) / (2 * den)
}

// Percent returns round(part/whole*100), or 0 when whole is 0.
func Percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return RoundDiv(part*100, whole)
}
