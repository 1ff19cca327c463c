package booking

import "fmt"

// TimeToMinutes converts an "HH:MM" wall-clock string to minutes since
// midnight. Callers construct times from validated sources; malformed input
// is a precondition violation, not a runtime condition, and yields garbage
// rather than an error.
func TimeToMinutes(t string) int {
	if len(t) < 5 {
		return 0
	}
	hours := int(t[0]-'0')*10 + int(t[1]-'0')
	mins := int(t[3]-'0')*10 + int(t[4]-'0')
	return hours*60 + mins
}

// MinutesToTime formats minutes since midnight as a zero-padded 24-hour
// "HH:MM" string. Callers must not pass values >= 1440.
func MinutesToTime(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
