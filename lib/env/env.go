package env

import (
	"os"
	"strconv"
)

func Debug() bool {
	return os.Getenv("DEBUG") != ""
}

// Timeout returns $PROMPTFRAME_TIMEOUT in seconds if set and numeric.
func Timeout() (int, bool) {
	if s := os.Getenv("PROMPTFRAME_TIMEOUT"); s != "" {
		i, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return int(i), true
		}
	}
	return -1, false
}
