package parse

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

var errTooManyFields = errors.New("more than hours, minutes and seconds")

const maxSeconds = uint64(math.MaxInt64 / int64(time.Second))

// ColonDuration converts "H:MM:SS", "M:SS" or "SS" into a duration. Search listings show lengths this way.
func ColonDuration(text string) (time.Duration, error) {
	fields := strings.Split(text, ":")
	if len(fields) > 3 {
		return 0, numericFormat(text, errTooManyFields)
	}
	var seconds uint64
	for _, field := range fields {
		n, err := strconv.ParseUint(field, 10, 32)
		if err != nil {
			return 0, numericFormat(text, err)
		}
		seconds = seconds*60 + n
		if seconds > maxSeconds {
			return 0, numericFormat(text, strconv.ErrRange)
		}
	}
	return time.Duration(seconds) * time.Second, nil
}

// MillisDuration converts a decimal count of milliseconds, as the player response reports it, into a duration.
func MillisDuration(text string) (time.Duration, error) {
	ms, err := strconv.ParseUint(text, 10, 63)
	if err != nil {
		return 0, numericFormat(text, err)
	}
	if ms > uint64(math.MaxInt64/int64(time.Millisecond)) {
		return 0, numericFormat(text, strconv.ErrRange)
	}
	return time.Duration(ms) * time.Millisecond, nil
}
