package encoding

import (
	"fmt"
	"time"

	"github.com/arloliu/vecfield/errs"
)

const (
	ticksPerSecond = 10_000_000
	nanosPerTick   = 100

	// unixEpochSeconds is the number of seconds from 0001-01-01 to 1970-01-01.
	unixEpochSeconds = 62_135_596_800

	// ticksMask drops the two kind bits of a serialized .NET DateTime.
	ticksMask = 0x3FFF_FFFF_FFFF_FFFF
)

// MaxTicks is the tick count of 9999-12-31T23:59:59.9999999Z, the last
// representable instant.
const MaxTicks = 3_155_378_975_999_999_999

// CheckTimestamp returns an error wrapping errs.ErrTimestampOutOfRange unless ts
// lies between 0001-01-01 and 9999-12-31 in UTC.
func CheckTimestamp(ts time.Time) error {
	if y := ts.UTC().Year(); y < 1 || y > 9999 {
		return fmt.Errorf("%w: %s", errs.ErrTimestampOutOfRange, ts.UTC().Format(time.RFC3339Nano))
	}

	return nil
}

// TicksFromTime converts ts to 100ns ticks since 0001-01-01T00:00:00 UTC.
// Sub-tick precision is truncated. The result is only meaningful for
// timestamps accepted by CheckTimestamp.
func TicksFromTime(ts time.Time) int64 {
	return (ts.Unix()+unixEpochSeconds)*ticksPerSecond + int64(ts.Nanosecond()/nanosPerTick)
}

// TimeFromTicks converts a serialized timestamp back to a UTC time.
//
// The two high kind bits are ignored and the remaining bits are read as ticks,
// so local-kind values written by other tools come back as their raw tick count.
func TimeFromTicks(ticks int64) time.Time {
	ticks &= ticksMask
	secs := ticks/ticksPerSecond - unixEpochSeconds
	nsec := (ticks % ticksPerSecond) * nanosPerTick

	return time.Unix(secs, nsec).UTC()
}
