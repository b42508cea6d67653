package matching

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedNow is a Wednesday; offsets 7..14 span Jan 8 through Jan 15 2025,
// of which Jan 11 and 12 fall on a weekend.
var fixedNow = time.Date(2025, time.January, 1, 9, 0, 0, 0, time.UTC)

func newTestGenerator(seed int64) *SlotGenerator {
	return NewSlotGeneratorWith(func() time.Time { return fixedNow }, rand.NewSource(seed))
}

func TestSlotGenerator_DatesInWeekdayWindow(t *testing.T) {
	validDates := map[string]bool{
		"Wednesday, January 08, 2025": true,
		"Thursday, January 09, 2025":  true,
		"Friday, January 10, 2025":    true,
		"Monday, January 13, 2025":    true,
		"Tuesday, January 14, 2025":   true,
		"Wednesday, January 15, 2025": true,
	}

	for seed := int64(0); seed < 20; seed++ {
		options := newTestGenerator(seed).Generate("Jordan Lee", "Software Engineer")

		require.Len(t, options.Dates, 2, "seed %d", seed)
		assert.NotEqual(t, options.Dates[0], options.Dates[1], "seed %d", seed)
		for _, date := range options.Dates {
			assert.True(t, validDates[date], "seed %d: unexpected date %q", seed, date)
		}
	}
}

func TestSlotGenerator_TimesFromFixedPool(t *testing.T) {
	validTimes := map[string]bool{
		"10:00 AM": true,
		"11:30 AM": true,
		"2:00 PM":  true,
		"3:30 PM":  true,
	}

	for seed := int64(0); seed < 20; seed++ {
		options := newTestGenerator(seed).Generate("Jordan Lee", "Software Engineer")

		require.Len(t, options.Times, 2, "seed %d", seed)
		assert.NotEqual(t, options.Times[0], options.Times[1], "seed %d", seed)
		for _, slot := range options.Times {
			assert.True(t, validTimes[slot], "seed %d: unexpected time %q", seed, slot)
		}
	}
}

func TestSlotGenerator_CarriesIdentity(t *testing.T) {
	options := newTestGenerator(1).Generate("Jordan Lee", "Data Scientist")
	assert.Equal(t, "Jordan Lee", options.CandidateName)
	assert.Equal(t, "Data Scientist", options.JobTitle)
}

func TestSlotGenerator_DeterministicWithFixedSeed(t *testing.T) {
	first := newTestGenerator(42).Generate("Jordan Lee", "Software Engineer")
	second := newTestGenerator(42).Generate("Jordan Lee", "Software Engineer")
	assert.Equal(t, first, second)
}
