package matching

import (
	"math/rand"
	"sync"
	"time"
)

// interviewTimes is the fixed pool of proposable time slots.
var interviewTimes = []string{"10:00 AM", "11:30 AM", "2:00 PM", "3:30 PM"}

// InterviewOptions is a small randomized set of interview proposals
// attached to a shortlisted candidate.
type InterviewOptions struct {
	CandidateName string   `json:"candidate_name"`
	JobTitle      string   `json:"job_title"`
	Dates         []string `json:"dates"`
	Times         []string `json:"times"`
}

// SlotGenerator proposes interview dates and times. The clock and the
// random source are injectable so tests can pin both and assert exact
// output.
type SlotGenerator struct {
	now func() time.Time

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSlotGenerator returns a generator backed by the wall clock and a
// time-seeded random source.
func NewSlotGenerator() *SlotGenerator {
	return NewSlotGeneratorWith(time.Now, rand.NewSource(time.Now().UnixNano()))
}

// NewSlotGeneratorWith builds a generator with an explicit clock and
// random source.
func NewSlotGeneratorWith(now func() time.Time, src rand.Source) *SlotGenerator {
	return &SlotGenerator{now: now, rnd: rand.New(src)}
}

// Generate proposes two weekday dates between 7 and 14 days out and two
// times from the fixed slot pool. Fewer are returned only when the window
// itself contains fewer weekdays.
func (g *SlotGenerator) Generate(candidateName, jobTitle string) InterviewOptions {
	today := g.now()

	var dates []string
	for offset := 7; offset <= 14; offset++ {
		day := today.AddDate(0, 0, offset)
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		dates = append(dates, day.Format("Monday, January 02, 2006"))
	}

	return InterviewOptions{
		CandidateName: candidateName,
		JobTitle:      jobTitle,
		Dates:         g.sample(dates, 2),
		Times:         g.sample(interviewTimes, 2),
	}
}

// sample picks n distinct elements, preserving nothing about input order.
func (g *SlotGenerator) sample(items []string, n int) []string {
	if n > len(items) {
		n = len(items)
	}

	g.mu.Lock()
	perm := g.rnd.Perm(len(items))
	g.mu.Unlock()

	picked := make([]string, 0, n)
	for _, idx := range perm[:n] {
		picked = append(picked, items[idx])
	}
	return picked
}
