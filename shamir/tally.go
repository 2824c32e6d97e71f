package shamir

import (
	"slices"
	"sync"

	"github.com/izouxv/hashira/bignum"
)

// Vote is one distinct candidate secret and the number of subsets that
// produced it.
type Vote struct {
	Secret bignum.Int `json:"-"`
	Value  string     `json:"secret"`
	Count  int        `json:"votes"`
}

// Tally counts candidate secrets keyed by their canonical decimal form.
// It is safe for concurrent use.
type Tally struct {
	mu    sync.Mutex
	votes map[string]*Vote
	total int
}

// NewTally returns an empty tally.
func NewTally() *Tally {
	return &Tally{votes: make(map[string]*Vote)}
}

// Add records one vote for secret.
func (t *Tally) Add(secret bignum.Int) {
	key := secret.String()

	t.mu.Lock()
	defer t.mu.Unlock()

	v, ok := t.votes[key]
	if !ok {
		v = &Vote{Secret: secret, Value: key}
		t.votes[key] = v
	}
	v.Count++
	t.total++
}

// Total returns the number of votes cast.
func (t *Tally) Total() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.total
}

// Votes returns every candidate ordered by descending count, ties broken
// by ascending numeric value.
func (t *Tally) Votes() []Vote {
	t.mu.Lock()
	out := make([]Vote, 0, len(t.votes))
	for _, v := range t.votes {
		out = append(out, *v)
	}
	t.mu.Unlock()

	slices.SortFunc(out, func(a, b Vote) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return a.Secret.Cmp(b.Secret)
	})
	return out
}

// Winner returns the candidate with the most votes. Among candidates with
// equal counts the numerically smallest wins. ok is false for an empty tally.
func (t *Tally) Winner() (winner Vote, ok bool) {
	votes := t.Votes()
	if len(votes) == 0 {
		return Vote{}, false
	}
	return votes[0], true
}
