package analytics

import "sort"

// Count is one distinct value and the number of times it occurred
type Count struct {
	Value string
	Count int
}

// Counts is a frequency table ordered by descending count. Equal counts keep
// the order in which the values were first seen.
type Counts []Count

// Total returns the sum of all counts
func (cs Counts) Total() int {
	total := 0
	for _, c := range cs {
		total += c.Count
	}
	return total
}

// Top returns the first n entries, or all of them when n is out of range
func (cs Counts) Top(n int) Counts {
	if n < 0 || n >= len(cs) {
		return cs
	}
	return cs[:n]
}

// Labels returns the values in table order
func (cs Counts) Labels() []string {
	labels := make([]string, len(cs))
	for i, c := range cs {
		labels[i] = c.Value
	}
	return labels
}

// Values returns the counts in table order as floats for plotting
func (cs Counts) Values() []float64 {
	values := make([]float64, len(cs))
	for i, c := range cs {
		values[i] = float64(c.Count)
	}
	return values
}

// Get returns the count recorded for value
func (cs Counts) Get(value string) int {
	for _, c := range cs {
		if c.Value == value {
			return c.Count
		}
	}
	return 0
}

// Counter accumulates value frequencies in first-seen order
type Counter struct {
	index  map[string]int
	counts []Count
}

// NewCounter creates an empty counter
func NewCounter() *Counter {
	return &Counter{index: make(map[string]int)}
}

// Add records one occurrence of value
func (c *Counter) Add(value string) {
	if i, ok := c.index[value]; ok {
		c.counts[i].Count++
		return
	}
	c.index[value] = len(c.counts)
	c.counts = append(c.counts, Count{Value: value, Count: 1})
}

// Counts returns the frequency table sorted by descending count. The sort is
// stable so ties stay in first-seen order.
func (c *Counter) Counts() Counts {
	out := make(Counts, len(c.counts))
	copy(out, c.counts)
	sortDescending(out)
	return out
}

func sortDescending(cs Counts) {
	sort.SliceStable(cs, func(i, j int) bool {
		return cs[i].Count > cs[j].Count
	})
}
