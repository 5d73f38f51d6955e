package gunfeel

import "fmt"

// FeedEntry is one recorded event during a headless range session.
type FeedEntry struct {
	Tick    int
	Weapon  string  // profile name
	Channel string  // fire, recoil, spread, shake, kick
	Key     string  // specific event name within the channel
	Value   string  // human-readable detail
	NumVal  float64 // numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] rifle    fire   shot   burst idx=2 t=0.200
func (e FeedEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-8s %-7s %-14s %s",
		e.Tick, e.Weapon, e.Channel, e.Key, e.Value)
}

// FeedLog collects structured events during a headless range session. It is
// unbounded and machine-readable, consumed by tests and the report CLI; the
// live engine never writes to it.
type FeedLog struct {
	entries []FeedEntry
	verbose bool
}

// NewFeedLog creates a FeedLog. If verbose is true, per-tick channel values
// are also recorded, not just discrete events.
func NewFeedLog(verbose bool) *FeedLog {
	return &FeedLog{verbose: verbose}
}

// Add records a new entry.
func (fl *FeedLog) Add(tick int, weapon, channel, key, value string, numVal float64) {
	fl.entries = append(fl.entries, FeedEntry{
		Tick:    tick,
		Weapon:  weapon,
		Channel: channel,
		Key:     key,
		Value:   value,
		NumVal:  numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (fl *FeedLog) AddVerbose(tick int, weapon, channel, key, value string, numVal float64) {
	if !fl.verbose {
		return
	}
	fl.Add(tick, weapon, channel, key, value, numVal)
}

// Entries returns all recorded entries in order.
func (fl *FeedLog) Entries() []FeedEntry {
	return fl.entries
}

// Filter returns entries matching channel and key. Empty strings match all.
func (fl *FeedLog) Filter(channel, key string) []FeedEntry {
	var out []FeedEntry
	for _, e := range fl.entries {
		if channel != "" && e.Channel != channel {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count returns the number of entries matching channel and key.
func (fl *FeedLog) Count(channel, key string) int {
	return len(fl.Filter(channel, key))
}
