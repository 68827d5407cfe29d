// Package history keeps a log of played hands.
//
// The log is write-only from the game's point of view: records are appended
// as hands settle and nothing is read back to restore a session.
package history

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lox/videopoker/internal/deck"
)

// Record describes one settled hand
type Record struct {
	Session  string    `toml:"session"`
	Hand     int       `toml:"hand"`
	Time     time.Time `toml:"time"`
	Dealt    []string  `toml:"dealt"`
	Held     []int     `toml:"held,omitempty"`
	Final    []string  `toml:"final"`
	Category string    `toml:"category"`
	Result   string    `toml:"result"`
	Bet      int       `toml:"bet"`
	Payout   int       `toml:"payout"`
	Balance  int       `toml:"balance"`
}

// Recorder receives settled hands
type Recorder interface {
	Record(Record) error
}

// Log is the document written to disk
type Log struct {
	Hands []Record `toml:"hand"`
}

// CardNames converts cards to the strings stored in a record
func CardNames(cards []deck.Card) []string {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.String()
	}
	return names
}

// Encode writes records as TOML
func Encode(w io.Writer, records []Record) error {
	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(Log{Hands: records})
}

// EncodeToBytes encodes and returns the result as bytes
func EncodeToBytes(records []Record) ([]byte, error) {
	var buf strings.Builder
	if err := Encode(&buf, records); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}

// Decode reads a log previously written by Encode
func Decode(r io.Reader) ([]Record, error) {
	var log Log
	if _, err := toml.NewDecoder(r).Decode(&log); err != nil {
		return nil, fmt.Errorf("history: decode: %w", err)
	}
	return log.Hands, nil
}

// MemoryRecorder keeps records in memory
type MemoryRecorder struct {
	mu      sync.Mutex
	records []Record
}

// NewMemoryRecorder returns an empty in-memory recorder
func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{}
}

// Record appends a record
func (m *MemoryRecorder) Record(r Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, r)
	return nil
}

// Records returns a copy of everything recorded so far
func (m *MemoryRecorder) Records() []Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Record, len(m.records))
	copy(out, m.records)
	return out
}
