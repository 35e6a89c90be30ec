// Package journal keeps an append-only record of every correction
// monalign wrote, one JSON line per write attempt. The file is the
// answer to "what did this tool change and when".
package journal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/StoiaCode/Fix-MonitorAlignment/internal/store"
)

// Entry is one recorded write attempt.
type Entry struct {
	Timestamp  int64  `json:"ts"` // Unix milliseconds
	SnapshotID string `json:"snapshot"`
	MonitorID  string `json:"monitor"`
	Axis       string `json:"axis"`
	OldValue   int32  `json:"old"`
	NewValue   int32  `json:"new"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
}

// Journal appends entries to a JSONL file. The file is created on the
// first append.
type Journal struct {
	mu   sync.Mutex
	path string
}

// Open returns a journal writing to path. No file is touched until the
// first Append.
func Open(path string) *Journal {
	return &Journal{path: path}
}

// Path returns the journal file location.
func (j *Journal) Path() string {
	return j.path
}

// Append writes entries as JSON lines. Entries without a timestamp are
// stamped with the current time.
func (j *Journal) Append(entries ...Entry) error {
	if len(entries) == 0 {
		return nil
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(j.path), 0755); err != nil {
		return fmt.Errorf("failed to create journal directory: %w", err)
	}
	f, err := os.OpenFile(j.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer f.Close()

	for _, e := range entries {
		if e.Timestamp == 0 {
			e.Timestamp = time.Now().UnixMilli()
		}
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("failed to encode journal entry: %w", err)
		}
		if _, err := f.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write journal: %w", err)
		}
	}
	return nil
}

// FromResults converts apply outcomes into journal entries.
func FromResults(snapshotID string, results []store.ApplyResult) []Entry {
	entries := make([]Entry, 0, len(results))
	now := time.Now().UnixMilli()
	for _, r := range results {
		e := Entry{
			Timestamp:  now,
			SnapshotID: snapshotID,
			MonitorID:  r.Correction.MonitorID,
			Axis:       string(r.Correction.Axis),
			OldValue:   r.Correction.OldValue,
			NewValue:   r.Correction.NewValue,
			Success:    r.Err == nil,
		}
		if r.Err != nil {
			e.Error = r.Err.Error()
		}
		entries = append(entries, e)
	}
	return entries
}

// Read loads all entries in file order. A missing file reads as empty.
// Unparseable lines are skipped: a crash can leave a torn last line.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(line, &e); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan journal: %w", err)
	}
	return entries, nil
}

// Tail returns the last n entries, oldest first.
func Tail(entries []Entry, n int) []Entry {
	if n <= 0 || len(entries) <= n {
		return entries
	}
	return entries[len(entries)-n:]
}
