package generator

import (
	"sync"
	"time"

	"github.com/FlavioLombardi95/dist-gestionale/utils"
)

type memoryEntry struct {
	pattern string
	at      time.Time
}

// Memory is a bounded per-item store of the most recently emitted
// sentence, used to bias generation away from repeating itself. It is
// advisory only: a cold or evicted entry just means "no constraint".
type Memory struct {
	capacity int

	mu      sync.Mutex
	entries map[string]memoryEntry
	order   []string
}

// NewMemory creates a store bounded to capacity entries. When full, the
// least recently recorded entry is evicted before inserting a new one.
func NewMemory(capacity int) *Memory {
	return &Memory{
		capacity: capacity,
		entries:  make(map[string]memoryEntry),
	}
}

// Record overwrites the stored pattern for an item and refreshes its
// recency, so items still being generated for are evicted last.
func (m *Memory) Record(itemID, pattern string) {
	if itemID == "" || m.capacity <= 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.entries[itemID]; exists {
		for i, id := range m.order {
			if id == itemID {
				m.order = append(m.order[:i], m.order[i+1:]...)
				break
			}
		}
	} else if len(m.order) >= m.capacity {
		oldest := m.order[0]
		m.order = m.order[1:]
		delete(m.entries, oldest)
	}
	m.order = append(m.order, itemID)
	m.entries[itemID] = memoryEntry{pattern: pattern, at: time.Now()}
}

// Last returns the stored pattern for an item, if any.
func (m *Memory) Last(itemID string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[itemID]
	return entry.pattern, ok
}

// LastAt returns when the stored pattern for an item was recorded.
func (m *Memory) LastAt(itemID string) (time.Time, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[itemID]
	return entry.at, ok
}

// IsRecentlyUsed reports whether a candidate is too close to the last
// sentence emitted for the item, by word-overlap similarity.
func (m *Memory) IsRecentlyUsed(itemID, pattern string, threshold float64) bool {
	last, ok := m.Last(itemID)
	if !ok {
		return false
	}
	return utils.Jaccard(last, pattern) >= threshold
}

// Len returns the number of stored entries.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
