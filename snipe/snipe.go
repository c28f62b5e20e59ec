// Package snipe keeps a bounded, per-channel history of deleted and edited
// messages. Histories only live as long as the process; nothing is persisted.
package snipe

import (
	"sync"
	"time"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
)

// Capacity is the number of entries kept per channel, per kind.
const Capacity = 10

const (
	ErrNotFound     = errors.Sentinel("no message on record")
	ErrInvalidIndex = errors.Sentinel("index out of range")
)

// Kind is the type of capture an entry represents.
type Kind int

const (
	Deleted Kind = iota
	Edited
)

func (k Kind) String() string {
	switch k {
	case Deleted:
		return "deleted"
	case Edited:
		return "edited"
	}
	return "unknown"
}

// Entry is a single captured message state. For deleted messages Content is
// the content before removal, for edited messages the content before the edit.
type Entry struct {
	UserID     discord.UserID
	Username   string
	Content    string
	CapturedAt time.Time
}

type key struct {
	channel discord.ChannelID
	kind    Kind
}

// Store maps (channel, kind) to a history of captured entries, most recent
// first. Deleted and edited histories are tracked separately.
type Store struct {
	mu        sync.Mutex
	histories map[key][]Entry
}

func NewStore() *Store {
	return &Store{
		histories: make(map[key][]Entry),
	}
}

// Record adds e as the most recent entry for (channelID, kind), creating the
// history if needed. If the history is full, the oldest entry is dropped.
func (s *Store) Record(channelID discord.ChannelID, kind Kind, e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key{channelID, kind}

	h := make([]Entry, 0, len(s.histories[k])+1)
	h = append(h, e)
	h = append(h, s.histories[k]...)
	if len(h) > Capacity {
		h = h[:Capacity]
	}
	s.histories[k] = h
}

// Get returns the index-th most recent entry for (channelID, kind), with 0
// being the most recent capture. Indexes outside [0, Capacity) return
// ErrInvalidIndex before the history is even consulted; indexes past the end
// of the stored history return ErrNotFound.
func (s *Store) Get(channelID discord.ChannelID, kind Kind, index int) (Entry, error) {
	if index < 0 || index >= Capacity {
		return Entry{}, ErrInvalidIndex
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	h := s.histories[key{channelID, kind}]
	if index >= len(h) {
		return Entry{}, ErrNotFound
	}

	return h[index], nil
}

// Count returns the number of entries currently stored for (channelID, kind).
func (s *Store) Count(channelID discord.ChannelID, kind Kind) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.histories[key{channelID, kind}])
}
