// Package cachestore persists per-connection recency data: the contexts
// discovered for a connection and a capped most-recently-used list of
// changelog files. The backing store is one JSON document; every mutation
// is a full read, in-memory change, and full rewrite. That cycle is not
// atomic across processes — an advisory file lock narrows the window for
// the locked store, but the model stays single active writer,
// last-writer-wins on the whole document.
package cachestore

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/gofrs/flock"

	"github.com/liquihost/liquihost/internal/fsio"
	"github.com/liquihost/liquihost/pkg/types"
)

// MaxChangelogs caps the per-connection changelog history.
const MaxChangelogs = 5

// ChangelogUse records one changelog path and when it was last executed.
type ChangelogUse struct {
	Path     string `json:"path"`
	LastUsed int64  `json:"lastUsed"`
}

// Entry is the cached state for one connection identity (the canonical
// absolute path of its properties file).
type Entry struct {
	Contexts   []string       `json:"contexts"`
	Changelogs []ChangelogUse `json:"changelogs"`
}

// Store reads and rewrites the cache document.
type Store struct {
	fs    billy.Filesystem
	path  string
	clock Clock
	lock  *flock.Flock
}

// NewStore returns a store over fs without cross-process locking. Tests
// pass a memory filesystem and a deterministic clock.
func NewStore(fs billy.Filesystem, path string, clock Clock) *Store {
	return &Store{fs: fs, path: path, clock: clock}
}

// NewLockedStore returns a store on the OS filesystem whose mutations
// hold an advisory lock next to the backing file.
func NewLockedStore(path string, clock Clock) *Store {
	return &Store{
		fs:    osfs.New("/"),
		path:  path,
		clock: clock,
		lock:  flock.New(path + ".lock"),
	}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// ReadAll returns every cache entry keyed by connection identity. A
// missing or unparsable backing file reads as an empty map, never an
// error.
func (s *Store) ReadAll() map[string]Entry {
	if !fsio.Exists(s.fs, s.path) {
		return map[string]Entry{}
	}
	text, err := fsio.ReadText(s.fs, s.path)
	if err != nil {
		return map[string]Entry{}
	}
	var entries map[string]Entry
	if err := json.Unmarshal([]byte(text), &entries); err != nil {
		return map[string]Entry{}
	}
	if entries == nil {
		return map[string]Entry{}
	}
	return entries
}

// ReadContexts returns the contexts recorded for id, sorted ascending.
// Unknown ids read as empty.
func (s *Store) ReadContexts(id string) []string {
	entry := s.ReadAll()[id]
	out := make([]string, len(entry.Contexts))
	copy(out, entry.Contexts)
	sort.Strings(out)
	return out
}

// ReplaceContexts overwrites the context set for id wholesale. Contexts
// absent from the new set are dropped, not retained.
func (s *Store) ReplaceContexts(id string, contexts []string) error {
	return s.mutate(func(entries map[string]Entry) {
		entry := entries[id]
		entry.Contexts = dedupe(contexts)
		entries[id] = entry
	})
}

// ReadChangelogs returns the changelog paths for id ordered most recent
// first. Entries sharing a lastUsed keep their stored (insertion) order.
func (s *Store) ReadChangelogs(id string) []string {
	entry := s.ReadAll()[id]
	uses := make([]ChangelogUse, len(entry.Changelogs))
	copy(uses, entry.Changelogs)
	sort.SliceStable(uses, func(i, j int) bool {
		return uses[i].LastUsed > uses[j].LastUsed
	})
	paths := make([]string, len(uses))
	for i, u := range uses {
		paths[i] = u.Path
	}
	return paths
}

// RecordChangelogUse stamps path with the current logical time for id,
// inserting it on first use. When the list would grow past MaxChangelogs
// distinct paths, the entry with the smallest lastUsed is evicted; on a
// tie the earliest-inserted of the tied entries goes.
func (s *Store) RecordChangelogUse(id, path string) error {
	return s.mutate(func(entries map[string]Entry) {
		entry := entries[id]
		now := s.clock.Now()

		updated := false
		for i := range entry.Changelogs {
			if entry.Changelogs[i].Path == path {
				entry.Changelogs[i].LastUsed = now
				updated = true
				break
			}
		}
		if !updated {
			entry.Changelogs = append(entry.Changelogs, ChangelogUse{Path: path, LastUsed: now})
		}

		if len(entry.Changelogs) > MaxChangelogs {
			entry.Changelogs = evictOldest(entry.Changelogs)
		}
		entries[id] = entry
	})
}

// RemoveAll deletes the whole backing store. Missing store is a no-op.
func (s *Store) RemoveAll() error {
	unlock, err := s.acquire()
	if err != nil {
		return err
	}
	defer unlock()

	if err := fsio.Remove(s.fs, s.path); err != nil {
		return fmt.Errorf("remove cache store %s: %v: %w", s.path, err, types.ErrWriteFailed)
	}
	return nil
}

// RemoveConnections deletes the entries for the given identities, leaving
// others untouched. Unknown ids are ignored.
func (s *Store) RemoveConnections(ids []string) error {
	return s.mutate(func(entries map[string]Entry) {
		for _, id := range ids {
			delete(entries, id)
		}
	})
}

// mutate runs one read-modify-rewrite cycle under the advisory lock, when
// the store has one.
func (s *Store) mutate(fn func(map[string]Entry)) error {
	unlock, err := s.acquire()
	if err != nil {
		return err
	}
	defer unlock()

	entries := s.ReadAll()
	fn(entries)

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cache store: %w", err)
	}
	if err := fsio.WriteText(s.fs, s.path, string(data)+"\n"); err != nil {
		return fmt.Errorf("write cache store %s: %v: %w", s.path, err, types.ErrWriteFailed)
	}
	return nil
}

func (s *Store) acquire() (func(), error) {
	if s.lock == nil {
		return func() {}, nil
	}
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	if err := s.lock.Lock(); err != nil {
		return nil, fmt.Errorf("acquire cache lock: %w", err)
	}
	return func() { _ = s.lock.Unlock() }, nil
}

// evictOldest drops the use with the smallest lastUsed. Ties resolve to
// the earliest-inserted entry, so eviction is deterministic.
func evictOldest(uses []ChangelogUse) []ChangelogUse {
	oldest := 0
	for i := 1; i < len(uses); i++ {
		if uses[i].LastUsed < uses[oldest].LastUsed {
			oldest = i
		}
	}
	return append(uses[:oldest], uses[oldest+1:]...)
}

// dedupe copies values, dropping duplicates while keeping first-seen order.
func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
