package library

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Store keeps the library in a single JSON document on disk.
//
// Every call re-reads the document. Mutations hold mu for the whole
// read-modify-write, and the new document replaces the old one by rename so
// readers never observe a torn file.
type Store struct {
	path string
	log  logrus.FieldLogger
	now  func() time.Time

	mu sync.Mutex
}

type Option func(*Store)

// WithClock overrides the time source used for ids and addedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(path string, log logrus.FieldLogger, opts ...Option) *Store {
	s := &Store{
		path: path,
		log:  log.WithField("component", "library"),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the backing file location.
func (s *Store) Path() string { return s.path }

// Init creates the backing document with an empty list if it does not exist.
func (s *Store) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create library dir: %w", err)
	}
	_, err := os.Stat(s.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat library: %w", err)
	}
	return s.save([]Game{})
}

// List returns every entry. An unreadable or malformed document yields an
// empty list.
func (s *Store) List() []Game {
	games, err := s.load()
	if err != nil {
		s.log.WithError(err).Warn("store read failure, returning empty library")
		return []Game{}
	}
	return games
}

// Get returns the entry with id.
func (s *Store) Get(id string) (Game, error) {
	games, err := s.load()
	if err != nil {
		return Game{}, err
	}
	if i := indexByID(games, id); i >= 0 {
		return games[i], nil
	}
	return Game{}, ErrNotFound
}

// Add registers path. The display name is the file's base name without its
// extension.
func (s *Store) Add(path string) (Game, error) {
	path, err := NormalizePath(path)
	if err != nil {
		return Game{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	games, err := s.load()
	if err != nil {
		return Game{}, err
	}
	if indexByPath(games, path) >= 0 {
		return Game{}, ErrDuplicateEntry
	}

	now := s.now().UTC()
	g := Game{
		ID:      nextID(games, now),
		Name:    NameFromPath(path),
		Path:    path,
		AddedAt: now,
	}
	games = append(games, g)
	if err := s.save(games); err != nil {
		return Game{}, err
	}

	s.log.WithFields(logrus.Fields{"game_id": g.ID, "path": g.Path}).Info("game added")
	return g, nil
}

// Update merges patch onto the entry with id.
func (s *Store) Update(id string, patch Patch) (Game, error) {
	if patch.Path != nil {
		path, err := NormalizePath(*patch.Path)
		if err != nil {
			return Game{}, err
		}
		patch.Path = &path
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	games, err := s.load()
	if err != nil {
		return Game{}, err
	}
	i := indexByID(games, id)
	if i < 0 {
		return Game{}, ErrNotFound
	}
	if patch.Path != nil {
		if j := indexByPath(games, *patch.Path); j >= 0 && j != i {
			return Game{}, ErrDuplicateEntry
		}
	}

	patch.apply(&games[i])
	if err := s.save(games); err != nil {
		return Game{}, err
	}

	s.log.WithField("game_id", id).Info("game updated")
	return games[i], nil
}

// Remove deletes the entry with id. A missing id is not an error. The
// referenced file is never touched.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	games, err := s.load()
	if err != nil {
		return err
	}
	i := indexByID(games, id)
	if i < 0 {
		return nil
	}
	games = append(games[:i], games[i+1:]...)
	if err := s.save(games); err != nil {
		return err
	}

	s.log.WithField("game_id", id).Info("game removed")
	return nil
}

// NormalizePath trims path and resolves it against the working directory.
// Entries are keyed by the result.
func NormalizePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", ErrInvalidPath
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}
	return abs, nil
}

// NameFromPath derives a display name from a file path.
func NameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (s *Store) load() ([]Game, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Game{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreRead, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreRead, err)
	}
	if doc.Games == nil {
		doc.Games = []Game{}
	}
	return doc.Games, nil
}

func (s *Store) save(games []Game) error {
	data, err := json.MarshalIndent(document{Games: games}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode library: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create library dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".games-*.json")
	if err != nil {
		return fmt.Errorf("create temp library: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp library: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp library: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp library: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace library: %w", err)
	}
	return nil
}

// nextID is the millisecond timestamp, bumped until it is unused.
func nextID(games []Game, now time.Time) string {
	n := now.UnixMilli()
	for {
		id := strconv.FormatInt(n, 10)
		if indexByID(games, id) < 0 {
			return id
		}
		n++
	}
}

func indexByID(games []Game, id string) int {
	for i := range games {
		if games[i].ID == id {
			return i
		}
	}
	return -1
}

func indexByPath(games []Game, path string) int {
	for i := range games {
		if games[i].Path == path {
			return i
		}
	}
	return -1
}
