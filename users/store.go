package users

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/user/pension-backend/apperror"
)

// defaultPageSize is the page window for user listings.
const defaultPageSize = 10

// defaultScore is assigned when a save carries no score (or an explicit zero,
// which the previous clients sent interchangeably with "unset").
const defaultScore = 100

// QueryFilter narrows a user listing. All fields are optional; zero values
// impose no constraint except MinScore, which is a lower bound starting at 0.
type QueryFilter struct {
	Fullname string  // case-insensitive substring
	Username string  // case-insensitive substring
	MinScore float64 // numeric lower bound
	Page     int     // 1-based, default 1
	Limit    int     // default 10
}

// PaginatedUsers is one page of a filtered user listing.
type PaginatedUsers struct {
	Items []*User `json:"items"`
	Total int     `json:"total"`
	Page  int     `json:"page"`
	Pages int     `json:"pages"`
}

// FileStore owns the user collection. The entire collection is read into
// memory at construction and the entire file is rewritten after every
// mutation. A mutex serializes access so concurrent mutations cannot lose
// writes; durability is still best-effort (a crash mid-write can truncate the
// file, which is the documented limitation of this store).
type FileStore struct {
	path string

	mu    sync.RWMutex
	users []*User
}

// NewFileStore loads the collection from path. A missing file yields an empty
// collection rather than a startup failure; the file appears on first flush.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("user store file %s not found, starting with an empty collection", path)
			return s, nil
		}
		return nil, apperror.NewInternalError(fmt.Sprintf("failed to read user store file %s", path), err)
	}

	var stored []storedUser
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, apperror.NewInternalError(fmt.Sprintf("failed to parse user store file %s", path), err)
	}
	for _, su := range stored {
		s.users = append(s.users, su.toUser())
	}
	return s, nil
}

// Query returns the page of users matching the filter, with the total counted
// before pagination. Insertion order is preserved; there is no sort key on
// this collection.
func (s *FileStore) Query(filter QueryFilter) (*PaginatedUsers, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fullname := strings.ToLower(filter.Fullname)
	username := strings.ToLower(filter.Username)

	var matched []*User
	for _, u := range s.users {
		if !strings.Contains(strings.ToLower(u.Fullname), fullname) {
			continue
		}
		if !strings.Contains(strings.ToLower(u.Username), username) {
			continue
		}
		if u.Score < filter.MinScore {
			continue
		}
		matched = append(matched, u)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = defaultPageSize
	}

	total := len(matched)
	pages := int(math.Ceil(float64(total) / float64(limit)))

	skip := (page - 1) * limit
	if skip > total {
		skip = total
	}
	end := skip + limit
	if end > total {
		end = total
	}

	items := make([]*User, 0, end-skip)
	for _, u := range matched[skip:end] {
		items = append(items, copyUser(u))
	}

	return &PaginatedUsers{Items: items, Total: total, Page: page, Pages: pages}, nil
}

// GetByID returns the user with the given id.
func (s *FileStore) GetByID(id string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return copyUser(u), nil
		}
	}
	return nil, apperror.NewNotFoundError(fmt.Sprintf("user %s not found", id), nil)
}

// GetByUsername returns the user with the given username. The lookup is
// exact-match and case-sensitive.
func (s *FileStore) GetByUsername(username string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return copyUser(u), nil
		}
	}
	return nil, apperror.NewNotFoundError(fmt.Sprintf("username %s not found", username), nil)
}

// Create assigns a fresh id (unless the caller brought one), applies the
// score default, appends the record and flushes the file.
func (s *FileStore) Create(u *User) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := copyUser(u)
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	if stored.Score == 0 {
		stored.Score = defaultScore
	}

	s.users = append(s.users, stored)
	if err := s.flushLocked(); err != nil {
		// Roll the append back so memory and file stay consistent.
		s.users = s.users[:len(s.users)-1]
		return nil, err
	}

	log.Printf("user store: created user %s", stored.ID)
	return copyUser(stored), nil
}

// Update replaces the named fields of the record with the given id and
// flushes the merged result. Fields the patch leaves nil keep their stored
// value.
func (s *FileStore) Update(id string, patch Patch) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, u := range s.users {
		if u.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, apperror.NewNotFoundError(fmt.Sprintf("user %s not found", id), nil)
	}

	merged := copyUser(s.users[idx])
	if patch.Fullname != nil {
		merged.Fullname = *patch.Fullname
	}
	if patch.Username != nil {
		merged.Username = *patch.Username
	}
	if patch.Password != nil {
		merged.Password = *patch.Password
	}
	if patch.Score != nil {
		merged.Score = *patch.Score
	}
	if merged.Score == 0 {
		merged.Score = defaultScore
	}
	if patch.IsAdmin != nil {
		merged.IsAdmin = *patch.IsAdmin
	}

	previous := s.users[idx]
	s.users[idx] = merged
	if err := s.flushLocked(); err != nil {
		s.users[idx] = previous
		return nil, err
	}

	log.Printf("user store: updated user %s", id)
	return copyUser(merged), nil
}

// Remove deletes the record with the given id and flushes.
func (s *FileStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, u := range s.users {
		if u.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return apperror.NewNotFoundError(fmt.Sprintf("user %s not found", id), nil)
	}

	removed := s.users[idx]
	s.users = append(s.users[:idx], s.users[idx+1:]...)
	if err := s.flushLocked(); err != nil {
		s.users = append(s.users[:idx], append([]*User{removed}, s.users[idx:]...)...)
		return err
	}

	log.Printf("user store: removed user %s", id)
	return nil
}

// flushLocked rewrites the whole collection to disk. Callers hold the write
// lock.
func (s *FileStore) flushLocked() error {
	stored := make([]storedUser, 0, len(s.users))
	for _, u := range s.users {
		stored = append(stored, toStored(u))
	}

	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return apperror.NewInternalError("failed to serialize user collection", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return apperror.NewInternalError("failed to create user store directory", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return apperror.NewInternalError("failed to write user store file", err)
	}
	return nil
}

func copyUser(u *User) *User {
	c := *u
	return &c
}
