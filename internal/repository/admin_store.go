package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/tidwall/jsonc"
)

const (
	adminFileMode     = 0o600
	adminDirMode      = 0o700
	adminTempPattern  = ".group_admins-*.json.tmp"
	adminBackupSuffix = ".bak"
)

// AdminStore persists the extra admin user ids of each group as one JSON
// object of group id -> user ids. Every operation loads the whole file
// and mutations rewrite it through a temp file and rename. One gate per
// instance serializes all operations.
type AdminStore struct {
	path string
	gate chan struct{}
}

func NewAdminStore(path string) *AdminStore {
	return &AdminStore{
		path: filepath.Clean(path),
		gate: make(chan struct{}, 1),
	}
}

// Get returns the admin ids of a group, sorted.
func (s *AdminStore) Get(ctx context.Context, groupID int64) ([]int64, error) {
	if err := s.lock(ctx); err != nil {
		return nil, err
	}
	defer s.unlock()

	admins := s.load()
	return slices.Clone(admins[groupID]), nil
}

// Contains reports whether userID is an admin of groupID.
func (s *AdminStore) Contains(ctx context.Context, groupID, userID int64) (bool, error) {
	ids, err := s.Get(ctx, groupID)
	if err != nil {
		return false, err
	}
	return slices.Contains(ids, userID), nil
}

// Add inserts userID into the group's set. It reports false without
// writing when the id is already present.
func (s *AdminStore) Add(ctx context.Context, groupID, userID int64) (bool, error) {
	if err := s.lock(ctx); err != nil {
		return false, err
	}
	defer s.unlock()

	admins := s.load()
	ids := admins[groupID]
	if slices.Contains(ids, userID) {
		return false, nil
	}
	ids = append(ids, userID)
	slices.Sort(ids)
	admins[groupID] = ids

	if err := s.save(admins); err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes userID from the group's set, dropping the group when it
// becomes empty. It reports false without writing when the id is absent.
func (s *AdminStore) Remove(ctx context.Context, groupID, userID int64) (bool, error) {
	if err := s.lock(ctx); err != nil {
		return false, err
	}
	defer s.unlock()

	admins := s.load()
	ids := admins[groupID]
	idx := slices.Index(ids, userID)
	if idx < 0 {
		return false, nil
	}
	ids = slices.Delete(ids, idx, idx+1)
	if len(ids) == 0 {
		delete(admins, groupID)
	} else {
		admins[groupID] = ids
	}

	if err := s.save(admins); err != nil {
		return false, err
	}
	return true, nil
}

// List returns a copy of every group's admin ids.
func (s *AdminStore) List(ctx context.Context) (map[int64][]int64, error) {
	if err := s.lock(ctx); err != nil {
		return nil, err
	}
	defer s.unlock()

	return s.load(), nil
}

func (s *AdminStore) lock(ctx context.Context) error {
	select {
	case s.gate <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *AdminStore) unlock() {
	<-s.gate
}

// load never fails: a missing or unreadable file is an empty set.
// Comments and trailing commas in a hand-edited file are tolerated.
func (s *AdminStore) load() map[int64][]int64 {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("read group admins file", "path", s.path, "error", err)
		}
		return map[int64][]int64{}
	}
	admins, err := decodeAdmins(data)
	if err != nil {
		slog.Warn("parse group admins file", "path", s.path, "error", err)
		return map[int64][]int64{}
	}
	return admins
}

func decodeAdmins(data []byte) (map[int64][]int64, error) {
	admins := map[int64][]int64{}
	if err := json.Unmarshal(jsonc.ToJSON(data), &admins); err != nil {
		return nil, err
	}
	for group, ids := range admins {
		ids = slices.Compact(slices.Sorted(slices.Values(ids)))
		if len(ids) == 0 {
			delete(admins, group)
			continue
		}
		admins[group] = ids
	}
	return admins, nil
}

// backupCorrupt moves an unparseable file aside to path.bak so a rewrite
// does not destroy the only copy of its contents.
func (s *AdminStore) backupCorrupt() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	if _, err := decodeAdmins(data); err == nil {
		return nil
	}
	backup := s.path + adminBackupSuffix
	if err := os.Rename(s.path, backup); err != nil {
		return fmt.Errorf("back up corrupt group admins file: %w", err)
	}
	slog.Warn("corrupt group admins file moved aside", "path", s.path, "backup", backup)
	return nil
}

func (s *AdminStore) save(admins map[int64][]int64) error {
	if err := s.backupCorrupt(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), adminDirMode); err != nil {
		return fmt.Errorf("create group admins directory: %w", err)
	}

	data, err := json.MarshalIndent(admins, "", "  ")
	if err != nil {
		return fmt.Errorf("encode group admins: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.path), adminTempPattern)
	if err != nil {
		return fmt.Errorf("create temp group admins file: %w", err)
	}
	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp group admins file: %w", err)
	}
	if err := tempFile.Chmod(adminFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp group admins file: %w", err)
	}
	if err := tempFile.Sync(); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("sync temp group admins file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp group admins file: %w", err)
	}
	if err := os.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace group admins file: %w", err)
	}
	cleanup = false
	return nil
}
