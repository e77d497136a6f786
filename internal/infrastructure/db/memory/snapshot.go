// Package memory holds the snapshot-backed property store.
package memory

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/lightbnb/lightbnb-api/internal/core/domain"
)

const (
	usersFile      = "users.json"
	propertiesFile = "properties.json"
)

// Snapshot is the static data set read once at startup. Both files are JSON
// objects keyed by the record id.
type Snapshot struct {
	Users      map[int64]domain.User
	Properties map[int64]domain.Property
}

// snapshotUser exists because domain.User never decodes its password from JSON.
type snapshotUser struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoadSnapshot reads users.json and properties.json from dir.
func LoadSnapshot(dir string) (*Snapshot, error) {
	rawUsers, err := readKeyed[snapshotUser](filepath.Join(dir, usersFile))
	if err != nil {
		return nil, err
	}
	rawProps, err := readKeyed[domain.Property](filepath.Join(dir, propertiesFile))
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Users:      make(map[int64]domain.User, len(rawUsers)),
		Properties: make(map[int64]domain.Property, len(rawProps)),
	}
	for id, u := range rawUsers {
		snap.Users[id] = domain.User{ID: id, Name: u.Name, Email: u.Email, Password: u.Password}
	}
	for id, p := range rawProps {
		p.ID = id
		snap.Properties[id] = p
	}
	return snap, nil
}

// UserIDs returns the snapshot user ids in ascending order.
func (s *Snapshot) UserIDs() []int64 {
	return sortedKeys(s.Users)
}

// PropertyIDs returns the snapshot property ids in ascending order.
func (s *Snapshot) PropertyIDs() []int64 {
	return sortedKeys(s.Properties)
}

func readKeyed[T any](path string) (map[int64]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var keyed map[string]T
	if err := json.Unmarshal(data, &keyed); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	out := make(map[int64]T, len(keyed))
	for k, v := range keyed {
		id, err := strconv.ParseInt(k, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("decode %s: key %q is not an id", filepath.Base(path), k)
		}
		out[id] = v
	}
	return out, nil
}

func sortedKeys[T any](m map[int64]T) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
