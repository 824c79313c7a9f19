// Package store persists user profile documents. Each profile is one row
// holding the whole document as JSON, replaced wholesale on save
// (last-write-wins, no merging). Subscribers receive the full new snapshot
// after each successful save.
package store

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ineverydomain/exam-tracker/backend/models"
)

var ErrNotFound = errors.New("profile not found")

// ProfileRecord is the storage row for one user's profile document.
type ProfileRecord struct {
	UserID    string         `gorm:"primaryKey"`
	Data      datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

func (ProfileRecord) TableName() string {
	return "profiles"
}

// ProfileStore is the persistence boundary for profile documents.
type ProfileStore interface {
	Load(userID string) (*models.Profile, error)
	Save(userID string, profile *models.Profile) error
	// Subscribe registers a callback for external snapshot changes and
	// returns an unsubscribe function. Callbacks get their own copy of the
	// document.
	Subscribe(userID string, fn func(*models.Profile)) func()
}

// GormStore implements ProfileStore on a gorm database.
type GormStore struct {
	db *gorm.DB

	mu      sync.Mutex
	subs    map[string]map[int]func(*models.Profile)
	nextSub int
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db:   db,
		subs: map[string]map[int]func(*models.Profile){},
	}
}

func (s *GormStore) Load(userID string) (*models.Profile, error) {
	var record ProfileRecord
	if err := s.db.First(&record, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var profile models.Profile
	if err := json.Unmarshal(record.Data, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *GormStore) Save(userID string, profile *models.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	record := ProfileRecord{UserID: userID, Data: data, UpdatedAt: time.Now()}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(&record).Error
	if err != nil {
		return err
	}
	s.notify(userID, data)
	return nil
}

func (s *GormStore) Subscribe(userID string, fn func(*models.Profile)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.subs[userID] == nil {
		s.subs[userID] = map[int]func(*models.Profile){}
	}
	id := s.nextSub
	s.nextSub++
	s.subs[userID][id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs[userID], id)
	}
}

func (s *GormStore) notify(userID string, data []byte) {
	s.mu.Lock()
	callbacks := make([]func(*models.Profile), 0, len(s.subs[userID]))
	for _, fn := range s.subs[userID] {
		callbacks = append(callbacks, fn)
	}
	s.mu.Unlock()

	for _, fn := range callbacks {
		var snapshot models.Profile
		if err := json.Unmarshal(data, &snapshot); err != nil {
			continue
		}
		fn(&snapshot)
	}
}
