package session

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is the persisted session row.
type Record struct {
	SID       string    `gorm:"column:sid;primaryKey"`
	Data      string    `gorm:"not null"`
	ExpiresAt time.Time `gorm:"index"`
}

func (Record) TableName() string { return "sessions" }

// GormStore keeps sessions in the relational store so they survive
// restarts, like the sessions table the admin console always used.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(sid string) (Data, bool, error) {
	var rec Record
	if err := s.db.Where("sid = ?", sid).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Data{}, false, nil
		}
		return Data{}, false, err
	}
	if time.Now().After(rec.ExpiresAt) {
		_ = s.Destroy(sid)
		return Data{}, false, nil
	}
	var data Data
	if err := json.Unmarshal([]byte(rec.Data), &data); err != nil {
		return Data{}, false, err
	}
	return data, true, nil
}

func (s *GormStore) Set(sid string, data Data, expiresAt time.Time) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	rec := Record{SID: sid, Data: string(raw), ExpiresAt: expiresAt}
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error
}

func (s *GormStore) Destroy(sid string) error {
	return s.db.Where("sid = ?", sid).Delete(&Record{}).Error
}

// Prune deletes expired rows; wired to the cron scheduler at startup.
func (s *GormStore) Prune() error {
	return s.db.Where("expires_at < ?", time.Now()).Delete(&Record{}).Error
}
