package console

import (
	"time"
)

// Subscription licenses one location host (e.g. menteng.kasira.net) to
// the service. Domain doubles as the schema routing key: its first label
// is the location schema.
type Subscription struct {
	ID          int        `gorm:"column:id;primaryKey;autoIncrement"`
	Key         string     `gorm:"column:key;type:varchar(255);not null"`
	Registers   int        `gorm:"column:registers;not null"`
	Operators   int        `gorm:"column:operators;not null"`
	Edition     string     `gorm:"column:edition;type:varchar(255);not null"`
	Domain      string     `gorm:"column:domain;type:varchar(255);not null"`
	SyncedAt    *time.Time `gorm:"column:syncedAt"` // nullable
	ExpiredAt   time.Time  `gorm:"column:expiredAt;not null"`
	CreatedAt   time.Time  `gorm:"column:createdAt;autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"column:updatedAt;autoUpdateTime"`
	Version     int        `gorm:"column:version;not null"`
	OwnerID     *int       `gorm:"column:ownerId"`              // nullable foreign key
	Deactivated int8       `gorm:"column:deactivated;not null"` // TINYINT(3)
	Environment string     `gorm:"column:environment;type:varchar(50);not null;default:production"`

	// Relations
	Owner Owner `gorm:"foreignKey:OwnerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// Active reports whether the subscription currently licenses its domain.
func (s *Subscription) Active(now time.Time) bool {
	return s.Deactivated == 0 && now.Before(s.ExpiredAt)
}
