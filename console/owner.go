package console

import (
	"time"
)

// Owner is the franchisee or company an individual store location
// belongs to.
type Owner struct {
	ID        int       `gorm:"primaryKey;autoIncrement;column:id"`
	Code      string    `gorm:"size:255;not null;unique;column:code"`
	Name      string    `gorm:"size:255;not null;unique;column:name"`
	Email     string    `gorm:"size:255;not null;unique;column:email"`
	NPWP      *string   `gorm:"size:255;unique;column:npwp"`
	CreatedAt time.Time `gorm:"precision:6;autoCreateTime;column:createdAt"`
	UpdatedAt time.Time `gorm:"precision:6;autoUpdateTime;column:updatedAt"`
	Version   int       `gorm:"not null;column:version"`
}
