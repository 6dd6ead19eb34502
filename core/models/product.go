package models

import "time"

type Product struct {
	ID       int32  `gorm:"primaryKey;column:id" json:"id"`
	Code     string `gorm:"column:code;type:varchar(50);uniqueIndex" json:"code"`
	Name     string `gorm:"column:name;not null" json:"name"`
	Price    int64  `gorm:"column:price;not null;default:0" json:"price"`
	Category string `gorm:"column:category;type:varchar(50)" json:"category"`
	Active   bool   `gorm:"column:active;not null;default:true" json:"active"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (Product) TableName() string {
	return "products"
}
