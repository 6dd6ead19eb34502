package models

type Location struct {
	ID   int32  `gorm:"primaryKey;column:id" json:"id"`
	Code string `gorm:"column:code;type:varchar(20);uniqueIndex" json:"code"`
	Name string `gorm:"column:name;not null" json:"name"`
}

func (Location) TableName() string {
	return "locations"
}
