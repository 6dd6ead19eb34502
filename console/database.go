package console

import (
	"errors"

	"gorm.io/gorm"
)

func GetOwners(db *gorm.DB) ([]Owner, error) {
	var owners []Owner
	err := db.Find(&owners).Error
	return owners, err
}

func FindSubscriptionByDomain(db *gorm.DB, domain string) (*Subscription, error) {
	var sub Subscription
	err := db.Where(&Subscription{Domain: domain}).Preload("Owner").First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // not found
	}
	return &sub, err
}

func GetSubscriptions(db *gorm.DB) ([]Subscription, error) {
	var subs []Subscription
	err := db.Preload("Owner").Order("domain").Find(&subs).Error
	return subs, err
}
