package main

import (
	"log"
	"os"
	"time"

	"kasira.com/kasira/core"
	"kasira.com/kasira/core/models"
	"kasira.com/kasira/utils"
)

func main() {

	dsn := os.Getenv("DSN") //"root:development@tcp(localhost:3306)/menteng?parseTime=true"
	db := core.ConnectDB(dsn)

	tables := []interface{}{
		&models.Location{},
		&models.Product{},
		&models.Shift{},
		&models.CashMovement{},
	}

	for _, m := range tables {
		if !db.Migrator().HasTable(m) {
			err := db.Migrator().CreateTable(m)
			if err != nil {
				log.Fatalf("failed to create table for %T: %v", m, err)
			}
		}
	}

	if os.Getenv("SEED_SAMPLE_DATA") == "" {
		return
	}

	location := models.Location{ID: 1, Code: "MTG", Name: "Menteng"}
	if err := db.FirstOrCreate(&location).Error; err != nil {
		log.Fatalf("failed to seed location: %v", err)
	}

	products := []models.Product{
		{ID: 1, Code: "KOPI-SUSU", Name: "Es Kopi Susu", Price: 28000, Category: "beverage", Active: true},
		{ID: 2, Code: "AYAM-GORENG", Name: "Ayam Goreng", Price: 45000, Category: "food", Active: true},
		{ID: 3, Code: "NASI-PUTIH", Name: "Nasi Putih", Price: 10000, Category: "food", Active: true},
	}
	for _, p := range products {
		if err := db.FirstOrCreate(&p).Error; err != nil {
			log.Fatalf("failed to seed product %s: %v", p.Code, err)
		}
	}

	start := time.Now().In(utils.JakartaTZ).Add(-8 * time.Hour)
	shift := models.Shift{
		ID:          1,
		LocationID:  location.ID,
		Status:      models.ShiftStatusOpen,
		StartTime:   start,
		InitialCash: 500000,
	}
	if err := db.FirstOrCreate(&shift).Error; err != nil {
		log.Fatalf("failed to seed shift: %v", err)
	}

	movements := []models.CashMovement{
		{ID: "seed-m1", ShiftID: shift.ID, Kind: models.MovementSaleCash, Amount: 280000, Category: "beverage", CreatedAt: start.Add(time.Hour)},
		{ID: "seed-m2", ShiftID: shift.ID, Kind: models.MovementSaleCard, Amount: 450000, Category: "food", CreatedAt: start.Add(2 * time.Hour)},
		{ID: "seed-m3", ShiftID: shift.ID, Kind: models.MovementExpense, Amount: 50000, Description: "galon air", CreatedAt: start.Add(3 * time.Hour)},
		{ID: "seed-m4", ShiftID: shift.ID, Kind: models.MovementTip, Amount: 20000, CreatedAt: start.Add(4 * time.Hour)},
	}
	for _, m := range movements {
		if err := db.FirstOrCreate(&m).Error; err != nil {
			log.Fatalf("failed to seed movement %s: %v", m.ID, err)
		}
	}
}
