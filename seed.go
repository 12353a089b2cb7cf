package main

import (
	"log"

	"github.com/shev-k/mikes-cut/database"
	"github.com/shev-k/mikes-cut/models"
	"github.com/shev-k/mikes-cut/utils"
)

// seedDemoData fills an empty database with the shop's barbers, services and
// product catalog. Safe to run repeatedly: it skips any table that already
// has rows.
func seedDemoData() error {
	db := database.GetDB()

	var barberCount int64
	db.Model(&models.Barber{}).Count(&barberCount)
	if barberCount == 0 {
		rate35 := 35.0
		rate45 := 45.0
		barbers := []models.Barber{
			{
				Name:  "Mike Ramirez",
				Slug:  "mike-ramirez",
				Title: "Owner & Master Barber",
				Bio:   "Twenty years behind the chair. Classic cuts, straight razor shaves.",
			},
			{
				Name:           "Danny Cole",
				Slug:           "danny-cole",
				Title:          "Senior Barber",
				Bio:            "Fades, tapers and beard work.",
				CommissionRate: &rate45,
			},
			{
				Name:           "Leo Park",
				Slug:           "leo-park",
				Title:          "Barber",
				Bio:            "Modern styles and skin fades.",
				CommissionRate: &rate35,
			},
		}
		if err := db.Create(&barbers).Error; err != nil {
			return err
		}
		log.Printf("✅ Seeded %d barbers", len(barbers))
	} else {
		log.Printf("⚠️  Barbers already exist (%d found). Skipping.", barberCount)
	}

	var serviceCount int64
	db.Model(&models.Service{}).Count(&serviceCount)
	if serviceCount == 0 {
		services := []models.Service{
			{Name: "Classic Haircut", Slug: "classic-haircut", Description: "Scissor or clipper cut with hot towel finish", Price: 35, Duration: 30},
			{Name: "Skin Fade", Slug: "skin-fade", Description: "Precision fade down to the skin", Price: 40, Duration: 45},
			{Name: "Beard Trim", Slug: "beard-trim", Description: "Shape-up and line work with razor detailing", Price: 20, Duration: 20},
			{Name: "Hot Towel Shave", Slug: "hot-towel-shave", Description: "Traditional straight razor shave", Price: 45, Duration: 45},
			{Name: "Cut & Beard Combo", Slug: "cut-beard-combo", Description: "Full haircut plus beard trim", Price: 50, Duration: 60},
			{Name: "Kids Cut", Slug: "kids-cut", Description: "For the under-12 crowd", Price: 25, Duration: 30},
		}
		if err := db.Create(&services).Error; err != nil {
			return err
		}
		log.Printf("✅ Seeded %d services", len(services))
	} else {
		log.Printf("⚠️  Services already exist (%d found). Skipping.", serviceCount)
	}

	var categoryCount int64
	db.Model(&models.Category{}).Count(&categoryCount)
	if categoryCount == 0 {
		categories := []models.Category{
			{Name: "Pomades & Wax", Slug: "pomades-wax"},
			{Name: "Beard Care", Slug: "beard-care"},
			{Name: "Shampoo & Wash", Slug: "shampoo-wash"},
			{Name: "Accessories", Slug: "accessories"},
		}
		if err := db.Create(&categories).Error; err != nil {
			return err
		}

		byslug := map[string]uint{}
		for _, cat := range categories {
			byslug[cat.Slug] = cat.ID
		}

		products := []models.Product{
			{Name: "Matte Clay Pomade", CategoryID: byslug["pomades-wax"], Price: 18, Description: "Medium hold, no shine"},
			{Name: "Classic Shine Pomade", CategoryID: byslug["pomades-wax"], Price: 16, Description: "Strong hold, high shine"},
			{Name: "Beard Oil - Cedar", CategoryID: byslug["beard-care"], Price: 22, Description: "Conditioning oil with cedarwood scent"},
			{Name: "Beard Balm", CategoryID: byslug["beard-care"], Price: 19, Description: "Tames flyaways, light hold"},
			{Name: "Daily Shampoo", CategoryID: byslug["shampoo-wash"], Price: 14, Description: "Gentle enough for every day"},
			{Name: "Boar Bristle Brush", CategoryID: byslug["accessories"], Price: 24, Description: "Firm bristles for beard and hair"},
		}
		if err := db.Create(&products).Error; err != nil {
			return err
		}
		log.Printf("✅ Seeded %d categories and %d products", len(categories), len(products))
	} else {
		log.Printf("⚠️  Categories already exist (%d found). Skipping.", categoryCount)
	}

	var userCount int64
	db.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		hash, err := utils.HashPassword("changeme123")
		if err != nil {
			return err
		}
		admin := models.User{
			FullName:     "Admin",
			Email:        "admin@mikescut.com",
			PasswordHash: hash,
			Role:         models.RoleAdmin,
			IsActive:     true,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.Println("✅ Seeded admin account (admin@mikescut.com). Change the password.")
	}

	return nil
}
