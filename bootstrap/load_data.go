package bootstrap

import (
	"time"

	"prestigeapi/config"
	"prestigeapi/models"
	"prestigeapi/pkg/logger"
)

func int64ptr(v int64) *int64 { return &v }

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

// seedCategories is the baseline award rule configuration.
var seedCategories = []models.Category{
	{ID: 1, Name: "Administration", TotalLimit: int64ptr(80), EntryLimit: int64ptr(50), Start: date("2013-06-01"), Type: models.TypePrestige},
	{ID: 2, Name: "Non-Administrative Game Support", TotalLimit: int64ptr(50), EntryLimit: int64ptr(30), Start: date("2013-06-01"), Type: models.TypePrestige},
	{ID: 3, Name: "Social/Non-Game Support", TotalLimit: int64ptr(50), EntryLimit: int64ptr(30), Start: date("2013-06-01"), Type: models.TypePrestige},
	{ID: 4, Name: "Convention Events", TotalLimit: int64ptr(100), Start: date("2013-06-01"), Type: models.TypePrestige},
	{ID: 5, Name: "Standards and Renewals", Start: date("2013-06-01"), Type: models.TypePrestige},
	{ID: 6, Name: "Attending Events", EntryLimit: int64ptr(3), Start: date("2017-02-01"), Type: models.TypeVip},
}

// LoadData migrates the schema and seeds the category configuration when the
// table is empty. Existing categories are never touched; they are referenced
// by historical awards.
func LoadData() error {
	db := config.DB

	if err := db.AutoMigrate(&models.Category{}, &models.Award{}, &models.Action{}); err != nil {
		return err
	}

	var count int64
	if err := db.Model(models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Infof("Categories already seeded (%d present)", count)
		return nil
	}

	if err := db.Create(&seedCategories).Error; err != nil {
		return err
	}
	logger.Infof("Seeded %d categories", len(seedCategories))
	return nil
}
