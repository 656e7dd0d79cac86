package config

import (
	"fmt"

	"prestigeapi/pkg/logger"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB is the GORM database handle established at process start. Repositories
// receive it explicitly through their constructors.
var DB *gorm.DB

// ConnectDB establishes the database connection using GORM with the
// configured MySQL credentials.
func ConnectDB() error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		Cfg.DBUser,
		Cfg.DBPass,
		Cfg.DBHost,
		Cfg.DBPort,
		Cfg.DBName,
	)
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Errorf("GORM connection failed: %v", err)
		return err
	}
	logger.Infof("GORM connected to database %s", Cfg.DBName)

	DB = db
	return nil
}
