package main

import (
	"hrm_portal/config"
	"hrm_portal/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

// InitRegistry khởi tạo registry và đăng ký các collections.
func InitRegistry() {
	err := InitCollections(global.MongoDB_Session, global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")
}

// InitCollections đăng ký các collections MongoDB vào registry toàn cục
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)
	colNames := []string{
		global.MongoDB_ColNames.Users,
		global.MongoDB_ColNames.Employees,
		global.MongoDB_ColNames.Departments,
		global.MongoDB_ColNames.Attendance,
		global.MongoDB_ColNames.Leaves,
		global.MongoDB_ColNames.Expenses,
		global.MongoDB_ColNames.Announcements,
		global.MongoDB_ColNames.Holidays,
		global.MongoDB_ColNames.Notifications,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}

		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Errorf("Collection %s already registered", name)
		}
	}

	return nil
}
