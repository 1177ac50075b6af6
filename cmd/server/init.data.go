package main

import (
	"context"

	authmodels "hrm_portal/internal/api/auth/models"
	authsvc "hrm_portal/internal/api/auth/service"
	"hrm_portal/internal/api/middleware"
	"hrm_portal/internal/global"
	"hrm_portal/internal/logger"
	"hrm_portal/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
)

// InitDefaultData tạo tài khoản admin đầu tiên khi collection users còn trống.
// INITMODE=true bỏ qua điều kiện collection trống và seed lại admin nếu
// username admin chưa tồn tại. Bỏ qua nếu ADMIN_PASSWORD không được cấu hình.
func InitDefaultData() {
	log := logger.GetAppLogger()
	cfg := global.MongoDB_ServerConfig

	userService, err := authsvc.NewUserService()
	if err != nil {
		log.Fatalf("Failed to initialize user service: %v", err)
	}

	ctx := context.Background()
	if cfg.InitMode {
		exists, err := userService.DocumentExists(ctx, bson.M{"username": cfg.Admin_Username})
		if err != nil {
			log.Fatalf("Failed to check admin user: %v", err)
		}
		if exists {
			log.Info("Admin user already exists, skipping admin seeding")
			return
		}
	} else {
		count, err := userService.CountDocuments(ctx, bson.M{})
		if err != nil {
			log.Fatalf("Failed to count users: %v", err)
		}
		if count > 0 {
			log.Info("Users collection is not empty, skipping admin seeding")
			return
		}
	}

	if cfg.Admin_Password == "" {
		log.Warn("ADMIN_PASSWORD not set, skipping admin seeding")
		return
	}

	hashed, err := utility.HashPassword(cfg.Admin_Password)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin := authmodels.User{
		Username: cfg.Admin_Username,
		FullName: "Administrator",
		Password: hashed,
		Role:     middleware.RoleAdmin,
		Active:   true,
	}

	created, err := userService.InsertOne(ctx, admin)
	if err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	log.Infof("Seeded admin user %s (ID: %s)", created.Username, created.ID.Hex())
}
