package cmd

import (
	"context"
	"time"

	"baleconnect/internal/adapters/out/postgres"
	"baleconnect/internal/adapters/out/postgres/userrepo"
	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/core/domain/model/user"

	"gorm.io/gorm"
)

// SeedDemoUsers creates one demo account per role when the user table is
// empty. The fixed identifiers keep demo data recognizable and the seed
// idempotent across restarts.
func SeedDemoUsers(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&userrepo.UserDTO{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	demo := []struct {
		id       string
		email    string
		userType string
		fullName string
		phone    string
		address  string
	}{
		{"demo_customer_1", "customer@test.com", "customer", "สมชาย ใจดี", "0812345678", "123 หมู่ 1 ต.สารภี อ.สารภี จ.เชียงใหม่"},
		{"demo_farmer_1", "farmer@test.com", "farmer", "สมหญิง เกษตรกร", "0823456789", "456 หมู่ 2 ต.สารภี อ.สารภี จ.เชียงใหม่"},
		{"demo_baler_1", "baler@test.com", "baler", "สมศักดิ์ อัดฟาง", "0834567890", "789 หมู่ 3 ต.สารภี อ.สารภี จ.เชียงใหม่"},
	}

	uow := postgres.NewGormUnitOfWorkFactory(db).Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	for _, d := range demo {
		id, err := kernel.EntityIDFromString(d.id)
		if err != nil {
			return err
		}

		u, err := user.RestoreUser(
			id,
			d.email, "123456", d.userType, d.fullName, d.phone, d.address,
			time.Now(),
			user.StatusActive,
		)
		if err != nil {
			return err
		}

		if err = userRepo.Add(ctx, u); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
