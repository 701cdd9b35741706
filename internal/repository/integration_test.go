//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/internal/model"
	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/internal/repository"
	pkgerrors "github.com/sldz0907/QuanLyNhaVanHoa-sub001/pkg/errors"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5433 user=postgres password=postgres dbname=nha_van_hoa_test sslmode=disable TimeZone=Asia/Ho_Chi_Minh"
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "无法连接测试数据库: %v\n", err)
		os.Exit(1)
	}

	// 自动迁移测试表结构
	err = testDB.AutoMigrate(
		&model.User{},
		&model.Facility{},
		&model.Booking{},
		&model.Request{},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "AutoMigrate 失败: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()
	os.Exit(code)
}

// setupTestData 创建基础测试数据并返回清理函数
func setupTestData(t *testing.T) (user *model.User, facility *model.Facility, cleanup func()) {
	t.Helper()
	ctx := context.Background()

	user = &model.User{
		Name:         "Nguyễn Văn Test",
		Email:        fmt.Sprintf("test%d@example.com", time.Now().UnixNano()),
		PasswordHash: "$2a$10$placeholder",
		Role:         "resident",
		Apartment:    "T-001",
		IsActive:     true,
	}
	if err := testDB.WithContext(ctx).Create(user).Error; err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}

	price := 100000.0
	facility = &model.Facility{
		Name:        fmt.Sprintf("Phòng test %d", time.Now().UnixNano()),
		HourlyPrice: &price,
		IsActive:    true,
	}
	if err := testDB.WithContext(ctx).Create(facility).Error; err != nil {
		t.Fatalf("创建设施失败: %v", err)
	}

	cleanup = func() {
		testDB.Unscoped().Where("facility_id = ?", facility.FacilityID).Delete(&model.Booking{})
		testDB.Unscoped().Where("user_id = ?", user.UserID).Delete(&model.Request{})
		testDB.Unscoped().Where("facility_id = ?", facility.FacilityID).Delete(&model.Facility{})
		testDB.Unscoped().Where("user_id = ?", user.UserID).Delete(&model.User{})
	}
	return
}

func seedBooking(t *testing.T, userID, facilityID, date, start, end string, status model.Status) *model.Booking {
	t.Helper()
	b := &model.Booking{
		FacilityID:  facilityID,
		UserID:      userID,
		BookingDate: date,
		StartTime:   start,
		EndTime:     end,
		Status:      status,
	}
	if err := testDB.Create(b).Error; err != nil {
		t.Fatalf("创建预订失败: %v", err)
	}
	return b
}

// ═══════════════════════════════════════════════════════════
// BookingRepository
// ═══════════════════════════════════════════════════════════

func TestBookingRepo_CountOverlapping(t *testing.T) {
	user, facility, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewBookingRepo(testDB)
	ctx := context.Background()
	date := "2030-01-15"

	seedBooking(t, user.UserID, facility.FacilityID, date, "09:00", "11:00", model.StatusPending)

	// 重叠区间
	count, err := repo.CountOverlapping(ctx, facility.FacilityID, date, "10:00", "12:00", "")
	if err != nil {
		t.Fatalf("CountOverlapping 应成功: %v", err)
	}
	if count != 1 {
		t.Errorf("重叠预订数应为 1, got %d", count)
	}

	// 相邻区间：首尾相接不算重叠
	count, err = repo.CountOverlapping(ctx, facility.FacilityID, date, "11:00", "12:00", "")
	if err != nil {
		t.Fatalf("CountOverlapping 应成功: %v", err)
	}
	if count != 0 {
		t.Errorf("相邻预订不应计入, got %d", count)
	}

	// 不同日期不计入
	count, _ = repo.CountOverlapping(ctx, facility.FacilityID, "2030-01-16", "09:00", "11:00", "")
	if count != 0 {
		t.Errorf("不同日期不应计入, got %d", count)
	}
}

func TestBookingRepo_CountOverlapping_IgnoresRejected(t *testing.T) {
	user, facility, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewBookingRepo(testDB)
	date := "2030-02-01"

	seedBooking(t, user.UserID, facility.FacilityID, date, "09:00", "11:00", model.StatusRejected)

	count, err := repo.CountOverlapping(context.Background(), facility.FacilityID, date, "09:00", "11:00", "")
	if err != nil {
		t.Fatalf("CountOverlapping 应成功: %v", err)
	}
	if count != 0 {
		t.Errorf("rejected 预订不占档期, got %d", count)
	}
}

func TestBookingRepo_CountOverlapping_ExcludesSelf(t *testing.T) {
	user, facility, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewBookingRepo(testDB)
	date := "2030-03-01"

	b := seedBooking(t, user.UserID, facility.FacilityID, date, "09:00", "11:00", model.StatusApproved)

	count, err := repo.CountOverlapping(context.Background(), facility.FacilityID, date, "09:00", "11:00", b.BookingID)
	if err != nil {
		t.Fatalf("CountOverlapping 应成功: %v", err)
	}
	if count != 0 {
		t.Errorf("排除自身后不应计入, got %d", count)
	}
}

func TestBookingRepo_ListFilters(t *testing.T) {
	user, facility, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewBookingRepo(testDB)
	ctx := context.Background()
	date := "2030-04-01"

	seedBooking(t, user.UserID, facility.FacilityID, date, "08:00", "09:00", model.StatusPending)
	seedBooking(t, user.UserID, facility.FacilityID, date, "09:00", "10:00", model.StatusApproved)
	seedBooking(t, user.UserID, facility.FacilityID, date, "10:00", "11:00", model.StatusRejected)

	items, total, err := repo.List(ctx, &repository.BookingFilter{
		UserID:   user.UserID,
		Statuses: []model.Status{model.StatusApproved, model.StatusRejected},
	})
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Errorf("状态过滤应返回 2 条, got total=%d len=%d", total, len(items))
	}

	// 预加载关联
	got, err := repo.GetByID(ctx, items[0].BookingID)
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if got.Facility == nil || got.User == nil {
		t.Error("GetByID 应预加载 Facility 与 User 关联")
	}
}

// ═══════════════════════════════════════════════════════════
// RequestRepository
// ═══════════════════════════════════════════════════════════

func TestRequestRepo_CRUD(t *testing.T) {
	user, _, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewRequestRepo(testDB)
	ctx := context.Background()

	req := &model.Request{
		UserID:    user.UserID,
		Type:      model.RequestTemporaryAbsence,
		Reason:    "Nơi đến: TP.HCM - Lý do: công tác",
		StartDate: "2030-01-10",
		Status:    model.StatusPending,
	}
	if err := repo.Create(ctx, req); err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	got, err := repo.GetByID(ctx, req.RequestID)
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if got.Reason != req.Reason {
		t.Errorf("reason 应原样读回, got %q", got.Reason)
	}

	got.Status = model.StatusApproved
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}

	items, total, err := repo.List(ctx, &repository.RequestFilter{
		UserID:   user.UserID,
		Type:     model.RequestTemporaryAbsence,
		Statuses: []model.Status{model.StatusApproved},
	})
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Errorf("组合过滤应返回 1 条, got total=%d", total)
	}
}

// ═══════════════════════════════════════════════════════════
// 乐观锁
// ═══════════════════════════════════════════════════════════

func TestBookingRepo_Update_StaleVersion(t *testing.T) {
	user, facility, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewBookingRepo(testDB)
	ctx := context.Background()

	booking := &model.Booking{
		FacilityID:  facility.FacilityID,
		UserID:      user.UserID,
		BookingDate: "2030-06-01",
		StartTime:   "09:00",
		EndTime:     "10:00",
		Status:      model.StatusPending,
	}
	if err := repo.Create(ctx, booking); err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	first, err := repo.GetByID(ctx, booking.BookingID)
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	stale, err := repo.GetByID(ctx, booking.BookingID)
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}

	first.Status = model.StatusApproved
	if err := repo.Update(ctx, first); err != nil {
		t.Fatalf("首次更新应成功: %v", err)
	}

	stale.Status = model.StatusRejected
	if err := repo.Update(ctx, stale); err != pkgerrors.ErrOptimisticLock {
		t.Errorf("期望 ErrOptimisticLock，得到: %v", err)
	}
}
