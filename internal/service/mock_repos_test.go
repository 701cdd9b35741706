package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/internal/model"
	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/internal/repository"
)

// ── 手写内存 Mock，覆盖 repository 各接口 ──

// mockUserRepo 内存用户仓库
type mockUserRepo struct {
	users map[string]*model.User // key: UserID
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = fmt.Sprintf("user-%d", len(m.users)+1)
	}
	cp := *user
	m.users[user.UserID] = &cp
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	if _, ok := m.users[user.UserID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *user
	m.users[user.UserID] = &cp
	return nil
}

// mockFacilityRepo 内存设施仓库
type mockFacilityRepo struct {
	facilities map[string]*model.Facility
}

func newMockFacilityRepo() *mockFacilityRepo {
	return &mockFacilityRepo{facilities: make(map[string]*model.Facility)}
}

func (m *mockFacilityRepo) Create(_ context.Context, facility *model.Facility) error {
	if facility.FacilityID == "" {
		facility.FacilityID = fmt.Sprintf("facility-%d", len(m.facilities)+1)
	}
	cp := *facility
	m.facilities[facility.FacilityID] = &cp
	return nil
}

func (m *mockFacilityRepo) GetByID(_ context.Context, id string) (*model.Facility, error) {
	if f, ok := m.facilities[id]; ok {
		cp := *f
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFacilityRepo) List(_ context.Context, includeInactive bool) ([]model.Facility, error) {
	var out []model.Facility
	for _, f := range m.facilities {
		if !includeInactive && !f.IsActive {
			continue
		}
		out = append(out, *f)
	}
	return out, nil
}

func (m *mockFacilityRepo) Update(_ context.Context, facility *model.Facility) error {
	if _, ok := m.facilities[facility.FacilityID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *facility
	m.facilities[facility.FacilityID] = &cp
	return nil
}

func (m *mockFacilityRepo) Delete(_ context.Context, id string, _ string) error {
	if _, ok := m.facilities[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.facilities, id)
	return nil
}

// mockBookingRepo 内存预订仓库
type mockBookingRepo struct {
	bookings  map[string]*model.Booking
	updateErr error // 注入写入失败
}

func newMockBookingRepo() *mockBookingRepo {
	return &mockBookingRepo{bookings: make(map[string]*model.Booking)}
}

func (m *mockBookingRepo) Create(_ context.Context, booking *model.Booking) error {
	if booking.BookingID == "" {
		booking.BookingID = fmt.Sprintf("booking-%d", len(m.bookings)+1)
	}
	cp := *booking
	m.bookings[booking.BookingID] = &cp
	return nil
}

func (m *mockBookingRepo) GetByID(_ context.Context, id string) (*model.Booking, error) {
	if b, ok := m.bookings[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBookingRepo) List(_ context.Context, filter *repository.BookingFilter) ([]model.Booking, int64, error) {
	var out []model.Booking
	for _, b := range m.bookings {
		if filter.UserID != "" && b.UserID != filter.UserID {
			continue
		}
		if filter.FacilityID != "" && b.FacilityID != filter.FacilityID {
			continue
		}
		if len(filter.Statuses) > 0 && !containsStatus(filter.Statuses, b.Status) {
			continue
		}
		out = append(out, *b)
	}
	return out, int64(len(out)), nil
}

func (m *mockBookingRepo) Update(_ context.Context, booking *model.Booking) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.bookings[booking.BookingID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *booking
	m.bookings[booking.BookingID] = &cp
	return nil
}

func (m *mockBookingRepo) CountOverlapping(_ context.Context, facilityID, date, startTime, endTime, excludeID string) (int64, error) {
	var count int64
	for _, b := range m.bookings {
		if b.FacilityID != facilityID || b.BookingDate != date {
			continue
		}
		if b.Status == model.StatusRejected {
			continue
		}
		if excludeID != "" && b.BookingID == excludeID {
			continue
		}
		if b.StartTime < endTime && b.EndTime > startTime {
			count++
		}
	}
	return count, nil
}

// mockRequestRepo 内存申报仓库
type mockRequestRepo struct {
	requests  map[string]*model.Request
	updateErr error
}

func newMockRequestRepo() *mockRequestRepo {
	return &mockRequestRepo{requests: make(map[string]*model.Request)}
}

func (m *mockRequestRepo) Create(_ context.Context, request *model.Request) error {
	if request.RequestID == "" {
		request.RequestID = fmt.Sprintf("request-%d", len(m.requests)+1)
	}
	cp := *request
	m.requests[request.RequestID] = &cp
	return nil
}

func (m *mockRequestRepo) GetByID(_ context.Context, id string) (*model.Request, error) {
	if r, ok := m.requests[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRequestRepo) List(_ context.Context, filter *repository.RequestFilter) ([]model.Request, int64, error) {
	var out []model.Request
	for _, r := range m.requests {
		if filter.UserID != "" && r.UserID != filter.UserID {
			continue
		}
		if filter.Type != "" && r.Type != filter.Type {
			continue
		}
		if len(filter.Statuses) > 0 && !containsStatus(filter.Statuses, r.Status) {
			continue
		}
		out = append(out, *r)
	}
	return out, int64(len(out)), nil
}

func (m *mockRequestRepo) Update(_ context.Context, request *model.Request) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.requests[request.RequestID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *request
	m.requests[request.RequestID] = &cp
	return nil
}

// ── 测试辅助 ──

func containsStatus(statuses []model.Status, s model.Status) bool {
	for _, st := range statuses {
		if st == s {
			return true
		}
	}
	return false
}

// newTestRepo 组装内存 Repository 聚合
func newTestRepo() (*repository.Repository, *mockUserRepo, *mockFacilityRepo, *mockBookingRepo, *mockRequestRepo) {
	users := newMockUserRepo()
	facilities := newMockFacilityRepo()
	bookings := newMockBookingRepo()
	requests := newMockRequestRepo()

	repo := &repository.Repository{
		User:     users,
		Facility: facilities,
		Booking:  bookings,
		Request:  requests,
	}
	return repo, users, facilities, bookings, requests
}
