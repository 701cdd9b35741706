package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/internal/dto"
	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/internal/service"
	apperrors "github.com/sldz0907/QuanLyNhaVanHoa-sub001/pkg/errors"
	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock BookingService ──

type mockBookingService struct {
	createResult *dto.BookingResponse
	createErr    error
	getResult    *dto.BookingResponse
	getErr       error
	listResult   []dto.BookingResponse
	listTotal    int64
	listErr      error
	updateResult *dto.BookingResponse
	updateErr    error
}

func (m *mockBookingService) Create(_ context.Context, _ *dto.CreateBookingRequest, _ string) (*dto.BookingResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockBookingService) GetByID(_ context.Context, _, _, _ string) (*dto.BookingResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockBookingService) ListMine(_ context.Context, _ string, _ *dto.BookingListRequest) ([]dto.BookingResponse, int64, error) {
	return m.listResult, m.listTotal, m.listErr
}
func (m *mockBookingService) UpdateStatus(_ context.Context, _ string, _ *dto.UpdateBookingStatusRequest, _ string) (*dto.BookingResponse, error) {
	return m.updateResult, m.updateErr
}

// ── Mock RequestService ──

type mockRequestService struct {
	createResult *dto.RequestResponse
	createErr    error
	getResult    *dto.RequestResponse
	getErr       error
	listResult   []dto.RequestResponse
	listTotal    int64
	listErr      error
	updateResult *dto.RequestResponse
	updateErr    error
	statusResult *dto.RequestResponse
	statusErr    error
}

func (m *mockRequestService) Create(_ context.Context, _ *dto.CreateRequestRequest, _ string) (*dto.RequestResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockRequestService) GetByID(_ context.Context, _, _, _ string) (*dto.RequestResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockRequestService) ListMine(_ context.Context, _ string, _ *dto.RequestListRequest) ([]dto.RequestResponse, int64, error) {
	return m.listResult, m.listTotal, m.listErr
}
func (m *mockRequestService) UpdateMine(_ context.Context, _ string, _ *dto.UpdateRequestRequest, _ string) (*dto.RequestResponse, error) {
	return m.updateResult, m.updateErr
}
func (m *mockRequestService) UpdateStatus(_ context.Context, _ string, _ *dto.UpdateRequestStatusRequest, _ string) (*dto.RequestResponse, error) {
	return m.statusResult, m.statusErr
}

// ── Mock ApprovalService ──

type mockApprovalService struct {
	bookingsResult []dto.BookingResponse
	bookingsTotal  int64
	bookingsErr    error
	requestsResult []dto.RequestResponse
	requestsTotal  int64
	requestsErr    error
}

func (m *mockApprovalService) ListBookings(_ context.Context, _ *dto.ApprovalBookingListRequest) ([]dto.BookingResponse, int64, error) {
	return m.bookingsResult, m.bookingsTotal, m.bookingsErr
}
func (m *mockApprovalService) ListRequests(_ context.Context, _ *dto.ApprovalRequestListRequest) ([]dto.RequestResponse, int64, error) {
	return m.requestsResult, m.requestsTotal, m.requestsErr
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

// withAuth 模拟 JWT 中间件注入的会话信息
func withAuth(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", "test-user-id")
		c.Set("role", role)
		c.Set("apartment", "A-101")
		c.Next()
	}
}

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// ═══════════════════════════════════════════════════════════
// BookingHandler Tests
// ═══════════════════════════════════════════════════════════

func TestBookingHandler_Create_Success(t *testing.T) {
	price := 150000.0
	mock := &mockBookingService{
		createResult: &dto.BookingResponse{
			ID:         "b1",
			Status:     "pending",
			TotalPrice: &price,
		},
	}
	h := NewBookingHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/bookings", jsonBody(dto.CreateBookingRequest{
		FacilityID:  "0b26f9a1-3c1c-4a6b-9f5e-7d2a41c8b9e0",
		BookingDate: "2025-07-01",
		StartTime:   "09:00",
		EndTime:     "10:30",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/bookings", withAuth("resident"), h.Create)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestBookingHandler_Create_BadJSON(t *testing.T) {
	h := NewBookingHandler(&mockBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/bookings", bytes.NewReader([]byte("invalid json")))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/bookings", withAuth("resident"), h.Create)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestBookingHandler_Create_SlotConflict(t *testing.T) {
	mock := &mockBookingService{createErr: service.ErrSlotConflict}
	h := NewBookingHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/bookings", jsonBody(dto.CreateBookingRequest{
		FacilityID:  "0b26f9a1-3c1c-4a6b-9f5e-7d2a41c8b9e0",
		BookingDate: "2025-07-01",
		StartTime:   "09:00",
		EndTime:     "10:30",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/bookings", withAuth("resident"), h.Create)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != apperrors.CodeSlotConflict {
		t.Errorf("expected conflict code %d, got %d", apperrors.CodeSlotConflict, resp.Code)
	}
	if resp.Message != apperrors.MsgSlotConflict {
		t.Errorf("expected verbatim conflict message, got %q", resp.Message)
	}
}

func TestBookingHandler_UpdateStatus_RejectReasonRequired(t *testing.T) {
	mock := &mockBookingService{updateErr: service.ErrRejectReasonRequired}
	h := NewBookingHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/admin/bookings/b1/status", jsonBody(dto.UpdateBookingStatusRequest{
		Status: "rejected",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PUT("/admin/bookings/:id/status", withAuth("admin"), h.UpdateStatus)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 31103 {
		t.Errorf("expected error code 31103, got %d", resp.Code)
	}
}

func TestBookingHandler_UpdateStatus_InFlight(t *testing.T) {
	mock := &mockBookingService{updateErr: service.ErrTransitionInFlight}
	h := NewBookingHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/admin/bookings/b1/status", jsonBody(dto.UpdateBookingStatusRequest{
		Status: "approved",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PUT("/admin/bookings/:id/status", withAuth("admin"), h.UpdateStatus)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
}

func TestBookingHandler_Get_NotOwner(t *testing.T) {
	mock := &mockBookingService{getErr: service.ErrNotOwner}
	h := NewBookingHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/bookings/b1", nil)

	r := gin.New()
	r.GET("/bookings/:id", withAuth("resident"), h.Get)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// RequestHandler Tests
// ═══════════════════════════════════════════════════════════

func TestRequestHandler_Create_Success(t *testing.T) {
	mock := &mockRequestService{
		createResult: &dto.RequestResponse{
			ID:     "r1",
			Status: "pending",
			Reason: "Nơi đến: TP.HCM - Lý do: công tác",
		},
	}
	h := NewRequestHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/requests", jsonBody(dto.CreateRequestRequest{
		Type:          "temporary_absence",
		Destination:   "TP.HCM",
		Justification: "công tác",
		StartDate:     "2025-01-10",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/requests", withAuth("resident"), h.Create)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}

func TestRequestHandler_Create_MissingDestination(t *testing.T) {
	mock := &mockRequestService{createErr: service.ErrMissingDestination}
	h := NewRequestHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/requests", jsonBody(dto.CreateRequestRequest{
		Type:          "temporary_absence",
		Justification: "công tác",
		StartDate:     "2025-01-10",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/requests", withAuth("resident"), h.Create)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 41103 {
		t.Errorf("expected error code 41103, got %d", resp.Code)
	}
}

func TestRequestHandler_Update_NotEditable(t *testing.T) {
	mock := &mockRequestService{updateErr: service.ErrRequestNotEditable}
	h := NewRequestHandler(mock)

	dest := "Cần Thơ"
	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/requests/r1", jsonBody(dto.UpdateRequestRequest{
		Destination: &dest,
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PUT("/requests/:id", withAuth("resident"), h.Update)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 41102 {
		t.Errorf("expected error code 41102, got %d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ApprovalHandler Tests
// ═══════════════════════════════════════════════════════════

func TestApprovalHandler_ListBookings_Paged(t *testing.T) {
	mock := &mockApprovalService{
		bookingsResult: []dto.BookingResponse{{ID: "b1", Status: "pending"}},
		bookingsTotal:  1,
	}
	h := NewApprovalHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin/bookings?view=pending", nil)

	r := gin.New()
	r.GET("/admin/bookings", withAuth("admin"), h.ListBookings)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestApprovalHandler_ListRequests_BadView(t *testing.T) {
	h := NewApprovalHandler(&mockApprovalService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin/requests?view=unknown", nil)

	r := gin.New()
	r.GET("/admin/requests", withAuth("admin"), h.ListRequests)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
