package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aiu-lab/facility-service/facility/internal/errs"
	"github.com/aiu-lab/facility-service/facility/internal/handler"
	"github.com/aiu-lab/facility-service/facility/internal/model"
	"github.com/aiu-lab/facility-service/pkg/auth"
	"github.com/aiu-lab/facility-service/pkg/validate"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/aiu-lab/facility-service/facility/internal/handler/mocks"
)

var (
	student = model.Actor{Username: "aigerim"}
	admin   = model.Actor{Username: "admin", Admin: true}
)

// as stands in for the JWT middleware.
func as(a model.Actor) echo.MiddlewareFunc {
	role := auth.RoleStudent
	if a.Admin {
		role = auth.RoleAdmin
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			c.SetRequest(req.WithContext(auth.SetAuthContext(req.Context(), a.Username, role)))
			return next(c)
		}
	}
}

type response struct {
	expectedCode int
	expectedBody string
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	return e
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, http.NoBody)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	return w
}

const pendingRental = `{"id":1,"equipmentId":7,"equipmentName":"Sony A7","equipmentCode":"CAM-01","username":"aigerim","quantity":1,"duration":3,"rentalDate":null,"expectedReturnDate":null,"actualReturnDate":null,"status":"pending","notes":"","issuedBy":null,"returnedTo":null,"reviewedBy":null,"reviewedAt":null,"rejectReason":null,"requestItemId":null,"createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z"}`

func rental() model.Rental {
	return model.Rental{
		ID: 1, EquipmentID: 7, EquipmentName: "Sony A7", EquipmentCode: "CAM-01",
		Username: "aigerim", Quantity: 1, DurationDays: 3, Status: model.RentalPending,
	}
}

func TestHandler_CreateRental(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockFacilityService, req model.CreateRentalRequest)

	var tests = []struct {
		name         string
		body         string
		req          model.CreateRentalRequest
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"equipmentId":7,"duration":3}`,
			req:  model.CreateRentalRequest{EquipmentID: 7, Duration: 3},
			mockBehavior: func(r *service_mocks.MockFacilityService, req model.CreateRentalRequest) {
				r.EXPECT().CreateRental(gomock.Any(), student, req).Return(rental(), nil)
			},
			response: response{expectedCode: http.StatusCreated, expectedBody: pendingRental},
		},
		{
			name:         "err. equipment required",
			body:         `{"duration":3}`,
			mockBehavior: func(r *service_mocks.MockFacilityService, req model.CreateRentalRequest) {},
			response:     response{expectedCode: http.StatusBadRequest, expectedBody: `{"message":"equipmentId is required"}`},
		},
		{
			name:         "err. duration out of range",
			body:         `{"equipmentId":7,"duration":365}`,
			mockBehavior: func(r *service_mocks.MockFacilityService, req model.CreateRentalRequest) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Key: 'CreateRentalRequest.Duration' Error:Field validation for 'Duration' failed on the 'lte' tag"}`,
			},
		},
		{
			name: "err. out of stock",
			body: `{"equipmentId":7}`,
			req:  model.CreateRentalRequest{EquipmentID: 7},
			mockBehavior: func(r *service_mocks.MockFacilityService, req model.CreateRentalRequest) {
				r.EXPECT().CreateRental(gomock.Any(), student, req).Return(model.Rental{}, errors.Wrap(errs.ErrOutOfStock, "Sony A7: 0 rentable"))
			},
			response: response{expectedCode: http.StatusConflict, expectedBody: `{"message":"Sony A7: 0 rentable: equipment is out of stock"}`},
		},
		{
			name: "err. internal",
			body: `{"equipmentId":7}`,
			req:  model.CreateRentalRequest{EquipmentID: 7},
			mockBehavior: func(r *service_mocks.MockFacilityService, req model.CreateRentalRequest) {
				r.EXPECT().CreateRental(gomock.Any(), student, req).Return(model.Rental{}, errors.New("db internal"))
			},
			response: response{expectedCode: http.StatusInternalServerError, expectedBody: `{"message":"db internal"}`},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockFacilityService(c)
			h := handler.New(svc, zap.NewExample().Named("test"))

			e := newEcho()
			e.POST("/rentals", h.CreateRental, as(student))

			tt.mockBehavior(svc, tt.req)
			w := do(e, http.MethodPost, "/rentals", tt.body)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ReturnRental(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockFacilityService, id int64)

	var tests = []struct {
		name         string
		id           string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			id:   "1",
			mockBehavior: func(r *service_mocks.MockFacilityService, id int64) {
				r.EXPECT().ReturnRental(gomock.Any(), student, id).Return(rental(), nil)
			},
			response: response{expectedCode: http.StatusOK, expectedBody: pendingRental},
		},
		{
			name:         "err. bad id",
			id:           "abc",
			mockBehavior: func(r *service_mocks.MockFacilityService, id int64) {},
			response:     response{expectedCode: http.StatusBadRequest, expectedBody: `{"message":"invalid id"}`},
		},
		{
			name: "err. not owner",
			id:   "1",
			mockBehavior: func(r *service_mocks.MockFacilityService, id int64) {
				r.EXPECT().ReturnRental(gomock.Any(), student, id).Return(model.Rental{}, errs.ErrForbidden)
			},
			response: response{expectedCode: http.StatusForbidden, expectedBody: `{"message":"forbidden"}`},
		},
		{
			name: "err. not found",
			id:   "1",
			mockBehavior: func(r *service_mocks.MockFacilityService, id int64) {
				r.EXPECT().ReturnRental(gomock.Any(), student, id).Return(model.Rental{}, errors.Wrapf(errs.ErrNotFound, "rental %d", id))
			},
			response: response{expectedCode: http.StatusNotFound, expectedBody: `{"message":"rental 1: not found"}`},
		},
		{
			name: "err. pending",
			id:   "1",
			mockBehavior: func(r *service_mocks.MockFacilityService, id int64) {
				r.EXPECT().ReturnRental(gomock.Any(), student, id).Return(model.Rental{}, errs.ErrStateConflict)
			},
			response: response{expectedCode: http.StatusConflict, expectedBody: `{"message":"action is not allowed in the current status"}`},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockFacilityService(c)
			h := handler.New(svc, zap.NewExample().Named("test"))

			e := newEcho()
			e.POST("/rentals/:id/return", h.ReturnRental, as(student))

			tt.mockBehavior(svc, 1)
			w := do(e, http.MethodPost, "/rentals/"+tt.id+"/return", "")

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_RejectRental(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockFacilityService(c)
	h := handler.New(svc, zap.NewExample().Named("test"))

	r := rental()
	r.Status = model.RentalRejected
	svc.EXPECT().RejectRental(gomock.Any(), admin, int64(1), "not this week").Return(r, nil)

	e := newEcho()
	e.POST("/rentals/:id/reject", h.RejectRental, as(admin))
	w := do(e, http.MethodPost, "/rentals/1/reject", `{"reason":"not this week"}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"status":"rejected"`)
}

func TestHandler_CreateBooking(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockFacilityService)

	req := model.CreateBookingRequest{LabRoom: "Mac Lab", Date: "2025-03-11", TimeSlot: "09:00 – 11:00", SeatNumber: 5}
	booking := model.LabBooking{
		ID: 3, LabID: 1, LabName: "Mac Lab", Username: "aigerim", BookingDate: model.NewDate(2025, 3, 11),
		StartTime: "09:00", EndTime: "11:00", TimeSlot: "09:00-11:00", SeatNumber: 5, Participants: 1,
		Status: model.BookingPending,
	}

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"labRoom":"Mac Lab","date":"2025-03-11","timeSlot":"09:00 – 11:00","seatNumber":5}`,
			mockBehavior: func(r *service_mocks.MockFacilityService) {
				r.EXPECT().CreateBooking(gomock.Any(), student, req).Return(booking, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":3,"labId":1,"labRoom":"Mac Lab","username":"aigerim","date":"2025-03-11","startTime":"09:00","endTime":"11:00","timeSlot":"09:00-11:00","seatNumber":5,"purpose":"","participants":1,"status":"pending","reviewedBy":null,"reviewedAt":null,"adminComment":null,"createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z"}`,
			},
		},
		{
			name:         "err. malformed slot",
			body:         `{"labRoom":"Mac Lab","date":"2025-03-11","timeSlot":"morning","seatNumber":5}`,
			mockBehavior: func(r *service_mocks.MockFacilityService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Key: 'CreateBookingRequest.TimeSlot' Error:Field validation for 'TimeSlot' failed on the 'timeslot' tag"}`,
			},
		},
		{
			name: "err. seat taken",
			body: `{"labRoom":"Mac Lab","date":"2025-03-11","timeSlot":"09:00 – 11:00","seatNumber":5}`,
			mockBehavior: func(r *service_mocks.MockFacilityService) {
				r.EXPECT().CreateBooking(gomock.Any(), student, req).Return(model.LabBooking{}, errs.ErrSlotConflict)
			},
			response: response{expectedCode: http.StatusConflict, expectedBody: `{"message":"seat is already taken for this time slot"}`},
		},
		{
			name: "err. past",
			body: `{"labRoom":"Mac Lab","date":"2025-03-11","timeSlot":"09:00 – 11:00","seatNumber":5}`,
			mockBehavior: func(r *service_mocks.MockFacilityService) {
				r.EXPECT().CreateBooking(gomock.Any(), student, req).Return(model.LabBooking{}, errs.ErrPastBooking)
			},
			response: response{expectedCode: http.StatusBadRequest, expectedBody: `{"message":"booking date and time slot must be in the future"}`},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockFacilityService(c)
			h := handler.New(svc, zap.NewExample().Named("test"))

			e := newEcho()
			e.POST("/lab-bookings", h.CreateBooking, as(student))

			tt.mockBehavior(svc)
			w := do(e, http.MethodPost, "/lab-bookings", tt.body)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Availability(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockFacilityService)

	q := model.AvailabilityQuery{LabID: 1, Date: "2025-03-11", TimeSlot: "09:00-11:00"}
	var tests = []struct {
		name         string
		target       string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:   "ok",
			target: "/lab-bookings/availability?lab=1&date=2025-03-11&timeSlot=09:00-11:00",
			mockBehavior: func(r *service_mocks.MockFacilityService) {
				r.EXPECT().Availability(gomock.Any(), q).Return(model.Availability{
					LabID: 1, LabRoom: "Mac Lab", Date: model.NewDate(2025, 3, 11), TimeSlot: "09:00-11:00",
					AvailableSeats: []int{1, 2, 3, 4, 6},
				}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"labId":1,"labRoom":"Mac Lab","date":"2025-03-11","timeSlot":"09:00-11:00","availableSeats":[1,2,3,4,6]}`,
			},
		},
		{
			name:         "err. date required",
			target:       "/lab-bookings/availability?lab=1&timeSlot=09:00-11:00",
			mockBehavior: func(r *service_mocks.MockFacilityService) {},
			response:     response{expectedCode: http.StatusBadRequest, expectedBody: `{"message":"date and timeSlot are required"}`},
		},
		{
			name:   "err. reversed slot",
			target: "/lab-bookings/availability?lab=1&date=2025-03-11&timeSlot=11:00-09:00",
			mockBehavior: func(r *service_mocks.MockFacilityService) {
				q := q
				q.TimeSlot = "11:00-09:00"
				r.EXPECT().Availability(gomock.Any(), q).Return(model.Availability{}, errs.ErrInvalidTimeSlot)
			},
			response: response{expectedCode: http.StatusBadRequest, expectedBody: `{"message":"validation failed: invalid time slot, want HH:MM-HH:MM"}`},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockFacilityService(c)
			h := handler.New(svc, zap.NewExample().Named("test"))

			e := newEcho()
			e.GET("/lab-bookings/availability", h.Availability, as(student))

			tt.mockBehavior(svc)
			w := do(e, http.MethodGet, tt.target, "")

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ApproveItem(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockFacilityService(c)
	h := handler.New(svc, zap.NewExample().Named("test"))

	e := newEcho()
	e.POST("/equipment-requests/:id/items/:itemId/approve", h.ApproveItem, as(admin))

	w := do(e, http.MethodPost, "/equipment-requests/4/items/x/approve", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, `{"message":"invalid itemId"}`, strings.Trim(w.Body.String(), "\n"))

	svc.EXPECT().ApproveItem(gomock.Any(), admin, int64(4), int64(9)).
		Return(model.EquipmentRequest{}, errors.Wrap(errs.ErrInsufficientStock, "Sony A7: 0 rentable, 1 requested"))
	w = do(e, http.MethodPost, "/equipment-requests/4/items/9/approve", "")
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, `{"message":"Sony A7: 0 rentable, 1 requested: insufficient stock for requested quantity"}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_ExportEquipment(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockFacilityService(c)
	h := handler.New(svc, zap.NewExample().Named("test"))

	e := newEcho()
	e.GET("/admin/export/equipment.csv", h.ExportEquipment, as(admin))
	e.GET("/export/equipment.csv", h.ExportEquipment, as(student))

	w := do(e, http.MethodGet, "/export/equipment.csv", "")
	require.Equal(t, http.StatusForbidden, w.Code)

	cam := model.Equipment{ID: 7, Code: "CAM-01", Name: "Sony A7", QuantityTotal: 2, RentedUnits: 2, IsActive: true}
	svc.EXPECT().ListEquipment(gomock.Any(), admin, model.EquipmentFilter{ShowAll: true}).
		Return([]model.EquipmentView{cam.View()}, nil)
	w = do(e, http.MethodGet, "/admin/export/equipment.csv", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "text/csv; charset=utf-8", w.Header().Get(echo.HeaderContentType))
	require.Contains(t, w.Header().Get(echo.HeaderContentDisposition), "equipment_inventory_")
	require.Equal(t,
		"id,code,name,categories,quantity_total,quantity_maintenance,rented_units,available_quantity,rentable_quantity,status,is_active\n"+
			"7,CAM-01,Sony A7,,2,0,2,0,0,rented,true\n",
		w.Body.String())
}

func TestRouter(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockFacilityService(c)
	e := handler.New(svc, zap.NewNop()).NewRouter()

	w := do(e, http.MethodGet, "/manage/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())

	w = do(e, http.MethodGet, "/api/v1/rentals", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, `{"message":"No Authorization Header"}`, strings.Trim(w.Body.String(), "\n"))

	token, err := auth.NewToken("aigerim", auth.RoleStudent, time.Minute)
	require.NoError(t, err)
	svc.EXPECT().ListRentals(gomock.Any(), student, model.RentalFilter{Status: model.RentalOverdue}).Return([]model.Rental{}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/rentals?status=overdue", http.NoBody)
	r.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, r)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "[]", strings.Trim(rec.Body.String(), "\n"))

	token, err = auth.NewToken("admin", auth.RoleStaff, time.Minute)
	require.NoError(t, err)
	svc.EXPECT().Dashboard(gomock.Any(), admin).Return(model.Dashboard{PendingRentals: 2}, nil)

	r = httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", http.NoBody)
	r.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, r)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t,
		`{"pendingRentals":2,"overdueRentals":0,"pendingBookings":0,"todayApprovedBookings":0,"openRequests":0,"depletedEquipment":0}`,
		strings.Trim(rec.Body.String(), "\n"))
}
