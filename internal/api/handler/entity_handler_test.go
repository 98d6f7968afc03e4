package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/placementiq/placement-api/internal/core/domain"
	"github.com/placementiq/placement-api/internal/core/ports"
)

type stubStudentService struct {
	created  *ports.StudentInput
	listOpts domain.ListOptions
	students map[string]*domain.Student
}

func (s *stubStudentService) Create(_ context.Context, in ports.StudentInput) (*domain.Student, error) {
	s.created = &in
	return &domain.Student{ID: "s1", Name: in.Name, RollNumber: in.RollNumber, Department: in.Department, CGPA: in.CGPA, Email: in.Email, Phone: in.Phone}, nil
}

func (s *stubStudentService) List(_ context.Context, opts domain.ListOptions) ([]*domain.Student, error) {
	s.listOpts = opts
	out := []*domain.Student{}
	for _, st := range s.students {
		out = append(out, st)
	}
	return out, nil
}

func (s *stubStudentService) Get(_ context.Context, id string) (*domain.Student, error) {
	st, ok := s.students[id]
	if !ok {
		return nil, domain.ErrStudentNotFound
	}
	return st, nil
}

func (s *stubStudentService) Update(_ context.Context, id string, in ports.StudentInput) (*domain.Student, error) {
	if _, ok := s.students[id]; !ok {
		return nil, domain.ErrStudentNotFound
	}
	return &domain.Student{ID: id, Name: in.Name}, nil
}

func (s *stubStudentService) Delete(_ context.Context, id string) error {
	if _, ok := s.students[id]; !ok {
		return domain.ErrStudentNotFound
	}
	delete(s.students, id)
	return nil
}

type stubDriveService struct {
	ports.DriveService
	createFn func(in ports.DriveInput) (*domain.Drive, error)
}

func (s *stubDriveService) Create(_ context.Context, in ports.DriveInput) (*domain.Drive, error) {
	return s.createFn(in)
}

const validStudent = `{"name":"Riya Nair","roll_number":"21CSE1001","department":"CSE","cgpa":8.4,"email":"riya@college.edu","phone":"+917000000001"}`

func TestStudentHandler_Create(t *testing.T) {
	e := newTestEcho()
	svc := &stubStudentService{}
	h := NewStudentHandler(svc)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/api/students", validStudent), rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.created == nil || svc.created.CGPA != 8.4 || svc.created.RollNumber != "21CSE1001" {
		t.Fatalf("unexpected service input: %+v", svc.created)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	for _, key := range []string{"id", "name", "roll_number", "department", "cgpa", "email", "phone", "created_at"} {
		if _, ok := resp[key]; !ok {
			t.Fatalf("missing %q in %v", key, resp)
		}
	}
}

func TestStudentHandler_Create_Validation(t *testing.T) {
	e := newTestEcho()
	h := NewStudentHandler(&stubStudentService{})

	cases := []string{
		`{"name":"Riya","roll_number":"21CSE1001","department":"CSE","email":"r@c.edu","phone":"1"}`,
		`{"name":"Riya","roll_number":"21CSE1001","department":"CSE","cgpa":11,"email":"r@c.edu","phone":"1"}`,
		`{"roll_number":"21CSE1001","department":"CSE","cgpa":8,"email":"r@c.edu","phone":"1"}`,
	}
	for _, body := range cases {
		c := e.NewContext(jsonRequest(http.MethodPost, "/api/students", body), httptest.NewRecorder())
		if code := httpCode(t, h.Create(c)); code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422 for %s, got %d", body, code)
		}
	}
}

func TestStudentHandler_ZeroCGPAIsAccepted(t *testing.T) {
	e := newTestEcho()
	svc := &stubStudentService{}
	h := NewStudentHandler(svc)

	body := `{"name":"Riya","roll_number":"21CSE1001","department":"CSE","cgpa":0,"email":"r@c.edu","phone":"1"}`
	c := e.NewContext(jsonRequest(http.MethodPost, "/api/students", body), httptest.NewRecorder())
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if svc.created == nil || svc.created.CGPA != 0 {
		t.Fatalf("expected explicit zero cgpa to pass through")
	}
}

func TestStudentHandler_List(t *testing.T) {
	e := newTestEcho()
	svc := &stubStudentService{students: map[string]*domain.Student{}}
	h := NewStudentHandler(svc)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/students?limit=10&offset=5", nil), rec)
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if svc.listOpts.Limit != 10 || svc.listOpts.Offset != 5 {
		t.Fatalf("unexpected list options: %+v", svc.listOpts)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Fatalf("expected empty JSON array, got %q", body)
	}

	for _, q := range []string{"limit=abc", "limit=0", "offset=-1"} {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/students?"+q, nil), httptest.NewRecorder())
		if code := httpCode(t, h.List(c)); code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422 for %s, got %d", q, code)
		}
	}
}

func TestStudentHandler_GetDelete(t *testing.T) {
	e := newTestEcho()
	svc := &stubStudentService{students: map[string]*domain.Student{
		"s1": {ID: "s1", Name: "Riya", CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}}
	h := NewStudentHandler(svc)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("s1")
	if err := h.Get(c); err != nil {
		t.Fatalf("get: %v", err)
	}
	var got studentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.ID != "s1" || got.Name != "Riya" {
		t.Fatalf("unexpected student: %+v", got)
	}

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodDelete, "/", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("s1")
	if err := h.Delete(c); err != nil {
		t.Fatalf("delete: %v", err)
	}
	var msg messageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &msg); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if msg.Message != "Student deleted successfully" {
		t.Fatalf("unexpected message: %q", msg.Message)
	}

	c = e.NewContext(httptest.NewRequest(http.MethodDelete, "/", nil), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("s1")
	if err := h.Delete(c); !errors.Is(err, domain.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestDriveHandler_Create(t *testing.T) {
	e := newTestEcho()
	svc := &stubDriveService{createFn: func(in ports.DriveInput) (*domain.Drive, error) {
		if in.CompanyID != "c1" || len(in.EligibleDepartments) != 0 {
			t.Fatalf("unexpected input: %+v", in)
		}
		return &domain.Drive{ID: "d1", CompanyID: "c1", CompanyName: "Acme", Date: in.Date, Role: in.Role}, nil
	}}
	h := NewDriveHandler(svc)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/api/drives", `{"company_id":"c1","date":"2025-03-01","eligible_departments":[],"role":"SDE"}`), rec)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["company_name"] != "Acme" {
		t.Fatalf("expected company_name Acme, got %v", resp["company_name"])
	}
	if depts, ok := resp["eligible_departments"].([]any); !ok || len(depts) != 0 {
		t.Fatalf("expected empty eligible_departments array, got %v", resp["eligible_departments"])
	}
	if v, ok := resp["description"]; !ok || v != nil {
		t.Fatalf("expected null description, got %v", v)
	}
}

func TestDriveHandler_Create_BadDate(t *testing.T) {
	e := newTestEcho()
	h := NewDriveHandler(&stubDriveService{createFn: func(ports.DriveInput) (*domain.Drive, error) {
		t.Fatalf("should not be called")
		return nil, nil
	}})

	c := e.NewContext(jsonRequest(http.MethodPost, "/api/drives", `{"company_id":"c1","date":"01/03/2025","eligible_departments":["CSE"],"role":"SDE"}`), httptest.NewRecorder())
	if code := httpCode(t, h.Create(c)); code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
}

func TestDriveHandler_Create_UnknownCompany(t *testing.T) {
	e := newTestEcho()
	h := NewDriveHandler(&stubDriveService{createFn: func(ports.DriveInput) (*domain.Drive, error) {
		return nil, domain.ErrCompanyNotFound
	}})

	c := e.NewContext(jsonRequest(http.MethodPost, "/api/drives", `{"company_id":"nope","date":"2025-03-01","eligible_departments":["CSE"],"role":"SDE"}`), httptest.NewRecorder())
	if err := h.Create(c); !errors.Is(err, domain.ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}
}

type stubSeedService struct {
	res *ports.SeedResult
	err error
}

func (s *stubSeedService) Seed(context.Context) (*ports.SeedResult, error) {
	return s.res, s.err
}

func TestSeedHandler(t *testing.T) {
	e := newTestEcho()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/seed", nil), rec)
	h := NewSeedHandler(&stubSeedService{res: &ports.SeedResult{Message: "Database seeded successfully!", Students: 50, Companies: 10, Drives: 20, Offers: 33}})
	if err := h.Seed(c); err != nil {
		t.Fatalf("seed: %v", err)
	}
	var seeded map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &seeded)
	if seeded["students"] != float64(50) || seeded["offers"] != float64(33) {
		t.Fatalf("unexpected seed response: %v", seeded)
	}

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodPost, "/api/seed", nil), rec)
	h = NewSeedHandler(&stubSeedService{res: &ports.SeedResult{AlreadySeeded: true, Message: "Database already has data. Skipping seed."}})
	if err := h.Seed(c); err != nil {
		t.Fatalf("seed: %v", err)
	}
	var skipped map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &skipped)
	if len(skipped) != 1 || skipped["message"] != "Database already has data. Skipping seed." {
		t.Fatalf("expected message only, got %v", skipped)
	}
}

func TestHealthDependenciesHandler(t *testing.T) {
	e := echo.New()

	h := NewHealthDependenciesHandler(map[string]CheckFunc{
		"mongodb": func(context.Context) error { return nil },
	})
	rec := httptest.NewRecorder()
	if err := h.Readiness(e.NewContext(httptest.NewRequest(http.MethodGet, "/health/ready", nil), rec)); err != nil {
		t.Fatalf("readiness: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	h = NewHealthDependenciesHandler(map[string]CheckFunc{
		"mongodb": func(context.Context) error { return nil },
		"redis":   func(context.Context) error { return errors.New("connection refused") },
	})
	rec = httptest.NewRecorder()
	if err := h.Readiness(e.NewContext(httptest.NewRequest(http.MethodGet, "/health/ready", nil), rec)); err != nil {
		t.Fatalf("readiness: %v", err)
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	var resp readinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Status != "degraded" || resp.Dependencies["redis"].Status != "unhealthy" || resp.Dependencies["mongodb"].Status != "ok" {
		t.Fatalf("unexpected readiness: %+v", resp)
	}
}
