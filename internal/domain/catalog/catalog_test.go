package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type mockRepo struct {
	items map[uuid.UUID]*Service
}

func newMockRepo() *mockRepo {
	return &mockRepo{items: make(map[uuid.UUID]*Service)}
}

func (m *mockRepo) Create(_ context.Context, s *Service) error {
	s.ID = uuid.New()
	s.CreatedAt = time.Now()
	s.UpdatedAt = time.Now()
	m.items[s.ID] = s
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Service, error) {
	s, ok := m.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (m *mockRepo) List(_ context.Context) ([]*Service, error) {
	var result []*Service
	for _, s := range m.items {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockRepo) Update(_ context.Context, id uuid.UUID, upd *UpdateRequest) (*Service, error) {
	s, ok := m.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	if upd.Name != nil {
		s.Name = *upd.Name
	}
	if upd.Description != nil {
		s.Description = upd.Description
	}
	if upd.Price != nil {
		s.Price = upd.Price
	}
	return s, nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.items[id]; !ok {
		return ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func newTestHandler() (*Handler, *echo.Echo) {
	h := NewHandler(NewManager(newMockRepo()))
	e := echo.New()
	return h, e
}

func TestManager_ListSortedByName(t *testing.T) {
	mgr := NewManager(newMockRepo())
	for _, name := range []string{"Whitening", "Cleaning", "Extraction"} {
		if err := mgr.Create(context.Background(), &Service{Name: name}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	items, err := mgr.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 || items[0].Name != "Cleaning" {
		t.Errorf("expected name-ascending order, got %+v", items)
	}
}

func TestHandler_Create_MissingName(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"price": 50}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_CreateAndUpdate(t *testing.T) {
	h, e := newTestHandler()
	body := `{"name":"Cleaning","description":"Routine cleaning","price":80}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	items, _ := h.mgr.List(context.Background())
	id := items[0].ID

	req = httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"price":95}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.SetParamNames("serviceId")
	c.SetParamValues(id.String())
	if err := h.Update(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items, _ = h.mgr.List(context.Background())
	if items[0].Price == nil || *items[0].Price != 95 {
		t.Errorf("expected price 95 after patch, got %+v", items[0].Price)
	}
	if items[0].Name != "Cleaning" {
		t.Errorf("patch must not clear untouched fields, got name %q", items[0].Name)
	}
}

func TestHandler_Update_NotFound(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"name":"X"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("serviceId")
	c.SetParamValues(uuid.New().String())

	err := h.Update(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}
