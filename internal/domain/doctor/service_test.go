package doctor

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockRepo struct {
	items map[uuid.UUID]*Doctor
}

func newMockRepo() *mockRepo {
	return &mockRepo{items: make(map[uuid.UUID]*Doctor)}
}

func (m *mockRepo) Create(_ context.Context, d *Doctor) error {
	d.ID = uuid.New()
	d.CreatedAt = time.Now()
	d.UpdatedAt = time.Now()
	m.items[d.ID] = d
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Doctor, error) {
	d, ok := m.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return d, nil
}

func (m *mockRepo) List(_ context.Context) ([]*Doctor, error) {
	var result []*Doctor
	for _, d := range m.items {
		result = append(result, d)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockRepo) Update(_ context.Context, id uuid.UUID, upd *UpdateRequest) (*Doctor, error) {
	d, ok := m.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	if upd.Name != nil {
		d.Name = *upd.Name
	}
	return d, nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.items[id]; !ok {
		return ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func newTestService() *Service {
	return NewService(newMockRepo())
}

func TestService_CreateAndList(t *testing.T) {
	svc := newTestService()
	for _, name := range []string{"Dr. Reyes", "Dr. Adler"} {
		if err := svc.Create(context.Background(), &Doctor{Name: name}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 doctors, got %d", len(items))
	}
	if items[0].Name != "Dr. Adler" {
		t.Errorf("expected name-sorted list, got %s first", items[0].Name)
	}
}

func TestService_Update_NotFound(t *testing.T) {
	svc := newTestService()
	name := "Dr. Who"
	_, err := svc.Update(context.Background(), uuid.New(), &UpdateRequest{Name: &name})
	if err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Delete(t *testing.T) {
	svc := newTestService()
	d := &Doctor{Name: "Dr. Gone"}
	svc.Create(context.Background(), d)
	if err := svc.Delete(context.Background(), d.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Delete(context.Background(), d.ID); err != ErrNotFound {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}
