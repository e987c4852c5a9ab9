package fakeapi_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csg33k/employee-admin/internal/adapters/apiclient"
	"github.com/csg33k/employee-admin/internal/adapters/fakeapi"
	"github.com/csg33k/employee-admin/internal/domain"
)

// memRepo is an in-memory ports.EmployeeRepository.
type memRepo struct {
	next int
	rows map[domain.ID]domain.Employee
	ids  []domain.ID
}

func newMemRepo() *memRepo { return &memRepo{rows: map[domain.ID]domain.Employee{}} }

func (m *memRepo) ListEmployees(context.Context) ([]domain.Employee, error) {
	out := []domain.Employee{}
	for _, id := range m.ids {
		out = append(out, m.rows[id])
	}
	return out, nil
}

func (m *memRepo) GetEmployee(_ context.Context, id domain.ID) (*domain.Employee, error) {
	e, ok := m.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &e, nil
}

func (m *memRepo) CreateEmployee(_ context.Context, in domain.EmployeeInput) (*domain.Employee, error) {
	m.next++
	e := domain.Employee{ID: domain.ID(strconv.Itoa(m.next)), EmployeeInput: in}
	m.rows[e.ID] = e
	m.ids = append(m.ids, e.ID)
	return &e, nil
}

func (m *memRepo) UpdateEmployee(_ context.Context, id domain.ID, in domain.EmployeeInput) (*domain.Employee, error) {
	if _, ok := m.rows[id]; !ok {
		return nil, domain.ErrNotFound
	}
	e := domain.Employee{ID: id, EmployeeInput: in}
	m.rows[id] = e
	return &e, nil
}

func (m *memRepo) DeleteEmployee(_ context.Context, id domain.ID) error {
	if _, ok := m.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.rows, id)
	for i, v := range m.ids {
		if v == id {
			m.ids = append(m.ids[:i], m.ids[i+1:]...)
			break
		}
	}
	return nil
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(fakeapi.New(newMemRepo(), slog.New(slog.NewTextHandler(io.Discard, nil))).Routes())
	t.Cleanup(srv.Close)
	return srv
}

// The fake API must satisfy the client used by the admin UI end to end.
func TestServer_RoundTripThroughClient(t *testing.T) {
	srv := newServer(t)
	client, err := apiclient.New(srv.URL, 5*time.Second)
	require.NoError(t, err)
	ctx := context.Background()

	in := domain.EmployeeInput{
		FullName: "Ann Lee", Job: "Engineer", Salary: "5000",
		Beneficiary: domain.Beneficiary{FullName: "Bo Lee", Gender: domain.GenderMale},
	}
	created, err := client.Create(ctx, in)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	all, err := client.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Bo Lee", all[0].Beneficiary.FullName)

	in.Salary = "6000"
	updated, err := client.Update(ctx, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "6000", updated.Salary)

	require.NoError(t, client.Delete(ctx, created.ID))
	all, err = client.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestServer_NotFoundMessage(t *testing.T) {
	srv := newServer(t)
	client, err := apiclient.New(srv.URL, 5*time.Second)
	require.NoError(t, err)

	_, err = client.GetByID(context.Background(), "404")
	var apiErr *apiclient.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Employee not found", apiErr.Message)
}

func TestServer_RejectsBadBody(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Post(srv.URL+"/employees", "application/json", strings.NewReader("{"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "invalid request body", body["message"])
}
