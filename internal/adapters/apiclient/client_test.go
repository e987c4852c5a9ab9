package apiclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csg33k/employee-admin/internal/adapters/apiclient"
	"github.com/csg33k/employee-admin/internal/domain"
)

func newClient(t *testing.T, h http.HandlerFunc, opts ...apiclient.Option) *apiclient.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := apiclient.New(srv.URL, 5*time.Second, opts...)
	require.NoError(t, err)
	return c
}

func TestNew_RejectsRelativeURL(t *testing.T) {
	_, err := apiclient.New("/employees", time.Second)
	assert.Error(t, err)
}

func TestGetAll_DecodesNumericIDs(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/employees", r.URL.Path)
		io.WriteString(w, `[{"id":7,"fullName":"Jane","beneficiary":{"fullName":"John","gender":"Male"}},{"id":"abc","fullName":"Ann"}]`)
	})

	got, err := c.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, domain.ID("7"), got[0].ID)
	assert.Equal(t, "John", got[0].Beneficiary.FullName)
	assert.Equal(t, domain.ID("abc"), got[1].ID)
}

func TestGetAll_NullBodyIsEmpty(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `null`)
	})
	got, err := c.GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetByID(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/employees/7", r.URL.Path)
		io.WriteString(w, `{"id":"7","fullName":"Jane"}`)
	})
	got, err := c.GetByID(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.FullName)
}

func TestCreate_SendsJSONBody(t *testing.T) {
	in := domain.EmployeeInput{
		FullName:     "Jane Doe",
		Salary:       "90000",
		ContractDate: "2024-01-15T00:00:00.000Z",
		Beneficiary:  domain.Beneficiary{FullName: "John Doe", Gender: domain.GenderMale},
	}
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.NotContains(t, raw, "id")
		assert.Equal(t, "Jane Doe", raw["fullName"])
		assert.Equal(t, map[string]any{
			"fullName":     "John Doe",
			"relationship": "",
			"birthday":     "",
			"gender":       "Male",
		}, raw["beneficiary"])

		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id":12,"fullName":"Jane Doe"}`)
	})

	got, err := c.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, domain.ID("12"), got.ID)
}

func TestUpdateAndDelete(t *testing.T) {
	var methods []string
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		io.WriteString(w, `{"id":"7"}`)
	})

	_, err := c.Update(context.Background(), "7", domain.EmployeeInput{FullName: "x"})
	require.NoError(t, err)
	require.NoError(t, c.Delete(context.Background(), "7"))
	assert.Equal(t, []string{"PUT /employees/7", "DELETE /employees/7"}, methods)
}

func TestItemIDsStayInOneSegment(t *testing.T) {
	var seen []string
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.EscapedPath())
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		io.WriteString(w, `{"id":"x"}`)
	})
	ctx := context.Background()

	require.NoError(t, c.Delete(ctx, "../../admin/users/1"))
	require.NoError(t, c.Delete(ctx, "7/beneficiary"))
	_, err := c.GetByID(ctx, "a b")
	require.NoError(t, err)
	_, err = c.Update(ctx, "a/b", domain.EmployeeInput{FullName: "x"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"DELETE /employees/..%2F..%2Fadmin%2Fusers%2F1",
		"DELETE /employees/7%2Fbeneficiary",
		"GET /employees/a%20b",
		"PUT /employees/a%2Fb",
	}, seen)
}

func TestErrors_UseMessageThenStatusText(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/employees/1" {
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"message":"Employee not found"}`)
			return
		}
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.GetByID(context.Background(), "1")
	var apiErr *apiclient.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Employee not found", err.Error())

	err = c.Delete(context.Background(), "2")
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Bad Gateway", apiErr.Message)
}

func TestNoRetries(t *testing.T) {
	var calls int32
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	_, err := c.GetAll(context.Background())
	assert.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestObserverSeesOutcome(t *testing.T) {
	type call struct {
		op  string
		err bool
	}
	var seen []call
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		io.WriteString(w, `[]`)
	}, apiclient.WithObserver(func(op string, err error) {
		seen = append(seen, call{op, err != nil})
	}))

	_, _ = c.GetAll(context.Background())
	_ = c.Delete(context.Background(), "1")
	assert.Equal(t, []call{{"get_all", false}, {"delete", true}}, seen)
}

func TestCanceledContext(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[]`)
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.GetAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
