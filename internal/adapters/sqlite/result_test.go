package sqlite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csg33k/employee-admin/internal/domain"
)

type stubResult struct {
	id, affected int64
	err          error
}

func (s stubResult) LastInsertId() (int64, error) { return s.id, s.err }
func (s stubResult) RowsAffected() (int64, error) { return s.affected, s.err }

func TestInsertedID(t *testing.T) {
	id, err := insertedID(stubResult{id: 12})
	require.NoError(t, err)
	assert.Equal(t, domain.ID("12"), id)

	boom := errors.New("driver lost the id")
	id, err = insertedID(stubResult{err: boom})
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, id)
}

func TestTouchedRow(t *testing.T) {
	assert.NoError(t, touchedRow(stubResult{affected: 1}, "7"))
	assert.ErrorIs(t, touchedRow(stubResult{}, "7"), domain.ErrNotFound)

	boom := errors.New("no row count")
	err := touchedRow(stubResult{err: boom}, "7")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}
