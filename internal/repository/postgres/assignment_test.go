package postgres_test

import (
	"context"
	"testing"

	"dogwalk-backend/internal/domain"
	"dogwalk-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestAssignmentRepository_AssignDogs(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewAssignmentRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT checked_in FROM bookings").
			WithArgs(int32(1), int32(5)).
			WillReturnRows(sqlmock.NewRows([]string{"checked_in"}).AddRow(true))
		mock.ExpectExec("INSERT INTO dog_assignments").
			WithArgs(int32(1), int32(5), int32(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO dog_assignments").
			WithArgs(int32(1), int32(5), int32(8)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.AssignDogs(ctx, 1, 5, []int32{7, 8})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RepeatAssignmentIsIdempotent", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT checked_in FROM bookings").
			WithArgs(int32(1), int32(5)).
			WillReturnRows(sqlmock.NewRows([]string{"checked_in"}).AddRow(true))
		// ON CONFLICT DO NOTHING swallows the duplicate.
		mock.ExpectExec("INSERT INTO dog_assignments").
			WithArgs(int32(1), int32(5), int32(7)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.AssignDogs(ctx, 1, 5, []int32{7})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotCheckedIn", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT checked_in FROM bookings").
			WithArgs(int32(1), int32(5)).
			WillReturnRows(sqlmock.NewRows([]string{"checked_in"}).AddRow(false))
		mock.ExpectRollback()

		err := repo.AssignDogs(ctx, 1, 5, []int32{7})
		assert.ErrorIs(t, err, domain.ErrInvalidState)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NoBooking", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT checked_in FROM bookings").
			WithArgs(int32(1), int32(99)).
			WillReturnRows(sqlmock.NewRows([]string{"checked_in"}))
		mock.ExpectRollback()

		err := repo.AssignDogs(ctx, 1, 99, []int32{7})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAssignmentRepository_ListBySession(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewAssignmentRepository(db)

	rows := sqlmock.NewRows([]string{"session_id", "walker_id", "dog_id"}).
		AddRow(1, 5, 7).
		AddRow(1, 5, 8)

	mock.ExpectQuery("SELECT (.+) FROM dog_assignments WHERE session_id = \\$1").
		WithArgs(int32(1)).
		WillReturnRows(rows)

	assignments, err := repo.ListBySession(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, assignments, 2)
	assert.Equal(t, int32(7), assignments[0].DogID)
}
