package service

import (
	"context"
	"testing"

	"dogwalk-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReports_AdminOnly(t *testing.T) {
	svc := NewReportService(new(MockReportRepo))
	marshal := domain.Identity{UserID: 2, Role: domain.RoleMarshal}

	_, err := svc.ListReports(context.Background(), marshal)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = svc.DeleteReport(context.Background(), marshal, 1)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.DeleteAllReports(context.Background(), marshal)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestReports_AdminAccess(t *testing.T) {
	reportRepo := new(MockReportRepo)
	svc := NewReportService(reportRepo)
	admin := domain.Identity{UserID: 9, Role: domain.RoleAdmin}

	dogName := "Rex"
	reportRepo.On("List", mock.Anything).Return([]domain.WalkReport{
		{ID: 1, WalkerName: "Ada", DogName: &dogName, CheckInStatus: domain.CheckInStatusCheckedIn},
	}, nil)
	reportRepo.On("Delete", mock.Anything, int32(1)).Return(nil)
	reportRepo.On("DeleteAll", mock.Anything).Return(int64(4), nil)

	reports, err := svc.ListReports(context.Background(), admin)
	require.NoError(t, err)
	assert.Len(t, reports, 1)

	require.NoError(t, svc.DeleteReport(context.Background(), admin, 1))

	deleted, err := svc.DeleteAllReports(context.Background(), admin)
	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)
}

func TestCreateDog(t *testing.T) {
	dogRepo := new(MockDogRepo)
	svc := NewDogService(dogRepo)
	admin := domain.Identity{UserID: 9, Role: domain.RoleAdmin}

	err := svc.CreateDog(context.Background(), domain.Identity{UserID: 5, Role: domain.RoleWalker}, &domain.Dog{Name: "Rex"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	var vErr *domain.ValidationError
	err = svc.CreateDog(context.Background(), admin, &domain.Dog{})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "name", vErr.Field)

	err = svc.CreateDog(context.Background(), admin, &domain.Dog{Name: "Rex", Age: -1})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "age", vErr.Field)

	dogRepo.On("Create", mock.Anything, mock.MatchedBy(func(d *domain.Dog) bool {
		return d.Name == "Rex" && d.Age == 3
	})).Return(nil)
	require.NoError(t, svc.CreateDog(context.Background(), admin, &domain.Dog{Name: "Rex", Age: 3}))
	dogRepo.AssertExpectations(t)
}
