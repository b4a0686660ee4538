package usecase

import (
	"context"
	"errors"
	"testing"

	"dental-care-api/internal/delivery/dto"
	"dental-care-api/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPatientRepo struct {
	patients map[int64]*entity.Patient
	failWith error
}

func (s *stubPatientRepo) Create(ctx context.Context, patient *entity.Patient) error {
	if s.failWith != nil {
		return s.failWith
	}
	patient.ID = int64(len(s.patients) + 1)
	s.patients[patient.ID] = patient
	return nil
}

func (s *stubPatientRepo) FindByID(ctx context.Context, id int64) (*entity.Patient, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	return s.patients[id], nil
}

func (s *stubPatientRepo) List(ctx context.Context, q entity.PageQuery) ([]entity.Patient, int64, error) {
	return nil, 0, s.failWith
}

func (s *stubPatientRepo) Search(ctx context.Context, query string) ([]entity.Patient, error) {
	return nil, s.failWith
}

func (s *stubPatientRepo) FindRecent(ctx context.Context, limit int) ([]entity.Patient, error) {
	return nil, s.failWith
}

func (s *stubPatientRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(s.patients)), s.failWith
}

func (s *stubPatientRepo) Update(ctx context.Context, patient *entity.Patient) error {
	return s.failWith
}

func (s *stubPatientRepo) Delete(ctx context.Context, id int64) error {
	if s.failWith != nil {
		return s.failWith
	}
	delete(s.patients, id)
	return nil
}

func newStubPatientRepo() *stubPatientRepo {
	return &stubPatientRepo{patients: make(map[int64]*entity.Patient)}
}

func TestPatientUsecaseCreate(t *testing.T) {
	repo := newStubPatientRepo()
	uc := NewPatientUsecase(logrus.New(), repo)

	t.Run("valid request", func(t *testing.T) {
		resp, err := uc.Create(context.Background(), &dto.CreatePatientRequest{
			FirstName:   "John",
			LastName:    "Smith",
			Phone:       "555-0101",
			DateOfBirth: "1990-06-15",
		})
		require.NoError(t, err)
		require.NotNil(t, resp.DateOfBirth)
		assert.Equal(t, "1990-06-15", *resp.DateOfBirth)
	})

	t.Run("missing date of birth stays null", func(t *testing.T) {
		resp, err := uc.Create(context.Background(), &dto.CreatePatientRequest{
			FirstName: "Anne",
			LastName:  "Lee",
			Phone:     "555-0102",
		})
		require.NoError(t, err)
		assert.Nil(t, resp.DateOfBirth)
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		_, err := uc.Create(context.Background(), &dto.CreatePatientRequest{
			FirstName:   "Bad",
			LastName:    "Date",
			Phone:       "555-0103",
			DateOfBirth: "15/06/1990",
		})
		assert.ErrorIs(t, err, ErrInvalidDateFormat)
	})
}

func TestPatientUsecaseGetByID(t *testing.T) {
	repo := newStubPatientRepo()
	repo.patients[1] = &entity.Patient{ID: 1, FirstName: "John", LastName: "Smith"}
	uc := NewPatientUsecase(logrus.New(), repo)

	t.Run("existing patient", func(t *testing.T) {
		resp, err := uc.GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "John", resp.FirstName)
	})

	t.Run("missing patient maps to not found", func(t *testing.T) {
		_, err := uc.GetByID(context.Background(), 42)
		assert.ErrorIs(t, err, ErrPatientNotFound)
	})

	t.Run("storage errors propagate unchanged", func(t *testing.T) {
		boom := errors.New("connection reset")
		repo.failWith = boom
		defer func() { repo.failWith = nil }()

		_, err := uc.GetByID(context.Background(), 1)
		assert.ErrorIs(t, err, boom)
	})
}

func TestPatientUsecaseDelete(t *testing.T) {
	repo := newStubPatientRepo()
	repo.patients[1] = &entity.Patient{ID: 1, FirstName: "John", LastName: "Smith"}
	uc := NewPatientUsecase(logrus.New(), repo)

	require.NoError(t, uc.Delete(context.Background(), 1))
	assert.ErrorIs(t, uc.Delete(context.Background(), 1), ErrPatientNotFound)
}
