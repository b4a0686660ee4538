package repository

import (
	"context"
	"testing"

	"dental-care-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPatients(t *testing.T, repo *patientRepository) []entity.Patient {
	t.Helper()

	patients := []entity.Patient{
		{FirstName: "John", LastName: "Smith", Email: "john.smith@example.com", Phone: "555-0101"},
		{FirstName: "Anne", LastName: "Lee", Email: "anne.lee@example.com", Phone: "555-0102"},
		{FirstName: "Maria", LastName: "Garcia", Email: "maria.g@example.com", Phone: "555-0103"},
	}
	for i := range patients {
		require.NoError(t, repo.Create(context.Background(), &patients[i]))
	}
	return patients
}

func TestPatientRepositoryList(t *testing.T) {
	repo := &patientRepository{db: newTestDB(t)}
	seedPatients(t, repo)
	ctx := context.Background()

	t.Run("empty search returns every row", func(t *testing.T) {
		q := entity.NewPageQuery(0, 10, "id", "asc", "")
		patients, total, err := repo.List(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, patients, 3)
	})

	t.Run("search matches case insensitively on last name", func(t *testing.T) {
		q := entity.NewPageQuery(0, 10, "id", "asc", "smith")
		patients, total, err := repo.List(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, patients, 1)
		assert.Equal(t, "Smith", patients[0].LastName)
	})

	t.Run("search matches an id fragment cast to text", func(t *testing.T) {
		q := entity.NewPageQuery(0, 10, "id", "asc", "2")
		patients, _, err := repo.List(ctx, q)
		require.NoError(t, err)
		found := false
		for _, p := range patients {
			if p.ID == 2 {
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("page beyond the result set is empty, not an error", func(t *testing.T) {
		q := entity.NewPageQuery(2, 10, "id", "asc", "")
		patients, total, err := repo.List(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Empty(t, patients)
	})

	t.Run("unknown sort field falls back to id", func(t *testing.T) {
		q := entity.NewPageQuery(0, 10, "nonexistent", "desc", "")
		patients, _, err := repo.List(ctx, q)
		require.NoError(t, err)
		require.Len(t, patients, 3)
		assert.Equal(t, int64(3), patients[0].ID)
	})

	t.Run("sorts by mapped column", func(t *testing.T) {
		q := entity.NewPageQuery(0, 10, "lastName", "asc", "")
		patients, _, err := repo.List(ctx, q)
		require.NoError(t, err)
		require.Len(t, patients, 3)
		assert.Equal(t, "Garcia", patients[0].LastName)
		assert.Equal(t, "Smith", patients[2].LastName)
	})
}

func TestPatientRepositorySearch(t *testing.T) {
	repo := &patientRepository{db: newTestDB(t)}
	seedPatients(t, repo)
	ctx := context.Background()

	t.Run("matches phone without folding", func(t *testing.T) {
		patients, err := repo.Search(ctx, "555-0102")
		require.NoError(t, err)
		require.Len(t, patients, 1)
		assert.Equal(t, "Anne", patients[0].FirstName)
	})

	t.Run("no match yields an empty list", func(t *testing.T) {
		patients, err := repo.Search(ctx, "zzz")
		require.NoError(t, err)
		assert.Empty(t, patients)
	})
}

func TestPatientRepositoryFindByID(t *testing.T) {
	repo := &patientRepository{db: newTestDB(t)}
	seeded := seedPatients(t, repo)
	ctx := context.Background()

	patient, err := repo.FindByID(ctx, seeded[0].ID)
	require.NoError(t, err)
	require.NotNil(t, patient)
	assert.Equal(t, "John", patient.FirstName)

	missing, err := repo.FindByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPatientRepositoryFindRecent(t *testing.T) {
	repo := &patientRepository{db: newTestDB(t)}
	seedPatients(t, repo)

	patients, err := repo.FindRecent(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, patients, 2)
}
