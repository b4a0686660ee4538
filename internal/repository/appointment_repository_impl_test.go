package repository

import (
	"context"
	"testing"
	"time"

	"dental-care-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func seedAppointments(t *testing.T, repo *appointmentRepository, today time.Time) {
	t.Helper()

	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)

	appointments := []entity.Appointment{
		{PatientID: 1, PatientName: "John Smith", DentistName: "Dr. Adams", Date: yesterday, StartTime: "09:00", EndTime: "09:30", Status: entity.AppointmentStatusCompleted, Type: "checkup", TreatmentType: strPtr("cleaning")},
		{PatientID: 1, PatientName: "John Smith", DentistName: "Dr. Adams", Date: today, StartTime: "14:00", EndTime: "14:30", Status: entity.AppointmentStatusScheduled, Type: "checkup"},
		{PatientID: 2, PatientName: "Anne Lee", DentistName: "Dr. Baker", Date: today, StartTime: "10:00", EndTime: "11:00", Status: entity.AppointmentStatusConfirmed, Type: "surgery", TreatmentType: strPtr("extraction")},
		{PatientID: 2, PatientName: "Anne Lee", DentistName: "Dr. Baker", Date: tomorrow, StartTime: "08:00", EndTime: "08:30", Status: entity.AppointmentStatusCancelled, Type: "checkup"},
		{PatientID: 3, PatientName: "Maria Garcia", DentistName: "Dr. Adams", Date: tomorrow, StartTime: "12:00", EndTime: "12:45", Status: entity.AppointmentStatusScheduled, Type: "consultation", TreatmentType: strPtr("cleaning")},
	}
	for i := range appointments {
		require.NoError(t, repo.Create(context.Background(), &appointments[i]))
	}
}

func TestAppointmentRepositoryCountByDate(t *testing.T) {
	repo := &appointmentRepository{db: newTestDB(t)}
	today := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	seedAppointments(t, repo, today)

	count, err := repo.CountByDate(context.Background(), today)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountByDate(context.Background(), today.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestAppointmentRepositoryFindUpcoming(t *testing.T) {
	repo := &appointmentRepository{db: newTestDB(t)}
	today := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	seedAppointments(t, repo, today)

	upcoming, err := repo.FindUpcoming(context.Background(), today, 5)
	require.NoError(t, err)

	// Cancelled and past appointments are excluded; the rest come back
	// ordered by date, then start time.
	require.Len(t, upcoming, 3)
	assert.Equal(t, "10:00", upcoming[0].StartTime)
	assert.Equal(t, "14:00", upcoming[1].StartTime)
	assert.Equal(t, "12:00", upcoming[2].StartTime)

	limited, err := repo.FindUpcoming(context.Background(), today, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestAppointmentRepositoryGroupCounts(t *testing.T) {
	repo := &appointmentRepository{db: newTestDB(t)}
	today := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	seedAppointments(t, repo, today)
	ctx := context.Background()

	toMap := func(stats []entity.StatCount) map[string]int64 {
		m := make(map[string]int64, len(stats))
		for _, s := range stats {
			m[s.Name] = s.Value
		}
		return m
	}

	byType, err := repo.CountByType(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"checkup": 3, "surgery": 1, "consultation": 1}, toMap(byType))

	byStatus, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{
		"scheduled": 2, "confirmed": 1, "completed": 1, "cancelled": 1,
	}, toMap(byStatus))

	// Rows without a treatment type stay out of the grouping.
	byTreatment, err := repo.CountByTreatmentType(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"cleaning": 2, "extraction": 1}, toMap(byTreatment))
}

func TestAppointmentRepositorySearch(t *testing.T) {
	repo := &appointmentRepository{db: newTestDB(t)}
	today := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	seedAppointments(t, repo, today)

	appointments, err := repo.Search(context.Background(), "baker")
	require.NoError(t, err)
	assert.Len(t, appointments, 2)

	appointments, err = repo.Search(context.Background(), "surgery")
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, "Anne Lee", appointments[0].PatientName)
}

func TestAppointmentRepositoryFindByPatientID(t *testing.T) {
	repo := &appointmentRepository{db: newTestDB(t)}
	today := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	seedAppointments(t, repo, today)

	appointments, err := repo.FindByPatientID(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, appointments, 2)

	appointments, err = repo.FindByPatientID(context.Background(), 9999)
	require.NoError(t, err)
	assert.Empty(t, appointments)
}
