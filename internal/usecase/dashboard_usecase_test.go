package usecase

import (
	"context"
	"testing"
	"time"

	"dental-care-api/internal/domain/entity"
	"dental-care-api/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDashboardUsecase(t *testing.T) (DashboardUsecase, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Patient{},
		&entity.Appointment{},
	))

	log := logrus.New()
	uc := NewDashboardUsecase(
		log,
		repository.NewAppointmentRepository(db),
		repository.NewPatientRepository(db),
		repository.NewUserRepository(db),
	)
	return uc, db
}

func TestDashboardGetStatsEmptyStore(t *testing.T) {
	uc, _ := newDashboardUsecase(t)

	stats, err := uc.GetStats(context.Background(), time.Now())
	require.NoError(t, err)
	require.NotNil(t, stats)

	assert.Zero(t, stats.TodayAppointments)
	assert.Zero(t, stats.TotalAppointments)
	assert.Zero(t, stats.TotalPatients)
	assert.Zero(t, stats.TotalUsers)
	assert.Empty(t, stats.UpcomingAppointments)
	assert.Empty(t, stats.RecentPatients)
	assert.Empty(t, stats.AppointmentsByType)
	assert.Empty(t, stats.AppointmentsByStatus)
	assert.Empty(t, stats.TreatmentsByType)
}

func TestDashboardGetStats(t *testing.T) {
	uc, db := newDashboardUsecase(t)
	today := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)

	require.NoError(t, db.Create(&entity.User{
		Name: "Admin", Email: "admin@clinic.test", Password: "x", Role: entity.RoleAdmin,
	}).Error)
	require.NoError(t, db.Create(&entity.Patient{
		FirstName: "John", LastName: "Smith", Phone: "555-0101",
	}).Error)
	require.NoError(t, db.Create(&entity.Patient{
		FirstName: "Anne", LastName: "Lee", Phone: "555-0102",
	}).Error)

	cleaning := "cleaning"
	appointments := []entity.Appointment{
		{PatientID: 1, PatientName: "John Smith", DentistName: "Dr. Adams", Date: today, StartTime: "10:00", EndTime: "10:30", Status: entity.AppointmentStatusScheduled, Type: "checkup", TreatmentType: &cleaning},
		{PatientID: 2, PatientName: "Anne Lee", DentistName: "Dr. Baker", Date: tomorrow, StartTime: "08:00", EndTime: "08:30", Status: entity.AppointmentStatusConfirmed, Type: "surgery"},
		{PatientID: 2, PatientName: "Anne Lee", DentistName: "Dr. Baker", Date: today.AddDate(0, 0, -7), StartTime: "09:00", EndTime: "09:30", Status: entity.AppointmentStatusCompleted, Type: "checkup", TreatmentType: &cleaning},
	}
	for i := range appointments {
		require.NoError(t, db.Create(&appointments[i]).Error)
	}

	stats, err := uc.GetStats(context.Background(), today)
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.TodayAppointments)
	assert.Equal(t, int64(3), stats.TotalAppointments)
	assert.Equal(t, int64(2), stats.TotalPatients)
	assert.Equal(t, int64(1), stats.TotalUsers)

	require.Len(t, stats.UpcomingAppointments, 2)
	assert.Equal(t, "John Smith", stats.UpcomingAppointments[0].PatientName)
	assert.Equal(t, "Anne Lee", stats.UpcomingAppointments[1].PatientName)

	assert.Len(t, stats.RecentPatients, 2)

	statusTotal := int64(0)
	for _, s := range stats.AppointmentsByStatus {
		statusTotal += s.Value
	}
	assert.Equal(t, stats.TotalAppointments, statusTotal)

	require.Len(t, stats.TreatmentsByType, 1)
	assert.Equal(t, "cleaning", stats.TreatmentsByType[0].Name)
	assert.Equal(t, int64(2), stats.TreatmentsByType[0].Value)
}
