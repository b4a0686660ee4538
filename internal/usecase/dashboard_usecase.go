package usecase

import (
	"context"
	"time"

	"dental-care-api/internal/converter"
	"dental-care-api/internal/delivery/dto"
	"dental-care-api/internal/domain/entity"
	"dental-care-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Limits for the dashboard's preview lists
const (
	upcomingAppointmentLimit = 5
	recentPatientLimit       = 5
)

type DashboardUsecase interface {
	GetStats(ctx context.Context, asOf time.Time) (*dto.DashboardStatsResponse, error)
}

type dashboardUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	userRepo        repository.UserRepository
}

func NewDashboardUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	userRepo repository.UserRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		userRepo:        userRepo,
	}
}

// GetStats assembles the dashboard snapshot from nine independent read
// queries. They populate disjoint fields, so they run concurrently; if any
// one fails, the whole snapshot fails rather than reporting misleading
// zero-valued statistics.
func (u *dashboardUsecase) GetStats(ctx context.Context, asOf time.Time) (*dto.DashboardStatsResponse, error) {
	var (
		todayAppointments int64
		totalAppointments int64
		totalPatients     int64
		totalUsers        int64
		upcoming          []entity.Appointment
		recentPatients    []entity.Patient
		byType            []entity.StatCount
		byStatus          []entity.StatCount
		byTreatment       []entity.StatCount
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		todayAppointments, err = u.appointmentRepo.CountByDate(gctx, asOf)
		return err
	})
	g.Go(func() error {
		var err error
		totalAppointments, err = u.appointmentRepo.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		totalPatients, err = u.patientRepo.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		totalUsers, err = u.userRepo.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		upcoming, err = u.appointmentRepo.FindUpcoming(gctx, asOf, upcomingAppointmentLimit)
		return err
	})
	g.Go(func() error {
		var err error
		recentPatients, err = u.patientRepo.FindRecent(gctx, recentPatientLimit)
		return err
	})
	g.Go(func() error {
		var err error
		byType, err = u.appointmentRepo.CountByType(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		byStatus, err = u.appointmentRepo.CountByStatus(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		byTreatment, err = u.appointmentRepo.CountByTreatmentType(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to collect dashboard stats: %+v", err)
		return nil, err
	}

	return &dto.DashboardStatsResponse{
		TodayAppointments:    todayAppointments,
		TotalAppointments:    totalAppointments,
		TotalPatients:        totalPatients,
		TotalUsers:           totalUsers,
		UpcomingAppointments: converter.AppointmentsToUpcomingResponses(upcoming),
		RecentPatients:       converter.PatientsToRecentResponses(recentPatients),
		AppointmentsByType:   converter.StatCountsToResponses(byType),
		AppointmentsByStatus: converter.StatCountsToResponses(byStatus),
		TreatmentsByType:     converter.StatCountsToResponses(byTreatment),
	}, nil
}
