package repository

import (
	"context"
	"errors"
	"time"

	"dental-care-api/internal/domain/entity"
	domainRepo "dental-care-api/internal/domain/repository"

	"gorm.io/gorm"
)

var appointmentSearchSpec = entity.SearchSpec{
	Fields: []entity.SearchField{
		{Column: "patient_name", Fold: true},
		{Column: "dentist_name", Fold: true},
		{Column: "type", Fold: true},
		{Column: "status", Fold: true},
		{Column: "id", CastText: true},
	},
}

var appointmentSortColumns = map[string]string{
	"id":          "id",
	"patientName": "patient_name",
	"dentistName": "dentist_name",
	"date":        "date",
	"startTime":   "start_time",
	"status":      "status",
	"type":        "type",
	"createdAt":   "created_at",
}

// upcomingStatuses are the only statuses shown in the dashboard's upcoming
// appointments preview.
var upcomingStatuses = []entity.AppointmentStatus{
	entity.AppointmentStatusScheduled,
	entity.AppointmentStatusConfirmed,
}

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, id int64) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByPatientID(ctx context.Context, patientID int64) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("date ASC, start_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) List(ctx context.Context, q entity.PageQuery) ([]entity.Appointment, int64, error) {
	var total int64
	countQuery := applySearch(r.db.WithContext(ctx).Model(&entity.Appointment{}), appointmentSearchSpec, q.Search)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var appointments []entity.Appointment
	findQuery := applySearch(r.db.WithContext(ctx).Model(&entity.Appointment{}), appointmentSearchSpec, q.Search)
	err := applySort(findQuery, appointmentSortColumns, q).
		Offset(q.Offset()).
		Limit(q.Size).
		Find(&appointments).Error
	if err != nil {
		return nil, 0, err
	}

	return appointments, total, nil
}

func (r *appointmentRepository) Search(ctx context.Context, query string) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := applySearch(r.db.WithContext(ctx).Model(&entity.Appointment{}), appointmentSearchSpec, query).
		Limit(typeaheadLimit).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Appointment{}).Count(&count).Error
	return count, err
}

// CountByDate counts appointments on the calendar day containing the given
// moment. The half-open range keeps the comparison portable across drivers
// that store dates with a time component.
func (r *appointmentRepository) CountByDate(ctx context.Context, day time.Time) (int64, error) {
	start := atMidnight(day)
	end := start.AddDate(0, 0, 1)

	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("date >= ? AND date < ?", start, end).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) FindUpcoming(ctx context.Context, from time.Time, limit int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Where("date >= ? AND status IN ?", atMidnight(from), upcomingStatuses).
		Order("date ASC, start_time ASC").
		Limit(limit).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) CountByType(ctx context.Context) ([]entity.StatCount, error) {
	var stats []entity.StatCount
	err := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Select("type AS name, COUNT(*) AS value").
		Group("type").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *appointmentRepository) CountByStatus(ctx context.Context) ([]entity.StatCount, error) {
	var stats []entity.StatCount
	err := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Select("status AS name, COUNT(*) AS value").
		Group("status").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *appointmentRepository) CountByTreatmentType(ctx context.Context) ([]entity.StatCount, error) {
	var stats []entity.StatCount
	err := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Select("treatment_type AS name, COUNT(*) AS value").
		Where("treatment_type IS NOT NULL").
		Group("treatment_type").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Save(appointment).Error
}

func (r *appointmentRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Appointment{}).Error
}

func atMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
