package dto

// StatisticResponse is a single named counter in a dashboard group-by.
type StatisticResponse struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

type UpcomingAppointmentResponse struct {
	ID            int64   `json:"id"`
	PatientName   string  `json:"patientName"`
	DentistName   string  `json:"dentistName"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	Status        string  `json:"status"`
	Type          string  `json:"type"`
	TreatmentType *string `json:"treatmentType"`
	PatientID     int64   `json:"patientId"`
}

type RecentPatientResponse struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Phone     string  `json:"phone"`
	LastVisit *string `json:"lastVisit"`
}

// DashboardStatsResponse is the point-in-time dashboard snapshot. It is
// rebuilt on every request and never cached.
type DashboardStatsResponse struct {
	TodayAppointments    int64                         `json:"todayAppointments"`
	TotalAppointments    int64                         `json:"totalAppointments"`
	TotalPatients        int64                         `json:"totalPatients"`
	TotalUsers           int64                         `json:"totalUsers"`
	UpcomingAppointments []UpcomingAppointmentResponse `json:"upcomingAppointments"`
	RecentPatients       []RecentPatientResponse       `json:"recentPatients"`
	AppointmentsByType   []StatisticResponse           `json:"appointmentsByType"`
	AppointmentsByStatus []StatisticResponse           `json:"appointmentsByStatus"`
	TreatmentsByType     []StatisticResponse           `json:"treatmentsByType"`
}
