package entity

import "time"

// Patient represents a registered clinic patient
type Patient struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName   string     `gorm:"type:varchar(100);not null;index" json:"first_name"`
	LastName    string     `gorm:"type:varchar(100);not null;index" json:"last_name"`
	Email       string     `gorm:"type:varchar(255);index" json:"email,omitempty"`
	Phone       string     `gorm:"type:varchar(30);not null;index" json:"phone"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Address     string     `gorm:"type:text" json:"address,omitempty"`
	LastVisit   *time.Time `gorm:"type:date" json:"last_visit,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}

// FullName returns the patient's display name
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}
