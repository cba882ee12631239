package models

import (
	"strings"
	"time"
)

// Student represents one row of the students table. The store owns the id
// and both timestamps; GORM fills CreatedAt/UpdatedAt on every successful
// write, so updated_at >= created_at holds without a database trigger.
type Student struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Surname   string    `json:"surname" gorm:"size:100;not null"`
	Email     string    `json:"email" gorm:"size:255;not null;uniqueIndex"`
	Phone     string    `json:"phone" gorm:"size:10;not null"`
	IDNumber  string    `json:"id_number" gorm:"column:id_number;size:13;not null;uniqueIndex"`
	Course    string    `json:"course" gorm:"size:255;not null"`
	Address   string    `json:"address" gorm:"size:200;default:''"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name used by GORM.
func (Student) TableName() string {
	return "students"
}

// StudentPayload is the client-supplied portion of a record, used for both
// create and update. Internally managed fields (id, timestamps) are absent.
type StudentPayload struct {
	Name     string `json:"name" validate:"required,personname"`
	Surname  string `json:"surname" validate:"required,personname"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,exactdigits=10"`
	IDNumber string `json:"id_number" validate:"required,exactdigits=13"`
	Course   string `json:"course" validate:"required"`
	Address  string `json:"address" validate:"omitempty,max=200"`
}

// Normalize trims every field and lowercases the email into its canonical
// form. Must run before validation and before any uniqueness comparison so
// that A@B.com and a@b.com collide.
func (p *StudentPayload) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Surname = strings.TrimSpace(p.Surname)
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	p.Phone = strings.TrimSpace(p.Phone)
	p.IDNumber = strings.TrimSpace(p.IDNumber)
	p.Course = strings.TrimSpace(p.Course)
	p.Address = strings.TrimSpace(p.Address)
}

// Apply copies all mutable fields onto a student record (whole-record
// replace). Identity and timestamps stay untouched here.
func (p *StudentPayload) Apply(s *Student) {
	s.Name = p.Name
	s.Surname = p.Surname
	s.Email = p.Email
	s.Phone = p.Phone
	s.IDNumber = p.IDNumber
	s.Course = p.Course
	s.Address = p.Address
}
