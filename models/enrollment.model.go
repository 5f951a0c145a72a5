package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment records which courses a user signed up for in a single request.
// Course ids are copied in at creation time; there is no foreign key back to
// the courses table.
type Enrollment struct {
	gorm.Model
	UserID          uint             `json:"userId" gorm:"index;not null"`
	EnrolledCourses []EnrolledCourse `json:"enrolledCourses" gorm:"foreignKey:EnrollmentID"`
	TotalPrice      float64          `json:"totalPrice"`
	EnrolledOn      time.Time        `json:"enrolledOn"`
	Status          string           `json:"status" gorm:"default:'Enrolled'"`
}

type EnrolledCourse struct {
	gorm.Model
	EnrollmentID uint `json:"-" gorm:"index;not null"`
	CourseID     uint `json:"courseId" gorm:"not null"`
}
