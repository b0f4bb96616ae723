package model

import "time"

// Student represents a student record. CampusID is nil when the student
// is not assigned to a campus.
type Student struct {
	ID        int       `json:"id"`
	Firstname string    `json:"firstname" validate:"required"`
	Lastname  string    `json:"lastname" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	ImageURL  *string   `json:"imageUrl"`
	GPA       *float64  `json:"gpa" validate:"omitnil,gte=0,lte=4"`
	CampusID  *int      `json:"campusId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StudentWithCampus is a student with its campus eagerly loaded.
type StudentWithCampus struct {
	Student
	Campus *Campus `json:"campus"`
}

// CreateStudentRequest is the payload for creating a student.
type CreateStudentRequest struct {
	Firstname string   `json:"firstname"`
	Lastname  string   `json:"lastname"`
	Email     string   `json:"email"`
	ImageURL  *string  `json:"imageUrl"`
	GPA       *float64 `json:"gpa"`
	CampusID  *int     `json:"campusId"`
}

// UpdateStudentRequest is the payload for updating a student. Nil, empty
// and zero fields leave the stored value unchanged.
type UpdateStudentRequest struct {
	Firstname *string  `json:"firstname"`
	Lastname  *string  `json:"lastname"`
	Email     *string  `json:"email"`
	ImageURL  *string  `json:"imageUrl"`
	GPA       *float64 `json:"gpa"`
	CampusID  *int     `json:"campusId"`
}
