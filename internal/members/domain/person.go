package domain

import "time"

// Person holds the human profile data behind a user account. Email is
// unique; everything past it is optional demographic detail.
type Person struct {
	ID          string
	Firstname   string
	Lastname    string
	Email       string
	Phone       *string
	Gender      *string
	CivilStatus *string
	Birthday    *time.Time
	Address     *string
	PlaceOfWork *string
	AgeGroup    *string
	Country     *string
	District    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
