package person

import "time"

// Person represents a researcher: publication author, thesis author, or
// thesis advisor. FullName is maintained upstream and is the value emitted
// into harvested metadata creator fields.
type Person struct {
	ID              int64      `json:"id"`
	FirstName       *string    `json:"first_name,omitempty"`
	FirstSurname    *string    `json:"first_surname,omitempty"`
	SecondSurname   *string    `json:"second_surname,omitempty"`
	FullName        string     `json:"full_name"`
	Biography       *string    `json:"biography,omitempty"`
	Title           *string    `json:"title,omitempty"`
	PersonalWebsite *string    `json:"personal_website,omitempty"`
	Email           *string    `json:"email,omitempty"`
	PhoneNumber     *string    `json:"phone_number,omitempty"`
	IsActive        bool       `json:"is_active"`
	Slug            *string    `json:"slug,omitempty"`
	BirthDate       *time.Time `json:"-"`
}
