package schema

// PersonsPersonTable represents the 'persons_person' table
type PersonsPersonTable struct {
	Table           string
	ID              string
	FirstName       string
	FirstSurname    string
	SecondSurname   string
	FullName        string
	Biography       string
	Title           string
	PersonalWebsite string
	Email           string
	PhoneNumber     string
	IsActive        string
	Slug            string
	BirthDate       string
}

// PersonsPerson is the schema definition for persons_person
var PersonsPerson = PersonsPersonTable{
	Table:           "persons_person",
	ID:              "id",
	FirstName:       "first_name",
	FirstSurname:    "first_surname",
	SecondSurname:   "second_surname",
	FullName:        "full_name",
	Biography:       "biography",
	Title:           "title",
	PersonalWebsite: "personal_website",
	Email:           "email",
	PhoneNumber:     "phone_number",
	IsActive:        "is_active",
	Slug:            "slug",
	BirthDate:       "birth_date",
}

func (t PersonsPersonTable) Columns() []string {
	return []string{
		t.ID, t.FirstName, t.FirstSurname, t.SecondSurname, t.FullName,
		t.Biography, t.Title, t.PersonalWebsite, t.Email, t.PhoneNumber,
		t.IsActive, t.Slug, t.BirthDate,
	}
}
