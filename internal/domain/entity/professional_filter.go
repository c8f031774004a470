package entity

// ProfessionalFilter is a domain-level filter for querying professionals.
// Used by repository layer to avoid coupling with delivery DTOs.
type ProfessionalFilter struct {
	Profession string // Filter by profession label (ILIKE)
	Specialty  string // Filter by specialty tag
	MinRating  float64
}
