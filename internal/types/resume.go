// Package types provides type definitions for structured data used throughout the resume structuring engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "math"

// Format identifies which parsing path produced a StructuredResume
type Format string

const (
	// FormatFreeForm marks output of the header-driven heuristic path
	FormatFreeForm Format = "free_form"
	// FormatFormalForm marks output of the government form adapter
	FormatFormalForm Format = "formal_form"
)

// Ongoing is the canonical end date of a job still held
const Ongoing = "ongoing"

// EmploymentRecord is one reconstructed job.
// Empty strings mean the field was not detected.
type EmploymentRecord struct {
	Company          string   `json:"company,omitempty"`
	Title            string   `json:"title,omitempty"`
	Start            string   `json:"start,omitempty"`
	End              string   `json:"end,omitempty"`
	DurationMonths   *int     `json:"duration_months,omitempty"`
	Responsibilities []string `json:"responsibilities"`
}

// HasIdentity reports whether the record carries a company or a title.
// Records without either are never surfaced.
func (r *EmploymentRecord) HasIdentity() bool {
	return r.Company != "" || r.Title != ""
}

// EducationEntry represents one degree, diploma or course of study
type EducationEntry struct {
	Title       string `json:"title,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
	Modality    string `json:"modality,omitempty"` // formal form only
}

// IsEmpty reports whether no field of the entry was filled
func (e *EducationEntry) IsEmpty() bool {
	return e.Title == "" && e.Institution == "" && e.Year == "" && e.Modality == ""
}

// Contact holds contact data found anywhere in the raw text
type Contact struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"` // digits only
}

// SkillSet holds skills matched against the fixed vocabularies
type SkillSet struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
}

// StructuredResume is the normalized record produced for one document
type StructuredResume struct {
	Format               Format             `json:"format"`
	Contact              Contact            `json:"contact"`
	ProfileSummary       string             `json:"profile_summary"`
	Experience           []EmploymentRecord `json:"experience"`
	Education            []EducationEntry   `json:"education"`
	Skills               []string           `json:"skills"`
	DetectedSkills       SkillSet           `json:"detected_skills"`
	Courses              []string           `json:"courses"`
	References           string             `json:"references"`
	TotalExperienceYears float64            `json:"total_experience_years"`
	EmploymentCount      int                `json:"employment_count"`
}

// NewStructuredResume returns an empty resume with every list initialized,
// so that it serializes with [] instead of null.
func NewStructuredResume(format Format) *StructuredResume {
	return &StructuredResume{
		Format:     format,
		Experience: []EmploymentRecord{},
		Education:  []EducationEntry{},
		Skills:     []string{},
		DetectedSkills: SkillSet{
			Technical: []string{},
			Soft:      []string{},
		},
		Courses: []string{},
	}
}

// ComputeTotals refreshes EmploymentCount and TotalExperienceYears from Experience.
// Records without a duration contribute nothing.
func (r *StructuredResume) ComputeTotals() {
	r.EmploymentCount = len(r.Experience)
	r.TotalExperienceYears = TotalYears(r.Experience)
}

// TotalYears sums every known duration and converts it to years rounded to one decimal
func TotalYears(records []EmploymentRecord) float64 {
	months := 0
	for _, rec := range records {
		if rec.DurationMonths != nil {
			months += *rec.DurationMonths
		}
	}
	return math.Round(float64(months)/12*10) / 10
}
