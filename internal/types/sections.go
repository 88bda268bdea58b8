package types

// Section is one of the fixed regions a free-form document is split into
type Section string

const (
	SectionProfile    Section = "profile"
	SectionExperience Section = "experience"
	SectionEducation  Section = "education"
	SectionSkills     Section = "skills"
	SectionCourses    Section = "courses"
	SectionReferences Section = "references"
)

// AllSections lists every section key in output order
var AllSections = []Section{
	SectionProfile,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionCourses,
	SectionReferences,
}

// SectionMap maps every section key to its raw text.
// Maps built with NewSectionMap always hold all keys.
type SectionMap map[Section]string

// NewSectionMap returns a SectionMap with every key present and empty
func NewSectionMap() SectionMap {
	m := make(SectionMap, len(AllSections))
	for _, s := range AllSections {
		m[s] = ""
	}
	return m
}

// Get returns the text of a section, or "" for a missing key
func (m SectionMap) Get(s Section) string {
	if m == nil {
		return ""
	}
	return m[s]
}
