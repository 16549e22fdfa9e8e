package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// ExperienceEntry is one position in the profile's work history.
// Order is preserved as supplied by the user.
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

type EducationEntry struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	GraduationDate string `json:"graduationDate"`
}

type Profile struct {
	BaseModel
	UserID     string         `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	Name       string         `gorm:"not null" json:"name"`
	Email      string         `gorm:"not null" json:"email"`
	Phone      string         `json:"phone"`
	Skills     datatypes.JSON `gorm:"type:jsonb" json:"skills"`     // ["Go", "SQL", ...]
	Experience datatypes.JSON `gorm:"type:jsonb" json:"experience"` // []ExperienceEntry
	Education  datatypes.JSON `gorm:"type:jsonb" json:"education"`  // []EducationEntry
}

// GetSkills returns the skills list decoded from JSONB.
func (p *Profile) GetSkills() []string {
	var skills []string
	if len(p.Skills) > 0 {
		_ = json.Unmarshal(p.Skills, &skills)
	}
	return skills
}

// SetSkills stores the list as JSONB. A nil slice is stored as [] so
// omitted and empty lists serialize the same way.
func (p *Profile) SetSkills(skills []string) {
	if skills == nil {
		skills = []string{}
	}
	data, _ := json.Marshal(skills)
	p.Skills = datatypes.JSON(data)
}

// GetExperience returns the work history decoded from JSONB.
func (p *Profile) GetExperience() []ExperienceEntry {
	var entries []ExperienceEntry
	if len(p.Experience) > 0 {
		_ = json.Unmarshal(p.Experience, &entries)
	}
	return entries
}

func (p *Profile) SetExperience(entries []ExperienceEntry) {
	if entries == nil {
		entries = []ExperienceEntry{}
	}
	data, _ := json.Marshal(entries)
	p.Experience = datatypes.JSON(data)
}

// GetEducation returns the education list decoded from JSONB.
func (p *Profile) GetEducation() []EducationEntry {
	var entries []EducationEntry
	if len(p.Education) > 0 {
		_ = json.Unmarshal(p.Education, &entries)
	}
	return entries
}

func (p *Profile) SetEducation(entries []EducationEntry) {
	if entries == nil {
		entries = []EducationEntry{}
	}
	data, _ := json.Marshal(entries)
	p.Education = datatypes.JSON(data)
}
