package services

import (
	"fmt"
	"strings"

	"careero_backend/internal/models"
)

const notProvided = "Not provided"

// generationSystemPrompt frames every generation request.
const generationSystemPrompt = "You are an expert career coach and resume writer. " +
	"Create professional, tailored documents that highlight relevant skills and experiences."

func buildResumePrompt(app *models.Application, profile *models.Profile) string {
	return fmt.Sprintf(`Generate a professional resume for %s targeting a %s role at %s.

Job Description:
%s

Candidate Information:
- Name: %s
- Email: %s
- Phone: %s
- Skills: %s
- Experience: %s
- Education: %s

Create a professional resume with these sections:
1. Contact Information
2. Professional Summary (2-3 sentences)
3. Skills (relevant to the job)
4. Work Experience (if available)
5. Education (if available)

Format in clean, professional text. Focus on relevant skills and experiences that match the job description.`,
		profile.Name, app.Position, app.Company,
		app.JobDescription,
		profile.Name,
		profile.Email,
		orNotProvided(profile.Phone),
		formatSkills(profile),
		formatExperienceFull(profile),
		formatEducationFull(profile),
	)
}

func buildCoverLetterPrompt(app *models.Application, profile *models.Profile) string {
	return fmt.Sprintf(`Write a professional cover letter for %s applying for %s at %s.

Job Description:
%s

Candidate Information:
- Name: %s
- Email: %s
- Skills: %s
- Experience: %s
- Education: %s

Write a compelling cover letter that:
1. Introduces the candidate professionally
2. Explains why they're interested in the position and company
3. Highlights relevant skills and experiences that match the job requirements
4. Shows enthusiasm and cultural fit
5. Concludes with a call to action

Keep it under 400 words with a professional, engaging tone.`,
		profile.Name, app.Position, app.Company,
		app.JobDescription,
		profile.Name,
		profile.Email,
		formatSkills(profile),
		formatExperienceShort(profile),
		formatEducationShort(profile),
	)
}

func orNotProvided(s string) string {
	if s == "" {
		return notProvided
	}
	return s
}

func formatSkills(profile *models.Profile) string {
	skills := profile.GetSkills()
	if len(skills) == 0 {
		return notProvided
	}
	return strings.Join(skills, ", ")
}

func formatExperienceFull(profile *models.Profile) string {
	entries := profile.GetExperience()
	if len(entries) == 0 {
		return notProvided
	}
	lines := make([]string, 0, len(entries))
	for _, exp := range entries {
		end := exp.EndDate
		if end == "" {
			end = "Present"
		}
		lines = append(lines, fmt.Sprintf("%s at %s (%s - %s): %s", exp.Title, exp.Company, exp.StartDate, end, exp.Description))
	}
	return strings.Join(lines, "\n")
}

func formatExperienceShort(profile *models.Profile) string {
	entries := profile.GetExperience()
	if len(entries) == 0 {
		return notProvided
	}
	lines := make([]string, 0, len(entries))
	for _, exp := range entries {
		lines = append(lines, fmt.Sprintf("%s at %s: %s", exp.Title, exp.Company, exp.Description))
	}
	return strings.Join(lines, "\n")
}

func formatEducationFull(profile *models.Profile) string {
	entries := profile.GetEducation()
	if len(entries) == 0 {
		return notProvided
	}
	lines := make([]string, 0, len(entries))
	for _, edu := range entries {
		lines = append(lines, fmt.Sprintf("%s from %s (%s)", edu.Degree, edu.Institution, edu.GraduationDate))
	}
	return strings.Join(lines, "\n")
}

func formatEducationShort(profile *models.Profile) string {
	entries := profile.GetEducation()
	if len(entries) == 0 {
		return notProvided
	}
	lines := make([]string, 0, len(entries))
	for _, edu := range entries {
		lines = append(lines, fmt.Sprintf("%s from %s", edu.Degree, edu.Institution))
	}
	return strings.Join(lines, "\n")
}
