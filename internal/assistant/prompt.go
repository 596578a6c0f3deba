package assistant

import (
	"fmt"
	"strings"

	"PortfolioSite/internal/models"
)

var assistantRules = []string{
	"Answer questions about the portfolio owner's background, skills, and projects",
	"Help visitors understand their experience and capabilities",
	"Provide information about their education and work",
	"Be friendly, professional, and helpful",
	"If asked about something not in the portfolio, politely say you don't have that information",
}

// BuildSystemPrompt renders the portfolio context given to the model.
// Without a profile there is no context at all.
func BuildSystemPrompt(profile *models.Profile) string {
	if profile == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are an AI assistant for %s's portfolio website.\n\n", profile.Name)
	fmt.Fprintf(&b, "Name: %s\nRole: %s\nSummary: %s\nEmail: %s\n", profile.Name, profile.Role, profile.Summary, profile.Email)

	if len(profile.Education) > 0 {
		b.WriteString("\nEducation:\n")
		for _, edu := range profile.Education {
			fmt.Fprintf(&b, "- %s from %s (%s)", edu.Degree, edu.Institution, edu.Year)
			if edu.GPA != "" {
				fmt.Fprintf(&b, ", GPA: %s", edu.GPA)
			}
			b.WriteString("\n")
		}
	}

	if len(profile.Skills) > 0 {
		b.WriteString("\nSkills:\n")
		for _, skill := range profile.Skills {
			fmt.Fprintf(&b, "- %s: %s\n", skill.Name, skill.Description)
		}
	}

	if len(profile.Projects) > 0 {
		b.WriteString("\nProjects:\n")
		for _, project := range profile.Projects {
			fmt.Fprintf(&b, "- %s: %s\n", project.Title, project.Description)
			fmt.Fprintf(&b, "  Technologies: %s\n", project.Technologies)
		}
	}

	b.WriteString("\nYour role is to:\n")
	for i, rule := range assistantRules {
		fmt.Fprintf(&b, "%d. %s\n", i+1, rule)
	}
	b.WriteString("\nPlease provide concise, helpful responses.")
	return b.String()
}
