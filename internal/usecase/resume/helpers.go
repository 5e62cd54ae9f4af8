package resume

import (
	"fmt"
	"strings"

	"github.com/shettyrawat/anjob-backend/internal/entity"
)

// renderMarkdown flattens the optimized resume into the markdown body the
// document formatters consume.
func renderMarkdown(optimized *entity.OptimizedResume) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", optimized.PersonalInfo.Name)

	contact := make([]string, 0, 4)
	if optimized.PersonalInfo.Email != "" {
		contact = append(contact, optimized.PersonalInfo.Email)
	}
	if optimized.PersonalInfo.Phone != "" {
		contact = append(contact, optimized.PersonalInfo.Phone)
	}
	if optimized.PersonalInfo.Location != "" {
		contact = append(contact, optimized.PersonalInfo.Location)
	}
	contact = append(contact, optimized.PersonalInfo.Links...)
	if len(contact) > 0 {
		fmt.Fprintf(&b, "%s\n\n", strings.Join(contact, " | "))
	}

	if optimized.Summary != "" {
		fmt.Fprintf(&b, "## Summary\n\n%s\n\n", optimized.Summary)
	}

	if len(optimized.Experience) > 0 {
		b.WriteString("## Experience\n\n")
		for _, exp := range optimized.Experience {
			fmt.Fprintf(&b, "### %s, %s", exp.Role, exp.Company)
			if exp.Duration != "" {
				fmt.Fprintf(&b, " (%s)", exp.Duration)
			}
			b.WriteString("\n\n")
			for _, line := range exp.Description {
				fmt.Fprintf(&b, "- %s\n", line)
			}
			b.WriteString("\n")
		}
	}

	if len(optimized.Education) > 0 {
		b.WriteString("## Education\n\n")
		for _, edu := range optimized.Education {
			fmt.Fprintf(&b, "- %s, %s", edu.Degree, edu.Institution)
			if edu.Duration != "" {
				fmt.Fprintf(&b, " (%s)", edu.Duration)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(optimized.Skills) > 0 {
		fmt.Fprintf(&b, "## Skills\n\n%s\n", strings.Join(optimized.Skills, ", "))
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}
