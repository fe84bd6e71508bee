package usecase

import (
	"fmt"
	"strings"
)

// Prompt builders for the single-shot completions. Each asks for HTML
// fragments the frontend drops straight into the page; the model's output is
// stored and rendered without schema validation.

func buildResumeAuditPrompt(targetRole, resumeText string) string {
	var b strings.Builder
	b.WriteString("Role: Expert Resume Strategist.\n")
	fmt.Fprintf(&b, "Task: Audit this resume for the role of %q.\n", targetRole)
	fmt.Fprintf(&b, "Resume Content: %q\n\n", resumeText)
	b.WriteString("OUTPUT HTML ONLY. NO MARKDOWN.\n\n")
	b.WriteString("REQUIREMENTS:\n")
	b.WriteString("1. Summaries: write Short, Medium and Long profile summary versions.\n")
	fmt.Fprintf(&b, "2. Skills: list skills the candidate HAS versus skills MISSING for %q.\n", targetRole)
	b.WriteString("3. Bullets: pick 3 weak bullet points and rewrite them to be result-oriented.\n")
	return b.String()
}

func buildInterviewPrompt(role, company, qType string, count int, resumeText string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Act as a Senior Interviewer at %s.\n", company)
	fmt.Fprintf(&b, "Role: %s.\n", role)
	fmt.Fprintf(&b, "Candidate Resume: %q\n\n", resumeText)
	fmt.Fprintf(&b, "Task: Generate %d %s interview questions.\n", count, qType)
	b.WriteString("For each question provide a one-sentence hint and a concise model answer.\n")
	b.WriteString("OUTPUT HTML ONLY. NO MARKDOWN. One card per question.\n")
	return b.String()
}

func buildCourseGapPrompt(role, resumeText string) string {
	var b strings.Builder
	b.WriteString("Role: Senior Career Architect.\n")
	fmt.Fprintf(&b, "Task: Create a skill-bridge roadmap for a candidate aiming for %q.\n", role)
	fmt.Fprintf(&b, "Candidate Resume: %q\n\n", resumeText)
	b.WriteString("1. Identify 3 critical missing skills.\n")
	b.WriteString("2. For each, recommend one top-tier FREE course with provider and link.\n\n")
	b.WriteString("OUTPUT HTML CARDS ONLY. NO MARKDOWN.\n")
	return b.String()
}

func clipText(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
