package impl

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/tmc/langchaingo/prompts"
)

//nolint:gochecknoglobals
var (
	moderationPrompt = prompts.NewPromptTemplate(`You are a content moderator for a resume analysis AI.
Your task is to determine if the provided text is a resume. A resume typically includes sections like "Experience", "Education", "Skills", contact information, or a summary. It does not have to contain all of these. Be flexible.
Also, check if the user request (in the job description field) is appropriate. A request is appropriate if it asks for resume feedback OR if it is empty. It is inappropriate only if it asks for unrelated things (e.g., writing a story).

Text to check: """{{.resume}}"""
User request: """{{.job_description}}"""

Respond ONLY with a valid JSON object in the format:
{"is_resume": boolean, "is_appropriate_request": boolean, "reason": "string"}
- "is_resume" is true if the text is likely a resume or CV.
- "is_appropriate_request" is true if the request is for resume feedback OR is empty.
- "reason" is a brief, user-friendly explanation ONLY if a check fails.

DO NOT add anything extra to the response, other than the JSON object!`,
		[]string{"resume", "job_description"},
	)

	feedbackPrompt = prompts.NewPromptTemplate(`You are an expert resume reviewer. Use the following best-practice tips to provide actionable feedback. Format your response in Markdown.

Contextual Tips:
- {{.tips}}

---
Resume:
{{.resume}}{{if .job_description}}

---
Job Description:
{{.job_description}}

Provide the predicted ATS score, insights on how well the resume aligns with this role, and what can be improved.{{end}}`,
		[]string{"resume", "job_description", "tips"},
	)
)

// tipSeparator joins tips into the bulleted context block.
const tipSeparator = "\n- "

func buildModerationPrompt(resume, jobDescription string) (string, error) {
	prompt, err := moderationPrompt.Format(map[string]any{
		"resume":          resume,
		"job_description": jobDescription,
	})

	return prompt, errors.Wrap(err, "failed to render moderation prompt")
}

func buildFeedbackPrompt(resume, jobDescription string, tips []string) (string, error) {
	prompt, err := feedbackPrompt.Format(map[string]any{
		"resume":          resume,
		"job_description": jobDescription,
		"tips":            strings.Join(tips, tipSeparator),
	})

	return prompt, errors.Wrap(err, "failed to render feedback prompt")
}

// jobDescriptionText treats nil and blank descriptions as absent.
func jobDescriptionText(jobDescription *string) string {
	if jobDescription == nil || strings.TrimSpace(*jobDescription) == "" {
		return ""
	}

	return *jobDescription
}
