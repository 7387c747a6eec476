package services

import (
	"fmt"
	"strings"
)

// Prompt wording is a collaborator concern: the parser downstream never
// assumes the model honored any of these instructions.

func buildInsightPrompt(input ProfileInput) string {
	return fmt.Sprintf(`Return ONLY a valid JSON object. No intro, no backticks.
Format: {
  "industryTrends": ["trend1", "trend2"],
  "inDemandSkills": ["skill1", "skill2"],
  "skillGapAnalysis": { "matchedSkills": [], "missingSkills": [] },
  "actionableFeedback": "detailed roadmap..."
}
Context: Industry: %s, Target: %s, Current skills: %s`,
		input.Industry, input.DesiredRole, strings.Join(input.Skills, ", "))
}

func buildResumeSummaryPrompt(industry, skills string) string {
	return fmt.Sprintf(`You are an expert career coach and resume writer. Generate a concise and impactful professional summary for a resume. The candidate is in the %s industry and has the following skills: %s. The summary should be 3-4 sentences long and optimized for Applicant Tracking Systems (ATS).`,
		industry, skills)
}

func buildResumeBulletsPrompt(accomplishment, skills string) string {
	return fmt.Sprintf(`You are an expert resume writer specializing in creating impactful, metric-driven bullet points for work experience sections.
Your task is to rewrite the following user-provided accomplishment into three distinct, powerful, and ATS-optimized bullet points.
Each bullet point should start with a strong action verb and, where possible, quantify the results.

**User's Accomplishment:** "%s"
**Relevant Skills:** "%s"

Generate three variations of the bullet point. Return the response as a single string, with each bullet point starting with a '*' and separated by a newline.`,
		accomplishment, skills)
}

func buildCoverLetterPrompt(jobDescription, userSkills, companyName string) string {
	return fmt.Sprintf(`You are a world-class professional career coach. Your task is to write a compelling and tailored cover letter for a job applicant.
**Instructions:**
1.  Analyze the provided Job Description to understand the key requirements, responsibilities, and desired qualifications.
2.  Use the applicant's skills to highlight how they are a perfect match for the role.
3.  The tone should be professional, confident, and enthusiastic.
4.  Structure the letter with a clear introduction, body, and conclusion. Do not include placeholder names or addresses like "[Your Name]". Start directly with "Dear Hiring Manager,".
5.  Keep the entire cover letter concise, ideally around 3-4 paragraphs.
**Job Details:**
- **Company Name:** %s
- **Job Description:** "%s"
**Applicant's Key Skills:**
- %s
Now, write the cover letter.`,
		companyName, jobDescription, userSkills)
}

func buildRoadmapPrompt(desiredRole string, missingSkills []string) string {
	return fmt.Sprintf(`Task: Generate a professional learning roadmap for a %s.
Target Skills to bridge: %s.

Return a JSON array of Milestones.
Each Milestone MUST follow this schema exactly:
{
  "id": "string (lowercase-slug-of-skill)",
  "label": "string (readable skill name)",
  "difficulty": "Beginner | Intermediate | Advanced",
  "resources": [{"title": "string", "url": "url_string"}],
  "subtasks": ["string (concept 1)", "string (concept 2)"]
}

Rules:
1. Use real documentation URLs (MDN, Official Docs, or reputable blogs) and popular articles or youtube videos.
2. Provide at least 5 milestones.
3. Return ONLY valid JSON. No conversational text.`,
		desiredRole, strings.Join(missingSkills, ", "))
}
