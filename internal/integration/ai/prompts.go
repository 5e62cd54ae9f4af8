package ai

import (
	"encoding/json"
	"fmt"

	"github.com/shettyrawat/anjob-backend/internal/entity"
)

// questionCount is the fixed size of a static interview question set.
const questionCount = 5

func questionSetPrompt(role string) string {
	return fmt.Sprintf(`Generate a list of %d most important and common interview questions for a %s position.
The questions should cover technical aspects, problem-solving, and soft skills.
Return the response as a simple JSON array of strings ONLY.
Example: ["Question 1", "Question 2", ...]`, questionCount, role)
}

// transcriptTurn is the reduced transcript form sent to the model: speaker
// and text only, timestamps stripped.
type transcriptTurn struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

func adaptiveStepPrompt(role string, transcript []entity.TranscriptTurn) string {
	turns := make([]transcriptTurn, 0, len(transcript))
	for _, t := range transcript {
		turns = append(turns, transcriptTurn{Speaker: string(t.Speaker), Text: t.Text})
	}
	history, _ := json.Marshal(turns)

	return fmt.Sprintf(`You are an expert technical interviewer for a %s position.
Based on the conversation history below, either:
1. Ask a follow-up question if the last answer was incomplete or interesting.
2. Move to a new technical topic if the last topic is covered.
3. If you've asked around 5-7 questions and feel you have enough info, say "%s".

Current History: %s

Return your response in this JSON format:
{
    "question": "<your next question or '%s'>",
    "thought": "<briefly explain why you chose this question/follow-up>"
}`, role, entity.AdaptiveCompleteSignal, history, entity.AdaptiveCompleteSignal)
}

func evaluationPrompt(question, answer string) string {
	return fmt.Sprintf(`As an expert technical interviewer, evaluate the following answer.
Question: %s
Candidate's Answer: %s

Provide a critical yet constructive analysis in the following JSON format:
{
    "score": <number 1-10>,
    "feedback": "<A detailed summary of why this score was given, mentioning what was good and what was missing>",
    "improvements": ["Actionable tip 1", "Actionable tip 2"],
    "modelAnswer": "<A concise example of how a perfect answer would look>"
}
The feedback should be professional and encouraging.`, question, answer)
}

func resumeScorePrompt(text, role string) string {
	return fmt.Sprintf(`Analyze this resume for ATS compatibility for the role: %s.
Resume Text: %s

Return ONLY a JSON object:
{
    "atsScore": <0-100>,
    "keywordScore": <0-100>,
    "formattingScore": <0-100>,
    "completenessScore": <0-100>,
    "skills": ["Skill1", "Skill2"],
    "suggestions": ["S1", "S2"]
}`, role, text)
}

func optimizedResumePrompt(text, role string) string {
	return fmt.Sprintf(`Rewrite this resume into an ATS-optimized JSON for the role: %q.
Resume Text: %s

JSON Structure:
{
    "personalInfo": {
        "name": "...",
        "email": "...",
        "phone": "...",
        "location": "...",
        "links": ["https://github.com/...", "https://linkedin.com/in/..."]
    },
    "summary": "...",
    "experience": [{
        "role": "...",
        "company": "...",
        "duration": "...",
        "description": ["Accomplishment 1", "Accomplishment 2"]
    }],
    "education": [{ "degree": "...", "institution": "...", "duration": "..." }],
    "skills": ["Skill 1", "Skill 2"]
}
Return ONLY valid JSON. Ensure "links", "description", and "skills" are arrays of simple strings.`, role, text)
}

const chatSystemInstruction = `You are a helpful AI Assistant for an ATS Resume & Job Portal.
Your primary role is to:
1. Assist users with questions about the portal, resumes, and job searching.
2. Provide general assistance on any topic while maintaining a professional and encouraging tone.
3. Be concise and helpful.`
