package analysis

import "fmt"

func summaryPrompt(text string) string {
	return fmt.Sprintf("Summarize the following text in 2-4 clear, simple sentences:\n\n%q", text)
}

func classifyPrompt(text string) string {
	return fmt.Sprintf(`Classify the following text into one of these categories:
- bug report
- complaint
- praise
- question
- feature request
- other

Return ONLY the category and one short sentence explaining why.

Text:
%q`, text)
}

func chatPrompt(text string) string {
	return fmt.Sprintf("You are a friendly AI assistant. Respond conversationally to:\n%q", text)
}
