package scan

import "strings"

// VisionPrompt is the fixed instruction sent with every page photo. The
// model must answer with exactly one JSON object in the schema below;
// ExtractScan tolerates fences and prose around it anyway.
func VisionPrompt() string {
	var b strings.Builder
	b.WriteString("You are reading a photographed textbook page of multiple-choice questions.\n")
	b.WriteString("Transcribe every question you can see. Question formats you may encounter:\n\n")
	b.WriteString("1. Plain: a question followed by four options.\n")
	b.WriteString("2. Statement-lettered: numbered statements labeled P, Q, R, S with options like \"P and Q\".\n")
	b.WriteString("3. Match-the-pairs: two columns matched as \"1-ii, 2-iii\"; keep the pairing text verbatim in the options.\n")
	b.WriteString("4. Diagram-based: describe the referenced figure briefly inside the question text.\n\n")
	b.WriteString("Rules:\n")
	b.WriteString("- Keep question numbering labels exactly as printed (e.g. \"22.\", \"Q1.\").\n")
	b.WriteString("- Always emit exactly 4 options; use \"\" for options you cannot read.\n")
	b.WriteString("- correctAnswer is the printed answer key letter (A-D) when visible, else \"\".\n")
	b.WriteString("- If a page number is printed, set pageNo to it, else \"\".\n\n")
	b.WriteString("Respond with exactly one JSON object, no commentary:\n")
	b.WriteString(`{
  "pageNo": "string",
  "questions": [
    {
      "no": "string",
      "question": "string",
      "options": ["string", "string", "string", "string"],
      "correctAnswer": "string",
      "explanation": "string"
    }
  ]
}`)
	return b.String()
}
