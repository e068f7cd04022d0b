package usecase

const (
	interpretToolName = "interpret_user_request"

	purposeInterpret = "interpret"
	purposeNarrate   = "narrate"

	replyReportReady = "Report generated successfully. You can download it using the button below."
	noResults        = "No results found."
	dataSummary      = "Here are the data you need to answer the user's previous question. " +
		"Create a natural language response based on the data, question, and context:\n"
)

// interpretToolParameters is the JSON schema of the single function the
// interpreter is forced to call.
var interpretToolParameters = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"action": map[string]any{
			"type":        "string",
			"enum":        []string{"query_data", "generate_report", "instruct_user", "conversation"},
			"description": "The action to perform.",
		},
		"sql_query": map[string]any{
			"type":        "string",
			"description": "The SQL query to execute for 'query_data' or 'generate_report' actions.",
		},
		"report_type": map[string]any{
			"type":        "string",
			"enum":        []string{"pdf", "excel"},
			"description": "The report format, required when action is 'generate_report'. Defaults to 'excel'.",
		},
		"message": map[string]any{
			"type":        "string",
			"description": "Assistant's message for 'instruct_user' or 'conversation' actions.",
		},
	},
	"required": []string{"action"},
}

const interpretToolDescription = "Interprets the user's request and generates the appropriate action and SQL query if needed."
