package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	DateTimeFormat = "2006-01-02T15:04:05.000000"

	FormatMarkdown = "markdown"
)
