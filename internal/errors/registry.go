package errors

// Well-known error codes.
const (
	CodeInvalidArgument = "E101"
	CodeParseFailed     = "E201"
	CodeConfigNotFound  = "E301"
	CodeConfigInvalid   = "E302"
	CodeRenderFailed    = "E401"
)

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Validation errors (E1xx)

	CodeInvalidArgument: {
		Category: CategoryValidation,
		Message:  "Invalid argument",
		Detail:   "An argument did not satisfy the function's contract.",
	},

	// Parse errors (E2xx)

	CodeParseFailed: {
		Category: CategoryParse,
		Message:  "Markup could not be parsed",
		Detail:   "The input could not be read as an HTML document.",
	},

	// Config errors (E3xx)

	CodeConfigNotFound: {
		Category: CategoryConfig,
		Message:  "No domkit.json found",
		Detail:   "Searched the working directory and its parents for domkit.json.",
	},
	CodeConfigInvalid: {
		Category: CategoryConfig,
		Message:  "domkit.json is invalid",
		Detail:   "The configuration file exists but could not be decoded.",
	},

	// CLI errors (E4xx)

	CodeRenderFailed: {
		Category: CategoryCLI,
		Message:  "Rendering failed",
		Detail:   "The node tree could not be serialized to HTML.",
	},
}
