package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Build Errors (E100-E109)
	// ============================================

	"E101": {
		Category: CategoryBuild,
		Message:  "Parent element not found",
		Detail:   "The parent key names an element id that does not resolve to a live element in the document.",
		DocURL:   "https://domkit.dev/docs/errors/E101",
	},
	"E102": {
		Category: CategoryBuild,
		Message:  "Ancestor of requested type not found",
		Detail:   "The ancestor chain reached the root without an element of the requested type.",
		DocURL:   "https://domkit.dev/docs/errors/E102",
	},
	"E103": {
		Category: CategoryBuild,
		Message:  "Conflicting table data sources",
		Detail:   "Both tableData and df were supplied while strict table data is enabled.",
		DocURL:   "https://domkit.dev/docs/errors/E103",
	},
	"E104": {
		Category: CategoryBuild,
		Message:  "Invalid table data",
		Detail:   "The table data payload does not have the expected shape.",
		DocURL:   "https://domkit.dev/docs/errors/E104",
	},
	"E105": {
		Category: CategoryBuild,
		Message:  "Invalid parent element",
		Detail:   "The parent key names the element being built or one of its descendants.",
		DocURL:   "https://domkit.dev/docs/errors/E105",
	},

	// ============================================
	// Spec Errors (E110-E119)
	// ============================================

	"E110": {
		Category: CategorySpec,
		Message:  "Invalid spec file",
		Detail:   "The spec file is not valid YAML or JSON.",
		DocURL:   "https://domkit.dev/docs/errors/E110",
	},
	"E111": {
		Category: CategorySpec,
		Message:  "Unknown event handler",
		Detail:   "An events entry names a handler that is not registered.",
		DocURL:   "https://domkit.dev/docs/errors/E111",
	},
	"E112": {
		Category: CategorySpec,
		Message:  "Invalid spec value",
		Detail:   "A spec key holds a value of the wrong shape.",
		DocURL:   "https://domkit.dev/docs/errors/E112",
	},

	// ============================================
	// Configuration Errors (E120-E129)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid domkit.json",
		Detail:   "The domkit.json configuration file is malformed.",
		DocURL:   "https://domkit.dev/docs/errors/E120",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "Configuration not found",
		Detail:   "No domkit.json was found in the project directory.",
		DocURL:   "https://domkit.dev/docs/errors/E121",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid port number",
		Detail:   "The configured port number is invalid.",
		DocURL:   "https://domkit.dev/docs/errors/E122",
	},
	"E123": {
		Category: CategoryConfig,
		Message:  "Invalid log level",
		Detail:   "The log level must be one of debug, info, warn or error.",
		DocURL:   "https://domkit.dev/docs/errors/E123",
	},

	// ============================================
	// Publish and Server Errors (E130-E149)
	// ============================================

	"E130": {
		Category: CategoryPublish,
		Message:  "Publish failed",
		Detail:   "Uploading the rendered page to object storage failed.",
		DocURL:   "https://domkit.dev/docs/errors/E130",
	},
	"E131": {
		Category: CategoryPublish,
		Message:  "Missing publish bucket",
		Detail:   "No bucket is configured for publishing.",
		DocURL:   "https://domkit.dev/docs/errors/E131",
	},
	"E140": {
		Category: CategoryServer,
		Message:  "Spec not found",
		Detail:   "No spec file with this name exists in the spec directory.",
		DocURL:   "https://domkit.dev/docs/errors/E140",
	},
}

// GetAllCodes returns all registered error codes in ascending order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
