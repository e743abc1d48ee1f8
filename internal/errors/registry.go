package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Config Errors (E120-E129)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Config not found",
		Detail:   "No djed.json or djed.yaml was found at the given location.",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "Config parse failed",
		Detail:   "The configuration file is not valid JSON or YAML.",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid config value",
		Detail:   "A configuration value is outside its allowed range.",
	},

	// ============================================
	// CLI Errors (E140-E149)
	// ============================================

	"E140": {
		Category: CategoryCLI,
		Message:  "Unknown demo",
		Detail:   "The requested demo application does not exist.",
	},
	"E141": {
		Category: CategoryCLI,
		Message:  "Server failed",
		Detail:   "The preview server stopped with an error.",
	},

	// ============================================
	// Runtime Errors (E200-E219)
	// ============================================

	"E201": {
		Category: CategoryRuntime,
		Message:  "VTag is not rendered",
		Detail:   "A tag was detached or addressed before it was ever applied to the live tree.",
	},
	"E202": {
		Category: CategoryRuntime,
		Message:  "VText is not rendered",
		Detail:   "A text node was detached or reused before it was ever applied to the live tree.",
	},
	"E203": {
		Category: CategoryRuntime,
		Message:  "Component has already been mounted",
		Detail:   "A virtual component can be applied once. Build a new virtual node for every render.",
	},
	"E204": {
		Category: CategoryRuntime,
		Message:  "Component is not mounted",
		Detail:   "A virtual component was reused or detached without a live instance.",
	},
	"E205": {
		Category: CategoryRuntime,
		Message:  "Mounted components cannot be cloned",
		Detail:   "Cloning is only legal while a virtual component still carries its properties.",
	},
	"E206": {
		Category: CategoryRuntime,
		Message:  "Missing element reference",
		Detail:   "A tag was patched without a live element.",
	},
	"E207": {
		Category: CategoryRuntime,
		Message:  "Node reference is unresolved",
		Detail:   "The first live node of a virtual node was requested but its reference resolves to nothing.",
	},
	"E208": {
		Category: CategoryRuntime,
		Message:  "Scope has no scheduler",
		Detail:   "Components must be mounted inside a scope created by an App.",
	},
	"E209": {
		Category: CategoryRuntime,
		Message:  "Element creation failed",
		Detail:   "The document refused to create an element. Tag names must be non-empty and free of whitespace, quotes, '/', '>' and '='.",
	},

	// ============================================
	// Host Errors (E220-E229)
	// ============================================

	"E220": {
		Category: CategoryHost,
		Message:  "Host mutation failed",
		Detail:   "The live tree rejected a mutation. The mutation was skipped.",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
