package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Content Types
	ContentTypeJSON = "application/json"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableSlots            = "slots"
	TableTemplates        = "templates"
	TableTemplateSlots    = "template_slots"
	TablePlans            = "plans"
	TablePlanCelebrations = "plan_celebrations"
	TablePlanSlots        = "plan_slots"
	TableAssignments      = "plan_slot_assignments"
	TableFlags            = "flags"
	TableAssignmentFlags  = "assignment_flags"
	TableAssignmentScopes = "assignment_scopes"
	TableMusic            = "music"
	TableCelebrations     = "celebrations"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgConflict            = "Resource already exists"
)
