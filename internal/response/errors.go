package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation            ErrCode = "VALIDATION_ERROR"
	ErrInvalidID             ErrCode = "INVALID_ID"
	ErrInvalidPayload        ErrCode = "INVALID_PAYLOAD"
	ErrCampusFieldsRequired  ErrCode = "CAMPUS_FIELDS_REQUIRED"
	ErrStudentFieldsRequired ErrCode = "STUDENT_FIELDS_REQUIRED"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound        ErrCode = "NOT_FOUND"
	ErrCampusNotFound  ErrCode = "CAMPUS_NOT_FOUND"
	ErrStudentNotFound ErrCode = "STUDENT_NOT_FOUND"

	// ─── Backend ───────────────────────────────────────────────────────
	ErrCampusCreateFailed  ErrCode = "CAMPUS_CREATE_FAILED"
	ErrCampusUpdateFailed  ErrCode = "CAMPUS_UPDATE_FAILED"
	ErrCampusDeleteFailed  ErrCode = "CAMPUS_DELETE_FAILED"
	ErrStudentUpdateFailed ErrCode = "STUDENT_UPDATE_FAILED"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Validation failed"
	case ErrInvalidID:
		return "Invalid ID"
	case ErrInvalidPayload:
		return "Invalid request payload"
	case ErrCampusFieldsRequired:
		return "Name and address are required"
	case ErrStudentFieldsRequired:
		return "First name, last name, and email are required"

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "Not found"
	case ErrCampusNotFound:
		return "Campus not found"
	case ErrStudentNotFound:
		return "Student not found"

	// ─── Backend ───────────────────────────────────────────────────────
	case ErrCampusCreateFailed:
		return "Failed to create campus"
	case ErrCampusUpdateFailed:
		return "Failed to update campus"
	case ErrCampusDeleteFailed:
		return "Failed to delete campus"
	case ErrStudentUpdateFailed:
		return "Failed to update student"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Too many requests"

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "Internal server error"
	default:
		return "Unexpected error"
	}
}
