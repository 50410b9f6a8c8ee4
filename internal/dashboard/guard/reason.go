package guard

// Reason classifies why access was refused. Every reason leads to the
// same recovery — clear session, erase credential, redirect to login —
// and differs only in the message shown to the operator.
type Reason int

const (
	// NoCredential: nothing persisted, the operator never logged in or
	// already logged out.
	NoCredential Reason = iota
	// SessionExpired: the API answered identity resolution with 401.
	SessionExpired
	// InvalidSession: the API answered 403, or returned a success
	// payload without the expected shape.
	InvalidSession
	// InsufficientRole: authenticated, but the role is not in the
	// route's allowed set.
	InsufficientRole
	// UnknownFailure: network error or an unexpected status.
	UnknownFailure
)

// Message is the operator-facing notification for this reason.
func (r Reason) Message() string {
	switch r {
	case InsufficientRole:
		return "Access denied: Insufficient permissions for this page"
	case SessionExpired:
		return "Session expired. Please log in again"
	case InvalidSession:
		return "Invalid session. Please log in again"
	default:
		return "Authentication required. Please log in"
	}
}

func (r Reason) String() string {
	switch r {
	case NoCredential:
		return "no_credential"
	case SessionExpired:
		return "session_expired"
	case InvalidSession:
		return "invalid_session"
	case InsufficientRole:
		return "insufficient_role"
	default:
		return "unknown_failure"
	}
}
