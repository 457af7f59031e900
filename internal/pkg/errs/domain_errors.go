package errs

// Failure categories shared by every layer. Concrete errors are Mark-ed with
// exactly one of these so the transport can branch on cause.
var (
	ErrInvalidArgument = New("invalid argument")
	ErrConflict        = New("conflict")
	ErrNotFound        = New("not found")
	ErrUnavailable     = New("storage unavailable")

	// never returned to callers; used to tag log records and reconciliation findings
	ErrInconsistency = New("ledger and booking history diverged")
)

// Category reports which outward category err belongs to, or nil when it is
// none of them (an internal error).
func Category(err error) error {
	for _, c := range []error{ErrInvalidArgument, ErrConflict, ErrNotFound, ErrUnavailable} {
		if Is(err, c) {
			return c
		}
	}
	return nil
}
