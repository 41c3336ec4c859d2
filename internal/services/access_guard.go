package services

// AccessDecision is the verdict for a single plan request. The guard is a
// pure function; the HTTP layer enforces the result.
type AccessDecision int

const (
	ProceedAnonymous AccessDecision = iota
	ProceedAuthenticated
	RejectUnauthorized
)

// DecideAccess requires authentication only when the caller asks to persist
// the generated trip. Anonymous planning is always allowed.
func DecideAccess(saveTrip bool, authenticated bool) AccessDecision {
	if saveTrip && !authenticated {
		return RejectUnauthorized
	}
	if authenticated {
		return ProceedAuthenticated
	}
	return ProceedAnonymous
}
