package recnet

// Kind identifies which variant a Result holds
type Kind int

const (
	// KindResolved means at least one source produced usable data
	KindResolved Kind = iota
	// KindNotFound means neither source produced data and the primary was not blocked
	KindNotFound
	// KindAccessDenied means neither source produced data and the primary answered 401/403/404
	KindAccessDenied
	// KindTransientError means a transport or decoding failure interrupted resolution
	KindTransientError
)

// String returns the metric/log label for the kind
func (k Kind) String() string {
	switch k {
	case KindResolved:
		return "resolved"
	case KindNotFound:
		return "not_found"
	case KindAccessDenied:
		return "access_denied"
	case KindTransientError:
		return "transient_error"
	default:
		return "unknown"
	}
}

// ProfileData is the record returned by the players profile API.
// Every field is optional; display code applies its own defaults.
type ProfileData struct {
	Level        *int   `json:"level,omitempty"`
	Platform     string `json:"platform,omitempty"`
	IsOnline     bool   `json:"isOnline,omitempty"`
	LastOnlineAt string `json:"lastOnlineAt,omitempty"`
}

// AccountData holds the fields scraped from the public user page.
// An empty string or nil AccountID means the field was not found.
type AccountData struct {
	AccountID    *int64 `json:"accountId,omitempty"`
	Username     string `json:"username,omitempty"`
	DisplayName  string `json:"displayName,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// Empty reports whether extraction found nothing at all
func (a AccountData) Empty() bool {
	return a.AccountID == nil && a.Username == "" && a.DisplayName == "" && a.ProfileImage == ""
}

// Result is the outcome of a single resolution. Exactly one Kind holds.
type Result struct {
	Kind    Kind         `json:"kind"`
	Account *AccountData `json:"account,omitempty"`
	Profile *ProfileData `json:"profile,omitempty"`
	Reason  string       `json:"reason,omitempty"`
}

// FromProfile builds a Resolved result backed by primary API data
func FromProfile(p ProfileData) Result {
	return Result{Kind: KindResolved, Profile: &p}
}

// FromAccount builds a Resolved result backed by scraped page data
func FromAccount(a AccountData) Result {
	return Result{Kind: KindResolved, Account: &a}
}

// NotFound builds a NotFound result
func NotFound() Result {
	return Result{Kind: KindNotFound}
}

// AccessDenied builds an AccessDenied result
func AccessDenied() Result {
	return Result{Kind: KindAccessDenied}
}

// Transient converts an unexpected failure into a TransientError result.
// Callers use it once, at the boundary that handles the user's request.
func Transient(err error) Result {
	reason := "unknown error"
	if err != nil {
		reason = err.Error()
	}
	return Result{Kind: KindTransientError, Reason: reason}
}
