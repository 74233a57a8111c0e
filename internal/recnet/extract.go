package recnet

import (
	"regexp"
	"strconv"
)

// The user page embeds its state as JSON-ish text whose layout is not stable,
// so each field is looked up on its own. These patterns are intentionally
// loose and will break if the page stops inlining these keys.
var (
	accountIDPattern    = regexp.MustCompile(`"accountId"\s*:\s*(\d+)`)
	usernamePattern     = regexp.MustCompile(`"username"\s*:\s*"([^"]+)"`)
	displayNamePattern  = regexp.MustCompile(`"displayName"\s*:\s*"([^"]+)"`)
	profileImagePattern = regexp.MustCompile(`"profileImage"\s*:\s*"([^"]+)"`)
)

// Extract pulls whatever known account fields it can find out of raw page
// markup. The first occurrence of each key wins. A zero AccountData means
// nothing matched.
func Extract(html string) AccountData {
	var out AccountData

	if m := accountIDPattern.FindStringSubmatch(html); m != nil {
		if id, err := strconv.ParseInt(m[1], 10, 64); err == nil {
			out.AccountID = &id
		}
	}
	out.Username = firstGroup(usernamePattern, html)
	out.DisplayName = firstGroup(displayNamePattern, html)
	out.ProfileImage = firstGroup(profileImagePattern, html)

	return out
}

func firstGroup(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[1]
}
