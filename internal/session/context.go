package session

import (
	"strings"
	"unicode"

	"github.com/jonathan/cert-publisher/internal/orgconfig"
)

// GenericGreeting is shown when no first name was supplied.
const GenericGreeting = "Félicitations !"

// Context bundles the validated parameters with the resolved organization.
// It is constructed once per session and passed by value; nothing mutates
// it afterwards.
type Context struct {
	OrgID  string
	Org    orgconfig.Organization
	Params Params
}

// NewContext builds the immutable session context.
func NewContext(orgID string, org orgconfig.Organization, params Params) Context {
	return Context{OrgID: orgID, Org: org, Params: params}
}

// DisplayName normalizes a first name for display: first rune upper-cased,
// remainder lower-cased. Empty input stays empty.
func DisplayName(firstName string) string {
	firstName = strings.TrimSpace(firstName)
	if firstName == "" {
		return ""
	}
	runes := []rune(strings.ToLower(firstName))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Greeting returns the personalized greeting for the session, falling back
// to the generic one when no first name is present.
func (c Context) Greeting() string {
	name := DisplayName(c.Params.FirstName)
	if name == "" {
		return GenericGreeting
	}
	return "Félicitations " + name + " !"
}
