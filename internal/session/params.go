// Package session derives and validates the per-request certificate
// session: query parameters, required-field validation and the immutable
// context handed to every downstream component.
package session

import "net/url"

// Params holds the identifying fields of one certificate session, derived
// once from the page's query parameters and immutable afterwards.
//
// The organization id travels in its own query parameter ("org") and is
// resolved separately; it is deliberately not part of Params.
type Params struct {
	PDFURL        string `json:"pdfUrl" validate:"required"`
	FormationName string `json:"formationName" validate:"required"`
	CertID        string `json:"certId" validate:"required"`
	FirstName     string `json:"firstName,omitempty"`
	IssueMonth    string `json:"issueMonth,omitempty"`
	IssueYear     string `json:"issueYear,omitempty"`
}

// ParamsFromQuery extracts session parameters from decoded query values.
func ParamsFromQuery(q url.Values) Params {
	return Params{
		PDFURL:        q.Get("pdf"),
		FormationName: q.Get("formation"),
		CertID:        q.Get("certId"),
		FirstName:     q.Get("prenom"),
		IssueMonth:    q.Get("mois"),
		IssueYear:     q.Get("annee"),
	}
}

// OrgIDFromQuery extracts the organization id selector.
func OrgIDFromQuery(q url.Values) string {
	return q.Get("org")
}
