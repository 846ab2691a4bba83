// Package share builds the outbound LinkedIn links for a certificate: the
// add-to-profile link, the share-a-post link and the default share message.
// All functions are pure; identical inputs always produce identical URLs.
package share

import (
	"fmt"
	"net/url"
)

const (
	profileAddBase = "https://www.linkedin.com/profile/add"
	feedBase       = "https://www.linkedin.com/feed/"

	// startTaskMarker is the fixed task-type marker LinkedIn expects on
	// every add-to-profile link.
	startTaskMarker = "CERTIFICATION_NAME"

	// referenceLine is appended to the share text whenever the session has
	// a certificate document. Only the presence of a document matters; the
	// line always points at the same verification page.
	referenceLine = "\n\nVoir le certificat : https://certificates.mycertify.app/verification"
)

// ProfileAddURL builds the add-to-profile link. Only non-empty fields are
// appended as query parameters; issueMonth is left-padded to two digits.
func ProfileAddURL(orgName, formationName, certID, issueYear, issueMonth, pdfURL string) string {
	v := url.Values{}
	v.Set("startTask", startTaskMarker)
	if orgName != "" {
		v.Set("organizationName", orgName)
	}
	if formationName != "" {
		v.Set("name", formationName)
	}
	if certID != "" {
		v.Set("certId", certID)
	}
	if issueYear != "" {
		v.Set("issueYear", issueYear)
	}
	if issueMonth != "" {
		v.Set("issueMonth", padMonth(issueMonth))
	}
	if pdfURL != "" {
		v.Set("certUrl", pdfURL)
	}
	return profileAddBase + "?" + v.Encode()
}

// DefaultMessage returns the default share-post text for a formation.
func DefaultMessage(formationName, orgName string) string {
	return fmt.Sprintf("Je viens d'obtenir ma certification « %s » délivrée par %s !", formationName, orgName)
}

// ShareURL builds the share-a-post link from the (possibly user-edited)
// message. When the session has a certificate document the fixed reference
// line is appended first; the combined message is then encoded exactly once
// as the single text query value.
func ShareURL(message, pdfURL string) string {
	text := message
	if pdfURL != "" {
		text += referenceLine
	}
	v := url.Values{}
	v.Set("text", text)
	return feedBase + "?" + v.Encode()
}

func padMonth(month string) string {
	if len(month) == 1 {
		return "0" + month
	}
	return month
}
