package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/cert-publisher/internal/orgconfig"
)

func testOrg() orgconfig.Organization {
	return orgconfig.Organization{OrganizationName: "ACME Formation"}
}

func TestNewContext(t *testing.T) {
	p := Params{
		PDFURL:        "https://example.com/cert.pdf",
		FormationName: "Go avancé",
		CertID:        "CERT-123",
	}

	c := NewContext("acme", testOrg(), p)

	assert.Equal(t, "acme", c.OrgID)
	assert.Equal(t, "ACME Formation", c.Org.OrganizationName)
	assert.Equal(t, p, c.Params)
}
