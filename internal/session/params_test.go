package session

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsFromQuery_AllFields(t *testing.T) {
	q := url.Values{}
	q.Set("pdf", "https://example.com/cert.pdf")
	q.Set("formation", "Go avancé")
	q.Set("certId", "CERT-123")
	q.Set("prenom", "marie")
	q.Set("mois", "5")
	q.Set("annee", "2026")

	p := ParamsFromQuery(q)

	assert.Equal(t, "https://example.com/cert.pdf", p.PDFURL)
	assert.Equal(t, "Go avancé", p.FormationName)
	assert.Equal(t, "CERT-123", p.CertID)
	assert.Equal(t, "marie", p.FirstName)
	assert.Equal(t, "5", p.IssueMonth)
	assert.Equal(t, "2026", p.IssueYear)
}

func TestOrgIDFromQuery(t *testing.T) {
	q := url.Values{"org": {"acme"}}
	assert.Equal(t, "acme", OrgIDFromQuery(q))
	assert.Equal(t, "", OrgIDFromQuery(url.Values{}))
}

func TestValidate_AllRequired(t *testing.T) {
	p := Params{
		PDFURL:        "https://example.com/cert.pdf",
		FormationName: "Go avancé",
		CertID:        "CERT-123",
	}
	assert.NoError(t, Validate(p))
}

func TestValidate_OptionalFieldsNeverFail(t *testing.T) {
	p := Params{
		PDFURL:        "https://example.com/cert.pdf",
		FormationName: "Go avancé",
		CertID:        "CERT-123",
		FirstName:     "",
		IssueMonth:    "",
		IssueYear:     "",
	}
	assert.NoError(t, Validate(p))
}

func TestValidate_MissingSubsetsInFixedOrder(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		missing []string
	}{
		{
			name:    "all missing",
			params:  Params{},
			missing: []string{"pdfUrl", "formationName", "certId"},
		},
		{
			name:    "pdf missing",
			params:  Params{FormationName: "Go avancé", CertID: "CERT-123"},
			missing: []string{"pdfUrl"},
		},
		{
			name:    "formation missing",
			params:  Params{PDFURL: "https://x/y.pdf", CertID: "CERT-123"},
			missing: []string{"formationName"},
		},
		{
			name:    "cert id missing",
			params:  Params{PDFURL: "https://x/y.pdf", FormationName: "Go avancé"},
			missing: []string{"certId"},
		},
		{
			name:    "pdf and cert id missing",
			params:  Params{FormationName: "Go avancé"},
			missing: []string{"pdfUrl", "certId"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.params)
			require.Error(t, err)

			var missingErr *MissingParamsError
			require.ErrorAs(t, err, &missingErr)
			assert.Equal(t, tt.missing, missingErr.Keys)
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"marie", "Marie"},
		{"MARIE", "Marie"},
		{"jean-PIERRE", "Jean-pierre"},
		{"élodie", "Élodie"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DisplayName(tt.in), "input %q", tt.in)
	}
}

func TestContext_Greeting(t *testing.T) {
	c := NewContext("acme", testOrg(), Params{FirstName: "marie"})
	assert.Equal(t, "Félicitations Marie !", c.Greeting())

	c = NewContext("acme", testOrg(), Params{})
	assert.Equal(t, GenericGreeting, c.Greeting())
}
