package controller

// View is the immutable result of a successful session run: everything the
// page needs to render, computed once from the session context.
type View struct {
	Greeting         string `json:"greeting"`
	OrganizationName string `json:"organizationName"`
	LogoPath         string `json:"logoPath,omitempty"`
	FaviconPath      string `json:"faviconPath,omitempty"`
	WebsiteURL       string `json:"websiteUrl,omitempty"`

	FormationName string `json:"formationName"`
	CertID        string `json:"certId"`
	PDFURL        string `json:"pdfUrl"`

	ProfileAddURL  string `json:"profileAddUrl"`
	DefaultMessage string `json:"defaultMessage"`
	ShareURL       string `json:"shareUrl"`

	Step1Done          bool `json:"step1Done"`
	Step2Done          bool `json:"step2Done"`
	ShowProgressBanner bool `json:"showProgressBanner"`

	Preview Preview `json:"preview"`
}

// Preview describes the certificate preview region. When rendering failed
// the page falls back to an open-externally link; the session itself stays
// usable.
type Preview struct {
	Available   bool   `json:"available"`
	FallbackURL string `json:"fallbackUrl,omitempty"`

	// PNG holds the rendered first page; served separately, never inlined
	// in the view JSON.
	PNG []byte `json:"-"`
}

// StepView is the fragment returned after a step-completion event.
type StepView struct {
	Step1Done          bool   `json:"step1Done"`
	Step2Done          bool   `json:"step2Done"`
	ShowProgressBanner bool   `json:"showProgressBanner"`
	ShareURL           string `json:"shareUrl"`
}
