package controller

import (
	"context"
	"errors"
	"log"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cert-publisher/internal/orgconfig"
	"github.com/jonathan/cert-publisher/internal/render"
	"github.com/jonathan/cert-publisher/internal/session"
	"github.com/jonathan/cert-publisher/internal/share"
	"github.com/jonathan/cert-publisher/internal/state"
)

// RecentWindow bounds how long after the last completed step the progress
// banner stays visible.
const RecentWindow = 2 * time.Minute

// DefaultPreviewScale is the render scale used when none is configured.
const DefaultPreviewScale = 1.5

// Controller orchestrates one session: resolve the organization, validate
// parameters, restore persisted completion state, build the outbound links
// and delegate the preview to the renderer.
type Controller struct {
	orgs     orgconfig.Mapping
	store    *state.Store
	renderer render.Renderer

	// Scale is the preview render scale.
	Scale float64
	// Now supplies the wall clock; tests pin it.
	Now func() time.Time
}

// New wires a controller. orgs may be nil when the mapping could not be
// obtained; every session then fails with the same generic unavailable
// state.
func New(orgs orgconfig.Mapping, store *state.Store, renderer render.Renderer) *Controller {
	return &Controller{
		orgs:     orgs,
		store:    store,
		renderer: renderer,
		Scale:    DefaultPreviewScale,
		Now:      time.Now,
	}
}

// resolve builds the immutable session context from raw query values, or
// fails with the generic unavailable class.
func (c *Controller) resolve(q url.Values) (session.Context, error) {
	org, err := orgconfig.Resolve(c.orgs, session.OrgIDFromQuery(q))
	if err != nil {
		return session.Context{}, &UnavailableError{Cause: err}
	}

	params := session.ParamsFromQuery(q)
	if err := session.Validate(params); err != nil {
		return session.Context{}, &UnavailableError{Cause: err}
	}

	return session.NewContext(session.OrgIDFromQuery(q), org, params), nil
}

// Run executes the session state machine once. Pre-content failures are
// terminal and generic; a renderer failure degrades the preview region
// only.
func (c *Controller) Run(ctx context.Context, q url.Values) (*View, error) {
	sc, err := c.resolve(q)
	if err != nil {
		logUnavailable(err)
		return nil, err
	}

	p := sc.Params
	orgName := sc.Org.OrganizationName
	key := state.Key(p.CertID, p.PDFURL, p.FormationName, orgName)
	defaultMsg := share.DefaultMessage(p.FormationName, orgName)

	view := &View{
		Greeting:         sc.Greeting(),
		OrganizationName: orgName,
		LogoPath:         sc.Org.LogoPath,
		FaviconPath:      sc.Org.FaviconPath,
		WebsiteURL:       sc.Org.WebsiteURL,
		FormationName:    p.FormationName,
		CertID:           p.CertID,
		PDFURL:           p.PDFURL,
		ProfileAddURL:    share.ProfileAddURL(orgName, p.FormationName, p.CertID, p.IssueYear, p.IssueMonth, p.PDFURL),
		DefaultMessage:   defaultMsg,
		ShareURL:         share.ShareURL(defaultMsg, p.PDFURL),
	}

	var (
		rec       state.Record
		png       []byte
		renderErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rec = c.store.Load(gctx, key)
		return nil
	})
	g.Go(func() error {
		png, renderErr = c.renderer.RenderFirstPage(gctx, p.PDFURL, c.Scale)
		return nil
	})
	_ = g.Wait()

	if renderErr != nil {
		log.Printf("[session] preview degraded for %s: %v", key, renderErr)
		view.Preview = Preview{FallbackURL: p.PDFURL}
	} else {
		view.Preview = Preview{Available: true, PNG: png}
	}

	view.Step1Done = rec.Step1.Completed
	view.Step2Done = rec.Step2.Completed
	view.ShowProgressBanner = state.HasRecentActivity(rec, c.Now().UnixMilli(), RecentWindow.Milliseconds())

	return view, nil
}

// MarkStep applies a one-shot completion transition for a step and returns
// the refreshed step fragment. Transitions are idempotent and independent
// per step; re-marking only refreshes the timestamp. The share URL in the
// result reflects the live message text, not the page-load default.
func (c *Controller) MarkStep(ctx context.Context, q url.Values, step, message string) (*StepView, error) {
	if !state.IsValidStep(step) {
		return nil, &UnknownStepError{Step: step}
	}

	sc, err := c.resolve(q)
	if err != nil {
		logUnavailable(err)
		return nil, err
	}

	p := sc.Params
	key := state.Key(p.CertID, p.PDFURL, p.FormationName, sc.Org.OrganizationName)

	c.store.Save(ctx, key, step, true)
	rec := c.store.Load(ctx, key)

	return &StepView{
		Step1Done:          rec.Step1.Completed,
		Step2Done:          rec.Step2.Completed,
		ShowProgressBanner: state.HasRecentActivity(rec, c.Now().UnixMilli(), RecentWindow.Milliseconds()),
		ShareURL:           c.shareLink(sc, message),
	}, nil
}

// ShareLink recomputes the share URL from the live message text. An empty
// message falls back to the default template.
func (c *Controller) ShareLink(q url.Values, message string) (string, error) {
	sc, err := c.resolve(q)
	if err != nil {
		return "", err
	}
	return c.shareLink(sc, message), nil
}

// logUnavailable records the real cause of a generic unavailable failure
// for diagnostics; the cause itself never reaches the user.
func logUnavailable(err error) {
	var uerr *UnavailableError
	if errors.As(err, &uerr) {
		log.Printf("[session] unavailable: %v", uerr.Unwrap())
	}
}

func (c *Controller) shareLink(sc session.Context, message string) string {
	if message == "" {
		message = share.DefaultMessage(sc.Params.FormationName, sc.Org.OrganizationName)
	}
	return share.ShareURL(message, sc.Params.PDFURL)
}
