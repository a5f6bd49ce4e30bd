package main

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"terrazaeden.com/web/internal/cms"
	handlersPkg "terrazaeden.com/web/internal/handlers"
	mw "terrazaeden.com/web/internal/middleware"
	"terrazaeden.com/web/internal/observability"
	"terrazaeden.com/web/internal/raffle"
)

const (
	raffleTitle       = "Rifas y Bonos"
	raffleDescription = "Participa por bonos de las marcas de Terraza Eden. Sigue a @terrazaeleden y a las marcas participantes e inscribe tu usuario de Instagram."
	// raffleField is the form field carrying the Instagram handle.
	raffleField = "instagram"
)

// raffles renders the raffle page. A visitor who already signed up in this
// session sees the success panel instead of the button.
func (a *app) raffles(w http.ResponseWriter, r *http.Request) {
	form := handlersPkg.RaffleForm{CSRFToken: mw.CSRFToken(r)}
	if s := mw.GetSession(r); s.RaffleSubmitted {
		form.Submitted = true
		form.Value = s.RaffleHandle
		form.Message = handlersPkg.SuccessMessage
	}
	a.renderRaffles(w, r, http.StatusOK, form)
}

// raffleSubmit validates and forwards one signup. Validation errors answer
// 422 without a network call; backend failures answer 200 with the generic
// message so htmx swaps the form back in, enabled.
func (a *app) raffleSubmit(w http.ResponseWriter, r *http.Request) {
	raw := r.PostFormValue(raffleField)
	logger := observability.FromContext(r.Context())
	sess := mw.GetSession(r)

	status := http.StatusOK
	release, err := a.guard.Acquire(sess.ID)
	if err != nil {
		logger.Info("raffle submission already in flight")
		a.respondRaffleForm(w, r, http.StatusConflict, handlersPkg.FormAfterSubmit(raw, err))
		return
	}
	defer release()

	_, err = a.raffle.Submit(r.Context(), raw)
	switch {
	case err == nil:
		sess.MarkRaffleSubmitted(strings.TrimSpace(raw))
	case raffle.IsValidation(err):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, raffle.ErrSubmissionFailed):
		// already logged with its cause by the service
	default:
		logger.Error("raffle submission failed unexpectedly", zap.Error(err))
	}
	a.respondRaffleForm(w, r, status, handlersPkg.FormAfterSubmit(raw, err))
}

func (a *app) respondRaffleForm(w http.ResponseWriter, r *http.Request, status int, form handlersPkg.RaffleForm) {
	form.CSRFToken = mw.CSRFToken(r)
	if mw.IsHTMX(r.Context()) {
		form.Action = handlersPkg.RafflePath
		form.InstagramURL = a.cfg.Site.InstagramURL
		a.views.renderFragment(w, r, status, "frag_raffle_form", form)
		return
	}
	a.renderRaffles(w, r, status, form)
}

func (a *app) renderRaffles(w http.ResponseWriter, r *http.Request, status int, form handlersPkg.RaffleForm) {
	view := handlersPkg.BuildRaffleView(a.catalog, form, a.cfg.Site.InstagramURL)
	vm := a.page(r, raffleTitle, raffleDescription)
	vm.BodyClass = "raffle-page"
	vm.Raffle = &view
	a.views.renderPage(w, r, status, "rifas", vm)
}

// raffleTerms renders the markdown terms page.
func (a *app) raffleTerms(w http.ResponseWriter, r *http.Request) {
	page, err := a.content.Page("rifas", "bases")
	if err != nil {
		if !errors.Is(err, cms.ErrNotFound) {
			observability.FromContext(r.Context()).Error("load content page", zap.Error(err))
		}
		a.notFound(w, r)
		return
	}
	title := page.Title
	if page.SEO.Title != "" {
		title = page.SEO.Title
	}
	vm := a.page(r, title, page.Description())
	vm.BodyClass = "content-page"
	vm.Content = &page
	if page.SEO.OGImage != "" {
		vm.SEO.OG.Image = page.SEO.OGImage
		vm.SEO.Twitter.Image = page.SEO.OGImage
		vm.SEO.Twitter.Card = "summary_large_image"
	}
	a.views.renderPage(w, r, http.StatusOK, "content", vm)
}
