package handlers

import (
	"github.com/samber/lo"

	"terrazaeden.com/web/internal/catalog"
	"terrazaeden.com/web/internal/format"
	"terrazaeden.com/web/internal/raffle"
)

// SuccessMessage confirms a stored signup.
const SuccessMessage = "¡Listo! Te inscribiste correctamente."

// RaffleView is the view model for the raffles page.
type RaffleView struct {
	Participants []raffle.Partner
	Raffles      []ActiveRaffle
	Form         RaffleForm
	InstagramURL string
}

// ActiveRaffle is one brand's prize.
type ActiveRaffle struct {
	BrandID      string
	BrandName    string
	Logo         string
	PrizeTitle   string
	PrizeAmount  string
	ClosingDate  string
	Winner       string
	InstagramURL string
}

// RaffleForm is the state of the signup form fragment.
type RaffleForm struct {
	Action string
	Value  string
	// Error is the user-facing message of the last attempt.
	Error string
	// Submitted replaces the submit button with the success panel.
	Submitted    bool
	Message      string
	CSRFToken    string
	InstagramURL string
}

// RafflePath is where the form posts.
const RafflePath = "/rifas"

// BuildRaffleView assembles the raffles page.
func BuildRaffleView(c *catalog.Catalog, form RaffleForm, instagramURL string) RaffleView {
	raffles := lo.Map(c.RaffleBrands(), func(b catalog.Brand, _ int) ActiveRaffle {
		ar := ActiveRaffle{
			BrandID:      b.ID,
			BrandName:    b.Name,
			Logo:         b.Logo,
			PrizeTitle:   b.Raffle.PrizeTitle,
			Winner:       b.Raffle.Winner,
			InstagramURL: b.Contact.InstagramLink(),
		}
		if b.Raffle.PrizeAmount > 0 {
			ar.PrizeAmount = format.Price(b.Raffle.PrizeAmount)
		}
		if t, ok := b.Raffle.Closing(); ok {
			ar.ClosingDate = format.Date(t)
		}
		return ar
	})
	form.InstagramURL = instagramURL
	if form.Action == "" {
		form.Action = RafflePath
	}
	return RaffleView{
		Participants: raffle.Participants(c),
		Raffles:      raffles,
		Form:         form,
		InstagramURL: instagramURL,
	}
}

// FormAfterSubmit maps a submission outcome onto the form fragment. Failures
// keep the typed value so the visitor can retry.
func FormAfterSubmit(raw string, err error) RaffleForm {
	if err != nil {
		return RaffleForm{Value: raw, Error: raffle.UserMessage(err)}
	}
	return RaffleForm{Value: raw, Submitted: true, Message: SuccessMessage}
}
