package raffle

import (
	"github.com/samber/lo"

	"terrazaeden.com/web/internal/catalog"
)

// DefaultReferrer tags signups coming from the raffle page.
const DefaultReferrer = "rifas-page"

// SignupInput is the payload of one raffle signup.
type SignupInput struct {
	Instagram string   `json:"instagram"`
	Brands    []string `json:"brands"`
	Referrer  string   `json:"referrer"`
}

// BuildInput assembles the signup for an already validated handle. Brands are
// the catalog raffle handles followed by the external sponsors, all without "@".
func BuildInput(c *catalog.Catalog, handle, referrer string) SignupInput {
	if referrer == "" {
		referrer = DefaultReferrer
	}
	brands := append(c.RaffleHandles(), lo.Map(externalPartners, func(p Partner, _ int) string {
		return bareHandle(p.Handle)
	})...)
	return SignupInput{
		Instagram: handle,
		Brands:    brands,
		Referrer:  referrer,
	}
}
