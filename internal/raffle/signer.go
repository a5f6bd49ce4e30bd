package raffle

import (
	"context"
	"errors"
	"strings"

	"github.com/oklog/ulid/v2"

	"terrazaeden.com/web/internal/graphql"
)

// DefaultTenantID identifies the food court on the promotions backend.
const DefaultTenantID = "terraza-eden"

const createSignupMutation = `mutation CreateRaffleSignup($input: CreateRaffleSignupInput!, $tenantId: String) {
  createRaffleSignup(input: $input, tenantId: $tenantId) {
    success
    message
    id
  }
}`

var errEmptyPayload = errors.New("raffle: empty createRaffleSignup payload")

// GraphQLSigner issues the createRaffleSignup mutation.
type GraphQLSigner struct {
	client   *graphql.Client
	tenantID string
}

// NewGraphQLSigner returns a signer bound to client and tenant.
func NewGraphQLSigner(client *graphql.Client, tenantID string) *GraphQLSigner {
	if strings.TrimSpace(tenantID) == "" {
		tenantID = DefaultTenantID
	}
	return &GraphQLSigner{client: client, tenantID: tenantID}
}

// Sign implements Signer.
func (s *GraphQLSigner) Sign(ctx context.Context, input SignupInput) (Result, error) {
	vars := map[string]any{
		"input":    input,
		"tenantId": s.tenantID,
	}
	var out struct {
		CreateRaffleSignup *Result `json:"createRaffleSignup"`
	}
	if err := s.client.Do(ctx, createSignupMutation, vars, &out); err != nil {
		return Result{}, err
	}
	if out.CreateRaffleSignup == nil {
		return Result{}, errEmptyPayload
	}
	return *out.CreateRaffleSignup, nil
}

// LocalSigner accepts every signup without leaving the process. It backs
// local development when no promotions backend is running.
type LocalSigner struct{}

// Sign implements Signer.
func (LocalSigner) Sign(ctx context.Context, input SignupInput) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	return Result{
		Success: true,
		Message: "registro local",
		ID:      "local_" + strings.ToLower(ulid.Make().String()),
	}, nil
}
