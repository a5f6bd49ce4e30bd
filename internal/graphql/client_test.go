package graphql

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, status int, body string, inspect func(*http.Request, request)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if inspect != nil {
			inspect(r, req)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestDoDecodesData(t *testing.T) {
	var gotQuery string
	var gotVars map[string]any
	var gotCorrelation string
	srv := newServer(t, http.StatusOK, `{"data":{"createRaffleSignup":{"success":true,"message":"ok","id":"abc"}}}`,
		func(r *http.Request, req request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.Equal(t, "terraza-eden", r.Header.Get("X-Tenant"))
			gotCorrelation = r.Header.Get(CorrelationHeader)
			gotQuery = req.Query
			gotVars = req.Variables
		})

	c := NewClient(srv.URL, WithHeader("X-Tenant", "terraza-eden"))
	var out struct {
		CreateRaffleSignup struct {
			Success bool   `json:"success"`
			ID      string `json:"id"`
		} `json:"createRaffleSignup"`
	}
	err := c.Do(context.Background(), "mutation Ping { ping }", map[string]any{"a": "b"}, &out)
	require.NoError(t, err)
	require.True(t, out.CreateRaffleSignup.Success)
	require.Equal(t, "abc", out.CreateRaffleSignup.ID)
	require.Equal(t, "mutation Ping { ping }", gotQuery)
	require.Equal(t, "b", gotVars["a"])
	require.Len(t, gotCorrelation, 26)
}

func TestDoErrorsArrayWinsOverStatus(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusBadRequest} {
		srv := newServer(t, status, `{"data":null,"errors":[{"message":"tenant unknown"},{"message":"bad input"}]}`, nil)
		err := NewClient(srv.URL).Do(context.Background(), "query Q { q }", nil, nil)

		var rerr *ResponseError
		require.True(t, errors.As(err, &rerr), "status %d", status)
		require.Equal(t, status, rerr.Status)
		require.Len(t, rerr.Errors, 2)
		require.Equal(t, "graphql: tenant unknown, bad input", rerr.Error())
	}
}

func TestDoNon2xxWithoutErrors(t *testing.T) {
	srv := newServer(t, http.StatusBadGateway, `upstream down`, nil)
	err := NewClient(srv.URL).Do(context.Background(), "query Q { q }", nil, nil)

	var serr *StatusError
	require.True(t, errors.As(err, &serr))
	require.Equal(t, http.StatusBadGateway, serr.Status)
	require.Contains(t, serr.Error(), "upstream down")
}

func TestDoMalformedBody(t *testing.T) {
	srv := newServer(t, http.StatusOK, `not json`, nil)
	err := NewClient(srv.URL).Do(context.Background(), "query Q { q }", nil, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode response")
}

func TestDoTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, WithTimeout(20*time.Millisecond))
	err := c.Do(context.Background(), "query Q { q }", nil, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "graphql: post")
}

func TestDoWithoutEndpoint(t *testing.T) {
	require.ErrorIs(t, NewClient("  ").Do(context.Background(), "query Q { q }", nil, nil), ErrNoEndpoint)

	var c *Client
	require.ErrorIs(t, c.Do(context.Background(), "query Q { q }", nil, nil), ErrNoEndpoint)
}

func TestOperationName(t *testing.T) {
	require.Equal(t, "CreateRaffleSignup", operationName("mutation CreateRaffleSignup($input: X!) { a }"))
	require.Equal(t, "Q", operationName("query Q{ q }"))
	require.Equal(t, "anonymous", operationName("{ q }"))
}
