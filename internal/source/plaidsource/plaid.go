// Package plaidsource adapts the Plaid SDK to the source ports.
package plaidsource

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/plaid/plaid-go/v27/plaid"

	"finwell/internal/core"
	"finwell/internal/source"
)

// Client wraps the Plaid API client for the three calls this service makes.
type Client struct {
	api        *plaid.APIClient
	clientName string
	userID     string
}

// Ensure interface conformance
var (
	_ source.TransactionSource = (*Client)(nil)
	_ source.LinkTokenCreator  = (*Client)(nil)
	_ source.TokenExchanger    = (*Client)(nil)
)

// Config carries the Plaid credentials and environment selection.
type Config struct {
	ClientID   string
	Secret     string
	Env        string // "sandbox" or "production"
	ClientName string
	UserID     string
}

// New creates a Plaid client. The sandbox environment is the default.
func New(cfg Config) *Client {
	pc := plaid.NewConfiguration()
	pc.AddDefaultHeader("PLAID-CLIENT-ID", cfg.ClientID)
	pc.AddDefaultHeader("PLAID-SECRET", cfg.Secret)
	pc.UseEnvironment(environment(cfg.Env))

	name := cfg.ClientName
	if name == "" {
		name = "Longevity Finance"
	}
	userID := cfg.UserID
	if userID == "" {
		userID = "user-123"
	}

	return &Client{api: plaid.NewAPIClient(pc), clientName: name, userID: userID}
}

func environment(env string) plaid.Environment {
	if env == "production" {
		return plaid.Production
	}
	return plaid.Sandbox
}

// Transactions fetches raw transactions for the window and maps them to the
// aggregator-shaped domain record.
func (c *Client) Transactions(ctx context.Context, accessToken string, start, end time.Time) ([]core.RawTransaction, error) {
	req := plaid.NewTransactionsGetRequest(accessToken, start.Format("2006-01-02"), end.Format("2006-01-02"))

	resp, _, err := c.api.PlaidApi.TransactionsGet(ctx).TransactionsGetRequest(*req).Execute()
	if err != nil {
		return nil, fmt.Errorf("transactions get: %w", err)
	}

	txs := resp.GetTransactions()
	out := make([]core.RawTransaction, 0, len(txs))
	for _, t := range txs {
		raw := core.RawTransaction{
			Date:     t.GetDate(),
			Merchant: t.GetMerchantName(),
			Name:     t.GetName(),
			Amount:   t.GetAmount(),
		}
		if pfc, ok := t.GetPersonalFinanceCategoryOk(); ok && pfc != nil {
			raw.CategoryPrimary = pfc.GetPrimary()
		}
		out = append(out, raw)
	}

	slog.DebugContext(ctx, "Fetched aggregator transactions", "count", len(out))
	return out, nil
}

// CreateLinkToken issues a link token for the transactions product.
func (c *Client) CreateLinkToken(ctx context.Context) (string, error) {
	user := plaid.NewLinkTokenCreateRequestUser(c.userID)
	req := plaid.NewLinkTokenCreateRequest(c.clientName, "en", []plaid.CountryCode{plaid.COUNTRYCODE_US}, *user)
	req.SetProducts([]plaid.Products{plaid.PRODUCTS_TRANSACTIONS})

	resp, _, err := c.api.PlaidApi.LinkTokenCreate(ctx).LinkTokenCreateRequest(*req).Execute()
	if err != nil {
		return "", fmt.Errorf("link token create: %w", err)
	}
	return resp.GetLinkToken(), nil
}

// ExchangePublicToken swaps a public token for a durable access token.
func (c *Client) ExchangePublicToken(ctx context.Context, publicToken string) (string, error) {
	req := plaid.NewItemPublicTokenExchangeRequest(publicToken)

	resp, _, err := c.api.PlaidApi.ItemPublicTokenExchange(ctx).ItemPublicTokenExchangeRequest(*req).Execute()
	if err != nil {
		return "", fmt.Errorf("public token exchange: %w", err)
	}
	return resp.GetAccessToken(), nil
}
