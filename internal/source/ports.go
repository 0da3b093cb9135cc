// Package source defines the ports for the external transaction aggregator.
package source

import (
	"context"
	"time"

	"finwell/internal/core"
)

// Ports for the outbound aggregator adapter.
type (
	// TransactionSource lists raw transactions for a credential and window.
	TransactionSource interface {
		Transactions(ctx context.Context, accessToken string, start, end time.Time) ([]core.RawTransaction, error)
	}

	// LinkTokenCreator issues the opaque bootstrap token the frontend uses
	// to start the link flow.
	LinkTokenCreator interface {
		CreateLinkToken(ctx context.Context) (string, error)
	}

	// TokenExchanger swaps a temporary public token for a durable access
	// token.
	TokenExchanger interface {
		ExchangePublicToken(ctx context.Context, publicToken string) (string, error)
	}
)
