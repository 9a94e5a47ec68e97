package mock

import (
	"context"

	"github.com/jcharovsky/docs2skill"
)

var _ docs2skill.Gateway = (*Gateway)(nil)

// Gateway is a mock implementation of docs2skill.Gateway.
type Gateway struct {
	GenerateFn func(ctx context.Context, cfg docs2skill.ProviderConfig, system, user string) (string, error)
}

func (g *Gateway) Generate(ctx context.Context, cfg docs2skill.ProviderConfig, system, user string) (string, error) {
	return g.GenerateFn(ctx, cfg, system, user)
}
