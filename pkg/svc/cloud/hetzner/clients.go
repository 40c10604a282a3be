package hetzner

import (
	"context"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"
)

// LocationAPI is the subset of hcloud.LocationClient used by the plugin.
type LocationAPI interface {
	All(ctx context.Context) ([]*hcloud.Location, error)
}

// ServerAPI is the subset of hcloud.ServerClient used by the plugin.
type ServerAPI interface {
	AllWithOpts(ctx context.Context, opts hcloud.ServerListOpts) ([]*hcloud.Server, error)
}

// Clients are the API clients of one token.
type Clients struct {
	Location LocationAPI
	Server   ServerAPI
}

// ClientFactory builds Clients for a token.
type ClientFactory func(token string) Clients

// NewClients builds hcloud clients from an API token.
func NewClients(token string) Clients {
	client := hcloud.NewClient(hcloud.WithToken(token), hcloud.WithApplication("tfinfra", ""))

	return Clients{
		Location: &client.Location,
		Server:   &client.Server,
	}
}
