// Package docean provides types, interfaces, and helpers for working with the
// DigitalOcean v2 API.
//
// # Overview
//
// The docean package defines the domain types (e.g., Droplet, Volume, Domain,
// FloatingIP) and the interfaces for resource-oriented clients (e.g.,
// DropletsClient, VolumesClient). A concrete implementation of these clients
// is provided by the doclient package, which wires configuration, transport,
// authentication, and the rate-limit-aware retry governor. Most consumers
// should import doclient to construct a client and then interact with the
// resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/bluewater-io/docean/v2/pkg/docean"
//	  "github.com/bluewater-io/docean/v2/pkg/doclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := doclient.New(ctx, &docean.Config{Token: "my-access-token"})
//	  if err != nil { log.Fatal(err) }
//
//	  // List the first page of droplets
//	  droplets, err := cli.Droplets().List(ctx, docean.NewListOptions().WithPerPage(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = droplets
//	}
//
// # Queries and pagination
//
// Use ListOptions to express common list options (page, per_page, filters).
// List endpoints return a Page whose links carry the URL of the next page;
// the package provides helpers for iterating or collecting paginated results:
//
//	it := cli.Droplets().Iterate(ctx, nil)
//	for it.HasNext() {
//	  droplet, err := it.Next()
//	  if err != nil { break }
//	  _ = droplet
//	}
//
// or fetch all results at once:
//
//	all, err := cli.Droplets().ListAll(ctx, nil)
//	if err != nil { /* handle error */ }
//	_ = all
//
// # Errors
//
// Failures are split into four kinds: APIError for structured errors reported
// by the API, RateLimitError when the request quota outlasted the retry
// budget, TransportError for network-level failures, and DecodeError when a
// response body does not match the documented shape. Helpers such as
// IsNotFound, IsRateLimited, and IsTransport make it easy to branch on common
// cases.
//
// # Interceptors
//
// The package includes generic request/response interceptors (for logging,
// custom headers, metrics, client-side request pacing) that can be installed
// on a client via Config.Interceptors.
//
// # Resources
//
// Resource clients follow a consistent CRUD-and-actions pattern across
// resources (Droplets, DropletActions, Images, Snapshots, Volumes, Domains,
// DomainRecords, FloatingIPs, LoadBalancers, Certificates, SSHKeys, Tags,
// Regions, Sizes, Account, Actions). See the individual interfaces in
// resource_clients.go for the full surface area.
package docean
