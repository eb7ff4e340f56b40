// Package partnerclient provides the primary entry point for constructing a
// partner service client that implements the partner.Client interface.
//
// It layers endpoint normalization, credentials, and the request pipeline on
// top of the resource interfaces and types defined in the partner package.
// Most applications should import partnerclient to build a client, then use
// the returned partner.Client to access resource-specific clients, for
// example Products(), Agreements(), Subscriptions(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/partnercenter/pkg/partner"
//	  "github.com/fivetwenty-io/partnercenter/pkg/partnerclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // With an access token you already have:
//	  cli, err := partnerclient.NewWithToken(ctx, "api.partnercenter.microsoft.com", "eyJhbGciOi...")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with application credentials. The token is fetched now and
//	  // renewed whenever it expires.
//	  cli, err = partnerclient.NewWithClientCredentials(ctx, "api.partnercenter.microsoft.com", partnerclient.ClientCredentials{
//	    TenantID:     "contoso.onmicrosoft.com",
//	    ClientID:     "client-id",
//	    ClientSecret: "client-secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  products, err := cli.Products().List(ctx, partner.ProductListOptions{
//	    Country:    "US",
//	    TargetView: "Azure",
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = products
//	}
//
// # Request context
//
// Every client carries a root partner.RequestContext. Its correlation id is
// sent on every request; a zero request id means each call gets a fresh one.
// Use Client.With to scope a group of calls to another correlation id.
//
// # Errors
//
// Failed calls return a *partner.PartnerError carrying the error category,
// the service fault, and snapshots of the request and response. Use the
// helpers partner.IsNotFound, partner.IsUnauthorized, partner.CategoryOf,
// etc. to branch on it.
package partnerclient
