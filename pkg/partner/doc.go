// Package partner provides types, interfaces, and helpers for working with the
// Partner Center REST API.
//
// # Overview
//
// The partner package defines the domain types (e.g., Product, Sku,
// Subscription, Agreement) and the interfaces for resource-oriented clients
// (e.g., ProductsClient, AgreementsClient). A concrete implementation is
// provided by the partnerclient package, which wires configuration, transport,
// and credentials. Most consumers should import partnerclient to construct a
// client and then use the resource client interfaces exposed here.
//
// Getting a client
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
//	  cli, err := partnerclient.NewWithToken(ctx, "https://api.partnercenter.microsoft.com", "eyJhbGciOi...")
//	  if err != nil { log.Fatal(err) }
//
//	  products, err := cli.Products().List(ctx, partner.ProductListOptions{
//	    Country:    "US",
//	    TargetView: "OnlineServices",
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = products
//	}
//
// # Paging
//
// Collections carry the links returned by the service. NextPage follows the
// next link of a collection and returns ErrNoMoreItems on the last page:
//
//	for page := products; ; {
//	  next, err := partner.NextPage(ctx, cli, page)
//	  if errors.Is(err, partner.ErrNoMoreItems) { break }
//	  if err != nil { /* handle error */ }
//	  page = next
//	}
//
// # Errors
//
// Every failed response is returned as a *PartnerError whose Category comes
// from the status code of the response. Helpers such as IsNotFound,
// IsUnauthorized, and IsTooManyRequests make it easy to branch on common
// cases. A cancelled context surfaces as context.Canceled or
// context.DeadlineExceeded, never as a PartnerError; see IsCancellation.
//
// # Request context
//
// Every request carries a correlation id, a request id, and a locale. A root
// context without a request id mints a new one per call. Client.With returns a
// client bound to a different root context.
package partner
