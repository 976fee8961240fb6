// Package client implements the trading-post API client.
//
// Every call goes through AuthorizedRequest, which sends the request over a bearer
// transport backed by the session manager from the `auth` sub-package and checks the
// response status against the one the operation expects.
//
// Example:
//
//	manager := auth.New(baseURL, store.NewFileStore("credentials.json"))
//	cli, _ := client.New(baseURL, manager)
//	order, err := cli.CreateBuyOrder(ctx, &schema.OrderRequest{Ticker: "GOOG", Quantity: 100})
package client
