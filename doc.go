// Package tradingpost provides a client for the trading-post API.
//
// The package glues the credential store, the session manager and the API client
// together. NewClient validates the configuration and loads the credential file
// eagerly, so a missing or malformed file is reported before any network I/O:
//
//	cfg := config.Default()
//	cli, err := tradingpost.NewClient(ctx, cfg, nil)
//	if err != nil {
//		return err
//	}
//	profile, err := cli.User(ctx)
//
// See the cli package for the command line front end.
package tradingpost
