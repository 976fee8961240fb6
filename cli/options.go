package cli

import "github.com/viant/tradingpost/config"

// Options represents command line options
type Options struct {
	Global  config.Config `group:"Global Options"`
	Version bool          `short:"v" long:"version" description:"Print the current version and exit"`
	User    UserCommand   `command:"user" description:"Show user information"`
	Buy     OrderCommand  `command:"buy" description:"Buy a stock"`
	Sell    OrderCommand  `command:"sell" description:"Sell a stock"`
}

// UserCommand shows the profile
type UserCommand struct{}

// OrderCommand places an order for a ticker
type OrderCommand struct {
	Quantity int `short:"q" long:"quantity" default:"1" description:"Quantity of the stock"`
	Args     struct {
		Ticker string `positional-arg-name:"TICKER" description:"stock ticker, e.g. GOOG"`
	} `positional-args:"yes"`
}
