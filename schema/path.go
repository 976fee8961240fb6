package schema

// Trading-post API endpoints
const (
	TokenPath      = "/tokens"
	ProfilePath    = "/profile/"
	BuyOrdersPath  = "/profile/buy-orders"
	SellOrdersPath = "/profile/sell-orders"
)
