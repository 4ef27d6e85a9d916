package models

// BuildRequest is the payload for assembling a newsletter preview. No
// recipient yet: the email address is only needed at send time.
type BuildRequest struct {
	Region  string   `json:"region" default:"USA" validate:"required,oneof=USA Europe Germany Asia Australia"`
	Tickers []string `json:"tickers" validate:"required,min=1,max=3,dive,required"`
}

// BuildResponse carries the assembled preview back to the front end.
type BuildResponse struct {
	Document    string           `json:"document"`
	ChartPNG    string           `json:"chart_png,omitempty"` // base64
	LatestClose []TickerClose    `json:"latest_close"`
	News        []MatchedArticle `json:"news"`
}

// TickerClose is one row of the latest-close table, in request order.
type TickerClose struct {
	Ticker string  `json:"ticker"`
	Close  float64 `json:"close"`
}

// SendRequest triggers delivery; the document is rebuilt from the same
// inputs so the send step never trusts client-supplied content.
type SendRequest struct {
	Email   string   `json:"email" validate:"required,email"`
	Region  string   `json:"region" default:"USA" validate:"required,oneof=USA Europe Germany Asia Australia"`
	Tickers []string `json:"tickers" validate:"required,min=1,max=3,dive,required"`
}

// SendResponse reports the delivery receipt.
type SendResponse struct {
	Recipient  string `json:"recipient"`
	StatusCode int    `json:"status_code"`
}

// RandomTickersResponse is the randomize-from-index payload.
type RandomTickersResponse struct {
	Tickers []string `json:"tickers"`
}

// RegionsResponse lists the selectable regions.
type RegionsResponse struct {
	Regions []string `json:"regions"`
}
