package domain

// Dataset holds the two input ledgers. It is built once at startup and must
// not be modified afterwards; use cases keep a reference to it and read it
// on every query.
type Dataset struct {
	Sales     []Sale
	Campaigns []Campaign
}
