// Package model holds the domain types shared by the client core and the
// error taxonomy every boundary failure wraps.
package model

import "github.com/shopspring/decimal"

func init() {
	// the backend serializes money as bare JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}
