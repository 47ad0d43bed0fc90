package models

import "time"

// DocumentData feeds the invoice and quotation templates. The five settlement
// lines always come from the settlement splitter so every rendering stays
// consistent with the payment screen and the admin ledger.
type DocumentData struct {
	DocumentNo   string
	BookingID    string
	CustomerName string
	Mobile       string
	Address      string
	Service      string
	BookingDate  string
	Hours        float64
	Method       string
	IssuedAt     time.Time
	Settlement   SettlementLines
}
