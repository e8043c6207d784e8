package main

import (
	"github.com/outofforest/proton"
	"github.com/outofforest/sonar/wire"
)

//go:generate go run .
func main() {
	proton.Generate("../types.proton.go",
		proton.Message[wire.Status](),
		proton.Message[wire.StatusResult](),
		proton.Message[wire.Ping](),
		proton.Message[wire.Pong](),
		proton.Message[wire.GetTip](),
		proton.Message[wire.TipResult](),
		proton.Message[wire.GetHash](),
		proton.Message[wire.HashResult](),
		proton.Message[wire.GetHeadersByRange](),
		proton.Message[wire.HeadersResult](),
		proton.Message[wire.GetBlocksByRange](),
		proton.Message[wire.BlocksResult](),
		proton.Message[wire.GetTransactions](),
		proton.Message[wire.TransactionsResult](),
	)
}
