// Package clients defines the collaborator boundary of the payment
// orchestrator and provides the concrete Solana-backed implementations.
package clients

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"

	"github.com/payvine/payflow/types"
)

// Wallet is the session boundary to the external passkey wallet. Connect
// may suspend for an out-of-process biometric ceremony; its duration is
// bounded by user attention, not by this library.
type Wallet interface {
	IsConnected() bool

	// Connect establishes a wallet session. A user dismissing the prompt
	// surfaces as a cancellation-flavored error.
	Connect(ctx context.Context) error

	// Address returns the wallet's current account, false when no session
	// is active.
	Address() (solana.PublicKey, bool)
}

// InstructionBuilder constructs the chain instruction for a value transfer.
// Amount is in whole native units.
type InstructionBuilder interface {
	BuildTransfer(from, to solana.PublicKey, amount decimal.Decimal) (solana.Instruction, error)
}

// Submitter signs and sends a set of instructions with the selected fee
// method and returns the transaction signature.
type Submitter interface {
	Submit(ctx context.Context, instructions []solana.Instruction, fee types.FeeMethod) (string, error)
}

// Explorer builds a public explorer link for a transaction signature.
type Explorer interface {
	TxURL(signature string) string
}

// TransactionSigner applies signatures to an assembled transaction. The
// passkey SDK sits behind this seam in the real app; KeypairWallet provides
// a local implementation.
type TransactionSigner interface {
	SignTransaction(ctx context.Context, tx *solana.Transaction) error
}

// NetworkExplorer is the stock Explorer backed by the network's public
// explorer site.
type NetworkExplorer struct {
	Network types.Network
}

func (e NetworkExplorer) TxURL(signature string) string {
	return e.Network.ExplorerTxURL(signature)
}
