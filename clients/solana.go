package clients

import (
	"context"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/shopspring/decimal"

	"github.com/payvine/payflow/types"
)

var lamportsPerUnit = decimal.NewFromInt(int64(solana.LAMPORTS_PER_SOL))

// SystemTransferBuilder builds native system-program transfers.
type SystemTransferBuilder struct{}

var _ InstructionBuilder = SystemTransferBuilder{}

// BuildTransfer converts the whole-unit amount to lamports (flooring
// sub-lamport dust) and emits a system transfer instruction. The recipient
// is re-checked here as defense in depth; validation upstream should have
// rejected it already.
func (SystemTransferBuilder) BuildTransfer(from, to solana.PublicKey, amount decimal.Decimal) (solana.Instruction, error) {
	if to.IsZero() {
		return nil, ErrZeroRecipient
	}

	lamports := amount.Mul(lamportsPerUnit).Floor()
	if lamports.Sign() <= 0 {
		return nil, fmt.Errorf("amount %s is below one lamport", amount)
	}

	return system.NewTransferInstruction(
		lamports.BigInt().Uint64(),
		from,
		to,
	).Build(), nil
}

// RPCSubmitter assembles, signs and broadcasts transactions over JSON-RPC,
// then polls until the signature is confirmed.
type RPCSubmitter struct {
	network types.Network
	client  *rpc.Client
	wallet  Wallet
	signer  TransactionSigner

	// sponsor pays the network fee for sponsored submissions and co-signs.
	sponsor *solana.PrivateKey

	timeout      time.Duration
	pollInterval time.Duration
}

var _ Submitter = (*RPCSubmitter)(nil)

// NewRPCSubmitter wires a submitter against the network's RPC endpoint.
// The wallet supplies the fee payer for native submissions; signer applies
// the wallet-side signatures.
func NewRPCSubmitter(cfg *types.Config, wallet Wallet, signer TransactionSigner) *RPCSubmitter {
	return &RPCSubmitter{
		network:      cfg.Network,
		client:       rpc.New(cfg.Network.DefaultRPCEndpoint()),
		wallet:       wallet,
		signer:       signer,
		timeout:      cfg.DefaultTimeout,
		pollInterval: 2 * time.Second,
	}
}

// WithSponsor sets the account that fronts network fees for sponsored
// submissions.
func (s *RPCSubmitter) WithSponsor(sponsor solana.PrivateKey) *RPCSubmitter {
	s.sponsor = &sponsor
	return s
}

// WithEndpoint overrides the stock RPC endpoint.
func (s *RPCSubmitter) WithEndpoint(url string) *RPCSubmitter {
	s.client = rpc.New(url)
	return s
}

// Submit builds a transaction from the instructions, sets the fee payer per
// the fee method, signs, broadcasts, and waits for confirmation.
func (s *RPCSubmitter) Submit(ctx context.Context, instructions []solana.Instruction, fee types.FeeMethod) (string, error) {
	if len(instructions) == 0 {
		return "", ErrNoInstructions
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	payer, err := s.feePayer(fee)
	if err != nil {
		return "", err
	}

	recent, err := s.client.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return "", fmt.Errorf("rpc: fetch recent blockhash: %w", err)
	}

	tx, err := solana.NewTransaction(
		instructions,
		recent.Value.Blockhash,
		solana.TransactionPayer(payer),
	)
	if err != nil {
		return "", fmt.Errorf("assemble transaction: %w", err)
	}

	if s.sponsor != nil && fee == types.FeeSponsored {
		if _, err := tx.PartialSign(func(key solana.PublicKey) *solana.PrivateKey {
			if key.Equals(s.sponsor.PublicKey()) {
				return s.sponsor
			}
			return nil
		}); err != nil {
			return "", fmt.Errorf("sponsor signature failed: %w", err)
		}
	}

	if err := s.signer.SignTransaction(ctx, tx); err != nil {
		return "", fmt.Errorf("sign transaction: %w", err)
	}

	sig, err := s.client.SendTransaction(ctx, tx)
	if err != nil {
		return "", fmt.Errorf("rpc: broadcast failed: %w", err)
	}

	if err := s.awaitConfirmation(ctx, sig); err != nil {
		return "", err
	}

	return sig.String(), nil
}

func (s *RPCSubmitter) feePayer(fee types.FeeMethod) (solana.PublicKey, error) {
	if fee == types.FeeSponsored {
		if s.sponsor == nil {
			return solana.PublicKey{}, ErrNoSponsor
		}
		return s.sponsor.PublicKey(), nil
	}

	payer, ok := s.wallet.Address()
	if !ok {
		return solana.PublicKey{}, ErrNoPayer
	}
	return payer, nil
}

func (s *RPCSubmitter) awaitConfirmation(ctx context.Context, sig solana.Signature) error {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ErrConfirmationTimeout
		case <-ticker.C:
			out, err := s.client.GetSignatureStatuses(ctx, false, sig)
			if err != nil || len(out.Value) == 0 || out.Value[0] == nil {
				continue
			}
			st := out.Value[0]
			if st.Err != nil {
				return fmt.Errorf("transaction failed on chain: %v", st.Err)
			}
			if st.ConfirmationStatus == rpc.ConfirmationStatusConfirmed ||
				st.ConfirmationStatus == rpc.ConfirmationStatusFinalized {
				return nil
			}
		}
	}
}

// RPCBalanceFetcher reads account balances over JSON-RPC, in whole native
// units.
type RPCBalanceFetcher struct {
	client *rpc.Client
}

func NewRPCBalanceFetcher(network types.Network) *RPCBalanceFetcher {
	return &RPCBalanceFetcher{client: rpc.New(network.DefaultRPCEndpoint())}
}

func (f *RPCBalanceFetcher) Balance(ctx context.Context, addr solana.PublicKey) (decimal.Decimal, error) {
	out, err := f.client.GetBalance(ctx, addr, rpc.CommitmentFinalized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("rpc: fetch balance: %w", err)
	}
	return decimal.New(int64(out.Value), 0).Div(lamportsPerUnit), nil
}

// KeypairWallet is a locally funded Wallet for examples and integration
// tests. It is always connected and signs with its own keypair; the real
// app substitutes the passkey SDK session here.
type KeypairWallet struct {
	key solana.PrivateKey
}

var (
	_ Wallet            = (*KeypairWallet)(nil)
	_ TransactionSigner = (*KeypairWallet)(nil)
)

func NewKeypairWallet(key solana.PrivateKey) *KeypairWallet {
	return &KeypairWallet{key: key}
}

func (w *KeypairWallet) IsConnected() bool { return true }

func (w *KeypairWallet) Connect(context.Context) error { return nil }

func (w *KeypairWallet) Address() (solana.PublicKey, bool) {
	return w.key.PublicKey(), true
}

func (w *KeypairWallet) SignTransaction(_ context.Context, tx *solana.Transaction) error {
	_, err := tx.PartialSign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(w.key.PublicKey()) {
			return &w.key
		}
		return nil
	})
	return err
}
