package types

import "fmt"

// Network identifies a target cluster.
type Network string

const (
	NetworkSolanaMainnet Network = "solana-mainnet"
	NetworkSolanaDevnet  Network = "solana-devnet"
	NetworkSolanaTestnet Network = "solana-testnet"
)

func (n Network) String() string { return string(n) }

func (n Network) IsTestnet() bool {
	return n == NetworkSolanaDevnet || n == NetworkSolanaTestnet
}

// cluster is the explorer query value for non-mainnet networks.
func (n Network) cluster() string {
	switch n {
	case NetworkSolanaDevnet:
		return "devnet"
	case NetworkSolanaTestnet:
		return "testnet"
	default:
		return ""
	}
}

// ExplorerTxURL returns the public explorer link for a transaction
// signature on this network.
func (n Network) ExplorerTxURL(signature string) string {
	if c := n.cluster(); c != "" {
		return fmt.Sprintf("https://explorer.solana.com/tx/%s?cluster=%s", signature, c)
	}
	return fmt.Sprintf("https://explorer.solana.com/tx/%s", signature)
}

// DefaultRPCEndpoint returns the stock public RPC endpoint for the network.
func (n Network) DefaultRPCEndpoint() string {
	switch n {
	case NetworkSolanaMainnet:
		return "https://api.mainnet-beta.solana.com"
	case NetworkSolanaTestnet:
		return "https://api.testnet.solana.com"
	default:
		return "https://api.devnet.solana.com"
	}
}
