package utils

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/payvine/payflow/types"
)

var validate = validator.New()

// ParseConfig parses and validates a Config from JSON, filling defaults
// for omitted fields.
func ParseConfig(data []byte) (*types.Config, error) {
	var cfg types.Config

	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.Normalize()

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	switch cfg.Network {
	case types.NetworkSolanaMainnet, types.NetworkSolanaDevnet, types.NetworkSolanaTestnet:
	default:
		return nil, fmt.Errorf("unsupported network: %s", cfg.Network)
	}

	return &cfg, nil
}

// SerializeResult converts a PaymentResult to JSON.
func SerializeResult(result *types.PaymentResult) ([]byte, error) {
	return json.Marshal(result)
}

// SerializeError converts a PaymentError to JSON.
func SerializeError(perr *types.PaymentError) ([]byte, error) {
	return json.Marshal(perr)
}
