// Copyright 2025 Certen Protocol
//
// Solana Chain Execution Strategy (Stub)
// Implements ChainExecutionStrategy for Solana blockchain
//
// Per Unified Multi-Chain Architecture:
// - Native Ed25519 signature support
// - ~400ms slot times, ~32 slot finality
// - Program-based smart contracts
//
// TODO: Implement full Solana integration

package strategy

import (
	"context"
	"fmt"
)

// =============================================================================
// SOLANA STRATEGY CONFIGURATION
// =============================================================================

// SolanaStrategyConfig holds configuration for the Solana chain strategy
type SolanaStrategyConfig struct {
	// ChainConfig is the base chain configuration
	ChainConfig *ChainConfig

	// RPC endpoint
	RPCURL string

	// Program IDs
	AnchorProgramID string

	// Validator identity
	ValidatorID string

	// Commitment level (processed, confirmed, finalized)
	Commitment string
}

// DefaultSolanaStrategyConfig returns default configuration
func DefaultSolanaStrategyConfig() *SolanaStrategyConfig {
	return &SolanaStrategyConfig{
		Commitment: "finalized",
	}
}

// =============================================================================
// SOLANA CHAIN EXECUTION STRATEGY
// =============================================================================

// SolanaStrategy implements ChainExecutionStrategy for Solana
type SolanaStrategy struct {
	config *SolanaStrategyConfig
}

// NewSolanaStrategy creates a new Solana chain execution strategy
func NewSolanaStrategy(config *SolanaStrategyConfig) (*SolanaStrategy, error) {
	if config == nil {
		config = DefaultSolanaStrategyConfig()
	}

	return &SolanaStrategy{
		config: config,
	}, nil
}

// =============================================================================
// CHAIN EXECUTION STRATEGY INTERFACE IMPLEMENTATION
// =============================================================================

// Platform returns the chain platform identifier
func (s *SolanaStrategy) Platform() ChainPlatform {
	return ChainPlatformSolana
}

// ChainID returns the specific chain ID
func (s *SolanaStrategy) ChainID() string {
	if s.config.ChainConfig != nil {
		return s.config.ChainConfig.ChainID
	}
	return "solana-mainnet"
}

// NetworkName returns the human-readable network name
func (s *SolanaStrategy) NetworkName() string {
	if s.config.ChainConfig != nil {
		return s.config.ChainConfig.NetworkName
	}
	return "solana"
}

// CreateAnchor creates an anchor transaction on Solana (Step 1)
func (s *SolanaStrategy) CreateAnchor(ctx context.Context, req *AnchorRequest) (*AnchorResult, error) {
	// TODO: Implement Solana anchor creation
	// 1. Build instruction for anchor program
	// 2. Create and sign transaction
	// 3. Submit to Solana cluster
	// 4. Return transaction signature

	return nil, fmt.Errorf("SolanaStrategy.CreateAnchor: not implemented")
}

// SubmitProof submits proof for on-chain verification (Step 2)
func (s *SolanaStrategy) SubmitProof(ctx context.Context, anchorID [32]byte, proof *ProofSubmission) (*AnchorResult, error) {
	// TODO: Implement Solana proof submission
	// 1. Build instruction with Ed25519 signatures
	// 2. Create and sign transaction
	// 3. Submit to Solana cluster

	return nil, fmt.Errorf("SolanaStrategy.SubmitProof: not implemented")
}

// ExecuteWithGovernance executes with governance verification (Step 3)
func (s *SolanaStrategy) ExecuteWithGovernance(ctx context.Context, anchorID [32]byte, params *ExecutionParams) (*AnchorResult, error) {
	// TODO: Implement Solana governance execution

	return nil, fmt.Errorf("SolanaStrategy.ExecuteWithGovernance: not implemented")
}

// ObserveTransaction watches a transaction until finalization
func (s *SolanaStrategy) ObserveTransaction(ctx context.Context, txHash string) (*ObservationResult, error) {
	// TODO: Implement Solana transaction observation
	// 1. Get transaction status via getSignatureStatuses
	// 2. Wait for finalized commitment
	// 3. Return observation result

	return nil, fmt.Errorf("SolanaStrategy.ObserveTransaction: not implemented")
}

// ObserveTransactionAsync starts async observation with callbacks
func (s *SolanaStrategy) ObserveTransactionAsync(ctx context.Context, txHash string,
	onFinalized func(*ObservationResult),
	onFailed func(error)) error {

	go func() {
		result, err := s.ObserveTransaction(ctx, txHash)
		if err != nil {
			if onFailed != nil {
				onFailed(err)
			}
			return
		}
		if onFinalized != nil {
			onFinalized(result)
		}
	}()

	return nil
}

// GetRequiredConfirmations returns confirmations needed for finality
func (s *SolanaStrategy) GetRequiredConfirmations() int {
	// Solana uses ~32 slots for finality
	return 32
}

// GetCurrentBlock returns the current slot number
func (s *SolanaStrategy) GetCurrentBlock(ctx context.Context) (uint64, error) {
	// TODO: Implement via getSlot RPC call
	return 0, fmt.Errorf("SolanaStrategy.GetCurrentBlock: not implemented")
}

// GetTransactionReceipt retrieves a transaction receipt
func (s *SolanaStrategy) GetTransactionReceipt(ctx context.Context, txHash string) (*ObservationResult, error) {
	// TODO: Implement via getTransaction RPC call
	return nil, fmt.Errorf("SolanaStrategy.GetTransactionReceipt: not implemented")
}

// EstimateGas estimates compute units for a transaction
func (s *SolanaStrategy) EstimateGas(ctx context.Context, req *AnchorRequest) (uint64, error) {
	// Solana uses compute units, typically 200,000-400,000 for complex transactions
	return 400000, nil
}

// HealthCheck verifies connectivity to Solana
func (s *SolanaStrategy) HealthCheck(ctx context.Context) error {
	// TODO: Implement via getHealth RPC call
	return fmt.Errorf("SolanaStrategy.HealthCheck: not implemented")
}

// Config returns the chain configuration
func (s *SolanaStrategy) Config() *ChainConfig {
	return s.config.ChainConfig
}

// =============================================================================
// FACTORY FUNCTIONS
// =============================================================================

// NewSolanaMainnetStrategy creates a strategy for Solana mainnet
func NewSolanaMainnetStrategy(rpcURL, programID, validatorID string) (*SolanaStrategy, error) {
	config := &SolanaStrategyConfig{
		ChainConfig: &ChainConfig{
			Platform:              ChainPlatformSolana,
			ChainID:               "solana-mainnet",
			NetworkName:           "solana-mainnet",
			RPC:                   rpcURL,
			ContractAddress:       programID,
			RequiredConfirmations: 32,
			Enabled:               true,
		},
		RPCURL:          rpcURL,
		AnchorProgramID: programID,
		ValidatorID:     validatorID,
		Commitment:      "finalized",
	}

	return NewSolanaStrategy(config)
}

// NewSolanaDevnetStrategy creates a strategy for Solana devnet
func NewSolanaDevnetStrategy(rpcURL, programID, validatorID string) (*SolanaStrategy, error) {
	config := &SolanaStrategyConfig{
		ChainConfig: &ChainConfig{
			Platform:              ChainPlatformSolana,
			ChainID:               "solana-devnet",
			NetworkName:           "solana-devnet",
			RPC:                   rpcURL,
			ContractAddress:       programID,
			RequiredConfirmations: 16, // Lower for devnet
			Enabled:               true,
		},
		RPCURL:          rpcURL,
		AnchorProgramID: programID,
		ValidatorID:     validatorID,
		Commitment:      "confirmed",
	}

	return NewSolanaStrategy(config)
}
