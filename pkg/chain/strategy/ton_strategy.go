// Copyright 2025 Certen Protocol
//
// TON Chain Execution Strategy (Stub)
// Implements ChainExecutionStrategy for TON blockchain
//
// Per Unified Multi-Chain Architecture:
// - Native Ed25519 signature support
// - Asynchronous message-based architecture
// - FunC/Tact smart contracts
//
// TODO: Implement full TON integration

package strategy

import (
	"context"
	"fmt"
)

// =============================================================================
// TON STRATEGY CONFIGURATION
// =============================================================================

// TONStrategyConfig holds configuration for the TON chain strategy
type TONStrategyConfig struct {
	// ChainConfig is the base chain configuration
	ChainConfig *ChainConfig

	// API endpoint (TON Center, etc.)
	APIURL string

	// Contract addresses
	AnchorContractAddress string

	// Wallet configuration
	WalletVersion string // v3r2, v4r2, etc.

	// Validator identity
	ValidatorID string
}

// DefaultTONStrategyConfig returns default configuration
func DefaultTONStrategyConfig() *TONStrategyConfig {
	return &TONStrategyConfig{
		WalletVersion: "v4r2",
	}
}

// =============================================================================
// TON CHAIN EXECUTION STRATEGY
// =============================================================================

// TONStrategy implements ChainExecutionStrategy for TON
type TONStrategy struct {
	config *TONStrategyConfig
}

// NewTONStrategy creates a new TON chain execution strategy
func NewTONStrategy(config *TONStrategyConfig) (*TONStrategy, error) {
	if config == nil {
		config = DefaultTONStrategyConfig()
	}

	return &TONStrategy{
		config: config,
	}, nil
}

// =============================================================================
// CHAIN EXECUTION STRATEGY INTERFACE IMPLEMENTATION
// =============================================================================

// Platform returns the chain platform identifier
func (s *TONStrategy) Platform() ChainPlatform {
	return ChainPlatformTON
}

// ChainID returns the specific chain ID
func (s *TONStrategy) ChainID() string {
	if s.config.ChainConfig != nil {
		return s.config.ChainConfig.ChainID
	}
	return "ton-mainnet"
}

// NetworkName returns the human-readable network name
func (s *TONStrategy) NetworkName() string {
	if s.config.ChainConfig != nil {
		return s.config.ChainConfig.NetworkName
	}
	return "ton"
}

// CreateAnchor creates an anchor transaction on TON (Step 1)
func (s *TONStrategy) CreateAnchor(ctx context.Context, req *AnchorRequest) (*AnchorResult, error) {
	// TODO: Implement TON anchor creation
	// 1. Build internal message to anchor contract
	// 2. Create and sign external message from wallet
	// 3. Submit to TON network
	// 4. Return transaction hash (message hash)

	return nil, fmt.Errorf("TONStrategy.CreateAnchor: not implemented")
}

// SubmitProof submits proof for on-chain verification (Step 2)
func (s *TONStrategy) SubmitProof(ctx context.Context, anchorID [32]byte, proof *ProofSubmission) (*AnchorResult, error) {
	// TODO: Implement TON proof submission

	return nil, fmt.Errorf("TONStrategy.SubmitProof: not implemented")
}

// ExecuteWithGovernance executes with governance verification (Step 3)
func (s *TONStrategy) ExecuteWithGovernance(ctx context.Context, anchorID [32]byte, params *ExecutionParams) (*AnchorResult, error) {
	// TODO: Implement TON governance execution

	return nil, fmt.Errorf("TONStrategy.ExecuteWithGovernance: not implemented")
}

// ObserveTransaction watches a transaction until finalization
func (s *TONStrategy) ObserveTransaction(ctx context.Context, txHash string) (*ObservationResult, error) {
	// TODO: Implement TON transaction observation
	// 1. Query transaction via getTransactions
	// 2. Check block seqno and workchain
	// 3. Wait for sufficient confirmations

	return nil, fmt.Errorf("TONStrategy.ObserveTransaction: not implemented")
}

// ObserveTransactionAsync starts async observation with callbacks
func (s *TONStrategy) ObserveTransactionAsync(ctx context.Context, txHash string,
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
func (s *TONStrategy) GetRequiredConfirmations() int {
	// TON has ~5 second blocks, ~10 blocks for safety
	return 10
}

// GetCurrentBlock returns the current seqno
func (s *TONStrategy) GetCurrentBlock(ctx context.Context) (uint64, error) {
	// TODO: Implement via getMasterchainInfo
	return 0, fmt.Errorf("TONStrategy.GetCurrentBlock: not implemented")
}

// GetTransactionReceipt retrieves a transaction receipt
func (s *TONStrategy) GetTransactionReceipt(ctx context.Context, txHash string) (*ObservationResult, error) {
	// TODO: Implement via getTransactions
	return nil, fmt.Errorf("TONStrategy.GetTransactionReceipt: not implemented")
}

// EstimateGas estimates gas for a transaction
func (s *TONStrategy) EstimateGas(ctx context.Context, req *AnchorRequest) (uint64, error) {
	// TODO: Implement gas estimation
	// TON uses gas units similar to EVM
	return 100000, nil
}

// HealthCheck verifies connectivity to TON
func (s *TONStrategy) HealthCheck(ctx context.Context) error {
	// TODO: Implement via getMasterchainInfo
	return fmt.Errorf("TONStrategy.HealthCheck: not implemented")
}

// Config returns the chain configuration
func (s *TONStrategy) Config() *ChainConfig {
	return s.config.ChainConfig
}

// =============================================================================
// FACTORY FUNCTIONS
// =============================================================================

// NewTONMainnetStrategy creates a strategy for TON mainnet
func NewTONMainnetStrategy(apiURL, contractAddress, validatorID string) (*TONStrategy, error) {
	config := &TONStrategyConfig{
		ChainConfig: &ChainConfig{
			Platform:              ChainPlatformTON,
			ChainID:               "ton-mainnet",
			NetworkName:           "ton",
			RPC:                   apiURL,
			ContractAddress:       contractAddress,
			RequiredConfirmations: 10,
			Enabled:               true,
		},
		APIURL:                apiURL,
		AnchorContractAddress: contractAddress,
		WalletVersion:         "v4r2",
		ValidatorID:           validatorID,
	}

	return NewTONStrategy(config)
}
