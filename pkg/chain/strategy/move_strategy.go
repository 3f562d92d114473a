// Copyright 2025 Certen Protocol
//
// Move Chain Execution Strategy (Stub)
// Implements ChainExecutionStrategy for Move-based chains
//
// Per Unified Multi-Chain Architecture:
// - Native Ed25519 signature support
// - Supports: Aptos, Sui
// - Move smart contracts
//
// TODO: Implement full Move chain integration

package strategy

import (
	"context"
	"fmt"
)

// =============================================================================
// MOVE STRATEGY CONFIGURATION
// =============================================================================

// MoveStrategyConfig holds configuration for the Move chain strategy
type MoveStrategyConfig struct {
	// ChainConfig is the base chain configuration
	ChainConfig *ChainConfig

	// RPC endpoint
	RPCURL string

	// Module/Package addresses
	AnchorModuleAddress string

	// Chain type (aptos or sui)
	MoveChainType string

	// Validator identity
	ValidatorID string
}

// DefaultMoveStrategyConfig returns default configuration
func DefaultMoveStrategyConfig() *MoveStrategyConfig {
	return &MoveStrategyConfig{}
}

// =============================================================================
// MOVE CHAIN EXECUTION STRATEGY
// =============================================================================

// MoveStrategy implements ChainExecutionStrategy for Move chains
type MoveStrategy struct {
	config *MoveStrategyConfig
}

// NewMoveStrategy creates a new Move chain execution strategy
func NewMoveStrategy(config *MoveStrategyConfig) (*MoveStrategy, error) {
	if config == nil {
		config = DefaultMoveStrategyConfig()
	}

	return &MoveStrategy{
		config: config,
	}, nil
}

// =============================================================================
// CHAIN EXECUTION STRATEGY INTERFACE IMPLEMENTATION
// =============================================================================

// Platform returns the chain platform identifier
func (s *MoveStrategy) Platform() ChainPlatform {
	return ChainPlatformMove
}

// ChainID returns the specific chain ID
func (s *MoveStrategy) ChainID() string {
	if s.config.ChainConfig != nil {
		return s.config.ChainConfig.ChainID
	}
	return "move"
}

// NetworkName returns the human-readable network name
func (s *MoveStrategy) NetworkName() string {
	if s.config.ChainConfig != nil {
		return s.config.ChainConfig.NetworkName
	}
	return s.config.MoveChainType
}

// CreateAnchor creates an anchor transaction on Move chain (Step 1)
func (s *MoveStrategy) CreateAnchor(ctx context.Context, req *AnchorRequest) (*AnchorResult, error) {
	// TODO: Implement Move anchor creation
	// Aptos: Build and submit entry function transaction
	// Sui: Build and submit programmable transaction

	return nil, fmt.Errorf("MoveStrategy.CreateAnchor: not implemented")
}

// SubmitProof submits proof for on-chain verification (Step 2)
func (s *MoveStrategy) SubmitProof(ctx context.Context, anchorID [32]byte, proof *ProofSubmission) (*AnchorResult, error) {
	// TODO: Implement Move proof submission

	return nil, fmt.Errorf("MoveStrategy.SubmitProof: not implemented")
}

// ExecuteWithGovernance executes with governance verification (Step 3)
func (s *MoveStrategy) ExecuteWithGovernance(ctx context.Context, anchorID [32]byte, params *ExecutionParams) (*AnchorResult, error) {
	// TODO: Implement Move governance execution

	return nil, fmt.Errorf("MoveStrategy.ExecuteWithGovernance: not implemented")
}

// ObserveTransaction watches a transaction until finalization
func (s *MoveStrategy) ObserveTransaction(ctx context.Context, txHash string) (*ObservationResult, error) {
	// TODO: Implement Move transaction observation
	// Aptos: Query via getTransactionByHash
	// Sui: Query via getTransactionBlock

	return nil, fmt.Errorf("MoveStrategy.ObserveTransaction: not implemented")
}

// ObserveTransactionAsync starts async observation with callbacks
func (s *MoveStrategy) ObserveTransactionAsync(ctx context.Context, txHash string,
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
func (s *MoveStrategy) GetRequiredConfirmations() int {
	// Both Aptos and Sui have fast finality
	// Aptos: ~1 second with BFT
	// Sui: ~480ms with Narwhal/Bullshark
	return 1
}

// GetCurrentBlock returns the current block/version number
func (s *MoveStrategy) GetCurrentBlock(ctx context.Context) (uint64, error) {
	// TODO: Implement based on chain type
	return 0, fmt.Errorf("MoveStrategy.GetCurrentBlock: not implemented")
}

// GetTransactionReceipt retrieves a transaction receipt
func (s *MoveStrategy) GetTransactionReceipt(ctx context.Context, txHash string) (*ObservationResult, error) {
	// TODO: Implement based on chain type
	return nil, fmt.Errorf("MoveStrategy.GetTransactionReceipt: not implemented")
}

// EstimateGas estimates gas for a transaction
func (s *MoveStrategy) EstimateGas(ctx context.Context, req *AnchorRequest) (uint64, error) {
	// TODO: Implement gas estimation
	// Aptos uses gas units, Sui uses gas budget
	return 100000, nil
}

// HealthCheck verifies connectivity to the chain
func (s *MoveStrategy) HealthCheck(ctx context.Context) error {
	// TODO: Implement health check
	return fmt.Errorf("MoveStrategy.HealthCheck: not implemented")
}

// Config returns the chain configuration
func (s *MoveStrategy) Config() *ChainConfig {
	return s.config.ChainConfig
}

// =============================================================================
// FACTORY FUNCTIONS
// =============================================================================

// NewAptosMainnetStrategy creates a strategy for Aptos mainnet
func NewAptosMainnetStrategy(rpcURL, moduleAddress, validatorID string) (*MoveStrategy, error) {
	config := &MoveStrategyConfig{
		ChainConfig: &ChainConfig{
			Platform:              ChainPlatformMove,
			ChainID:               "aptos-mainnet",
			NetworkName:           "aptos",
			RPC:                   rpcURL,
			ContractAddress:       moduleAddress,
			RequiredConfirmations: 1,
			Enabled:               true,
		},
		RPCURL:              rpcURL,
		AnchorModuleAddress: moduleAddress,
		MoveChainType:       "aptos",
		ValidatorID:         validatorID,
	}

	return NewMoveStrategy(config)
}

// NewSuiMainnetStrategy creates a strategy for Sui mainnet
func NewSuiMainnetStrategy(rpcURL, packageID, validatorID string) (*MoveStrategy, error) {
	config := &MoveStrategyConfig{
		ChainConfig: &ChainConfig{
			Platform:              ChainPlatformMove,
			ChainID:               "sui-mainnet",
			NetworkName:           "sui",
			RPC:                   rpcURL,
			ContractAddress:       packageID,
			RequiredConfirmations: 1,
			Enabled:               true,
		},
		RPCURL:              rpcURL,
		AnchorModuleAddress: packageID,
		MoveChainType:       "sui",
		ValidatorID:         validatorID,
	}

	return NewMoveStrategy(config)
}
