// Copyright 2025 Certen Protocol
//
// NEAR Chain Execution Strategy (Stub)
// Implements ChainExecutionStrategy for NEAR Protocol
//
// Per Unified Multi-Chain Architecture:
// - Native Ed25519 signature support
// - ~1 second blocks with Nightshade sharding
// - Rust/AssemblyScript smart contracts
//
// TODO: Implement full NEAR integration

package strategy

import (
	"context"
	"fmt"
)

// =============================================================================
// NEAR STRATEGY CONFIGURATION
// =============================================================================

// NEARStrategyConfig holds configuration for the NEAR chain strategy
type NEARStrategyConfig struct {
	// ChainConfig is the base chain configuration
	ChainConfig *ChainConfig

	// RPC endpoint
	RPCURL string

	// Contract account
	AnchorContractAccount string

	// Signer account
	SignerAccount string

	// Validator identity
	ValidatorID string
}

// DefaultNEARStrategyConfig returns default configuration
func DefaultNEARStrategyConfig() *NEARStrategyConfig {
	return &NEARStrategyConfig{}
}

// =============================================================================
// NEAR CHAIN EXECUTION STRATEGY
// =============================================================================

// NEARStrategy implements ChainExecutionStrategy for NEAR
type NEARStrategy struct {
	config *NEARStrategyConfig
}

// NewNEARStrategy creates a new NEAR chain execution strategy
func NewNEARStrategy(config *NEARStrategyConfig) (*NEARStrategy, error) {
	if config == nil {
		config = DefaultNEARStrategyConfig()
	}

	return &NEARStrategy{
		config: config,
	}, nil
}

// =============================================================================
// CHAIN EXECUTION STRATEGY INTERFACE IMPLEMENTATION
// =============================================================================

// Platform returns the chain platform identifier
func (s *NEARStrategy) Platform() ChainPlatform {
	return ChainPlatformNEAR
}

// ChainID returns the specific chain ID
func (s *NEARStrategy) ChainID() string {
	if s.config.ChainConfig != nil {
		return s.config.ChainConfig.ChainID
	}
	return "near-mainnet"
}

// NetworkName returns the human-readable network name
func (s *NEARStrategy) NetworkName() string {
	if s.config.ChainConfig != nil {
		return s.config.ChainConfig.NetworkName
	}
	return "near"
}

// CreateAnchor creates an anchor transaction on NEAR (Step 1)
func (s *NEARStrategy) CreateAnchor(ctx context.Context, req *AnchorRequest) (*AnchorResult, error) {
	// TODO: Implement NEAR anchor creation
	// 1. Build FunctionCall action to anchor contract
	// 2. Create and sign transaction
	// 3. Submit via broadcast_tx_commit
	// 4. Return transaction hash

	return nil, fmt.Errorf("NEARStrategy.CreateAnchor: not implemented")
}

// SubmitProof submits proof for on-chain verification (Step 2)
func (s *NEARStrategy) SubmitProof(ctx context.Context, anchorID [32]byte, proof *ProofSubmission) (*AnchorResult, error) {
	// TODO: Implement NEAR proof submission

	return nil, fmt.Errorf("NEARStrategy.SubmitProof: not implemented")
}

// ExecuteWithGovernance executes with governance verification (Step 3)
func (s *NEARStrategy) ExecuteWithGovernance(ctx context.Context, anchorID [32]byte, params *ExecutionParams) (*AnchorResult, error) {
	// TODO: Implement NEAR governance execution

	return nil, fmt.Errorf("NEARStrategy.ExecuteWithGovernance: not implemented")
}

// ObserveTransaction watches a transaction until finalization
func (s *NEARStrategy) ObserveTransaction(ctx context.Context, txHash string) (*ObservationResult, error) {
	// TODO: Implement NEAR transaction observation
	// 1. Query transaction via tx RPC method
	// 2. Check status and block height
	// 3. Wait for finality (~2 blocks)

	return nil, fmt.Errorf("NEARStrategy.ObserveTransaction: not implemented")
}

// ObserveTransactionAsync starts async observation with callbacks
func (s *NEARStrategy) ObserveTransactionAsync(ctx context.Context, txHash string,
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
func (s *NEARStrategy) GetRequiredConfirmations() int {
	// NEAR has ~1 second blocks, 2-3 blocks for finality
	return 3
}

// GetCurrentBlock returns the current block height
func (s *NEARStrategy) GetCurrentBlock(ctx context.Context) (uint64, error) {
	// TODO: Implement via block RPC method
	return 0, fmt.Errorf("NEARStrategy.GetCurrentBlock: not implemented")
}

// GetTransactionReceipt retrieves a transaction receipt
func (s *NEARStrategy) GetTransactionReceipt(ctx context.Context, txHash string) (*ObservationResult, error) {
	// TODO: Implement via tx RPC method
	return nil, fmt.Errorf("NEARStrategy.GetTransactionReceipt: not implemented")
}

// EstimateGas estimates gas for a transaction
func (s *NEARStrategy) EstimateGas(ctx context.Context, req *AnchorRequest) (uint64, error) {
	// TODO: Implement gas estimation
	// NEAR uses TGas (TeraGas), typical: 30-100 TGas
	return 100000000000000, nil // 100 TGas
}

// HealthCheck verifies connectivity to NEAR
func (s *NEARStrategy) HealthCheck(ctx context.Context) error {
	// TODO: Implement via status RPC method
	return fmt.Errorf("NEARStrategy.HealthCheck: not implemented")
}

// Config returns the chain configuration
func (s *NEARStrategy) Config() *ChainConfig {
	return s.config.ChainConfig
}

// =============================================================================
// FACTORY FUNCTIONS
// =============================================================================

// NewNEARMainnetStrategy creates a strategy for NEAR mainnet
func NewNEARMainnetStrategy(rpcURL, contractAccount, signerAccount, validatorID string) (*NEARStrategy, error) {
	config := &NEARStrategyConfig{
		ChainConfig: &ChainConfig{
			Platform:              ChainPlatformNEAR,
			ChainID:               "near-mainnet",
			NetworkName:           "near",
			RPC:                   rpcURL,
			ContractAddress:       contractAccount,
			RequiredConfirmations: 3,
			Enabled:               true,
		},
		RPCURL:                rpcURL,
		AnchorContractAccount: contractAccount,
		SignerAccount:         signerAccount,
		ValidatorID:           validatorID,
	}

	return NewNEARStrategy(config)
}

// NewNEARTestnetStrategy creates a strategy for NEAR testnet
func NewNEARTestnetStrategy(rpcURL, contractAccount, signerAccount, validatorID string) (*NEARStrategy, error) {
	config := &NEARStrategyConfig{
		ChainConfig: &ChainConfig{
			Platform:              ChainPlatformNEAR,
			ChainID:               "near-testnet",
			NetworkName:           "near-testnet",
			RPC:                   rpcURL,
			ContractAddress:       contractAccount,
			RequiredConfirmations: 2,
			Enabled:               true,
		},
		RPCURL:                rpcURL,
		AnchorContractAccount: contractAccount,
		SignerAccount:         signerAccount,
		ValidatorID:           validatorID,
	}

	return NewNEARStrategy(config)
}
