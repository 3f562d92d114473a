// Copyright 2025 Certen Protocol
//
// CosmWasm Chain Execution Strategy (Stub)
// Implements ChainExecutionStrategy for Cosmos SDK chains with CosmWasm
//
// Per Unified Multi-Chain Architecture:
// - Native Ed25519/Secp256k1 signature support
// - Tendermint/CometBFT consensus (~6s blocks)
// - CosmWasm smart contracts
// - Supports: Osmosis, Neutron, Injective, Juno
//
// TODO: Implement full CosmWasm integration

package strategy

import (
	"context"
	"fmt"
)

// =============================================================================
// COSMWASM STRATEGY CONFIGURATION
// =============================================================================

// CosmWasmStrategyConfig holds configuration for the CosmWasm chain strategy
type CosmWasmStrategyConfig struct {
	// ChainConfig is the base chain configuration
	ChainConfig *ChainConfig

	// RPC endpoints
	RPCURL  string
	GRPCURL string

	// Contract addresses
	AnchorContractAddress string

	// Chain-specific
	ChainPrefix string // e.g., "osmo", "neutron", "inj"
	Denom       string // e.g., "uosmo", "untrn"

	// Validator identity
	ValidatorID string
}

// DefaultCosmWasmStrategyConfig returns default configuration
func DefaultCosmWasmStrategyConfig() *CosmWasmStrategyConfig {
	return &CosmWasmStrategyConfig{}
}

// =============================================================================
// COSMWASM CHAIN EXECUTION STRATEGY
// =============================================================================

// CosmWasmStrategy implements ChainExecutionStrategy for CosmWasm chains
type CosmWasmStrategy struct {
	config *CosmWasmStrategyConfig
}

// NewCosmWasmStrategy creates a new CosmWasm chain execution strategy
func NewCosmWasmStrategy(config *CosmWasmStrategyConfig) (*CosmWasmStrategy, error) {
	if config == nil {
		config = DefaultCosmWasmStrategyConfig()
	}

	return &CosmWasmStrategy{
		config: config,
	}, nil
}

// =============================================================================
// CHAIN EXECUTION STRATEGY INTERFACE IMPLEMENTATION
// =============================================================================

// Platform returns the chain platform identifier
func (s *CosmWasmStrategy) Platform() ChainPlatform {
	return ChainPlatformCosmWasm
}

// ChainID returns the specific chain ID
func (s *CosmWasmStrategy) ChainID() string {
	if s.config.ChainConfig != nil {
		return s.config.ChainConfig.ChainID
	}
	return "cosmwasm"
}

// NetworkName returns the human-readable network name
func (s *CosmWasmStrategy) NetworkName() string {
	if s.config.ChainConfig != nil {
		return s.config.ChainConfig.NetworkName
	}
	return "cosmwasm"
}

// CreateAnchor creates an anchor transaction on CosmWasm (Step 1)
func (s *CosmWasmStrategy) CreateAnchor(ctx context.Context, req *AnchorRequest) (*AnchorResult, error) {
	// TODO: Implement CosmWasm anchor creation
	// 1. Build MsgExecuteContract with anchor parameters
	// 2. Sign and broadcast transaction
	// 3. Wait for block inclusion
	// 4. Return transaction hash

	return nil, fmt.Errorf("CosmWasmStrategy.CreateAnchor: not implemented")
}

// SubmitProof submits proof for on-chain verification (Step 2)
func (s *CosmWasmStrategy) SubmitProof(ctx context.Context, anchorID [32]byte, proof *ProofSubmission) (*AnchorResult, error) {
	// TODO: Implement CosmWasm proof submission
	// 1. Build MsgExecuteContract with proof data
	// 2. Include Ed25519 signatures
	// 3. Sign and broadcast transaction

	return nil, fmt.Errorf("CosmWasmStrategy.SubmitProof: not implemented")
}

// ExecuteWithGovernance executes with governance verification (Step 3)
func (s *CosmWasmStrategy) ExecuteWithGovernance(ctx context.Context, anchorID [32]byte, params *ExecutionParams) (*AnchorResult, error) {
	// TODO: Implement CosmWasm governance execution

	return nil, fmt.Errorf("CosmWasmStrategy.ExecuteWithGovernance: not implemented")
}

// ObserveTransaction watches a transaction until finalization
func (s *CosmWasmStrategy) ObserveTransaction(ctx context.Context, txHash string) (*ObservationResult, error) {
	// TODO: Implement CosmWasm transaction observation
	// 1. Query transaction via GetTx
	// 2. Check block height and confirmations
	// 3. Return observation result

	return nil, fmt.Errorf("CosmWasmStrategy.ObserveTransaction: not implemented")
}

// ObserveTransactionAsync starts async observation with callbacks
func (s *CosmWasmStrategy) ObserveTransactionAsync(ctx context.Context, txHash string,
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
func (s *CosmWasmStrategy) GetRequiredConfirmations() int {
	// Tendermint/CometBFT has instant finality after block is committed
	// But we wait for a few blocks for safety
	return 2
}

// GetCurrentBlock returns the current block height
func (s *CosmWasmStrategy) GetCurrentBlock(ctx context.Context) (uint64, error) {
	// TODO: Implement via GetLatestBlock query
	return 0, fmt.Errorf("CosmWasmStrategy.GetCurrentBlock: not implemented")
}

// GetTransactionReceipt retrieves a transaction receipt
func (s *CosmWasmStrategy) GetTransactionReceipt(ctx context.Context, txHash string) (*ObservationResult, error) {
	// TODO: Implement via GetTx query
	return nil, fmt.Errorf("CosmWasmStrategy.GetTransactionReceipt: not implemented")
}

// EstimateGas estimates gas for a transaction
func (s *CosmWasmStrategy) EstimateGas(ctx context.Context, req *AnchorRequest) (uint64, error) {
	// TODO: Implement via simulation
	// Typical CosmWasm anchor: 200,000-500,000 gas
	return 500000, nil
}

// HealthCheck verifies connectivity to the chain
func (s *CosmWasmStrategy) HealthCheck(ctx context.Context) error {
	// TODO: Implement via GetNodeInfo query
	return fmt.Errorf("CosmWasmStrategy.HealthCheck: not implemented")
}

// Config returns the chain configuration
func (s *CosmWasmStrategy) Config() *ChainConfig {
	return s.config.ChainConfig
}

// =============================================================================
// FACTORY FUNCTIONS
// =============================================================================

// NewOsmosisStrategy creates a strategy for Osmosis mainnet
func NewOsmosisStrategy(rpcURL, contractAddress, validatorID string) (*CosmWasmStrategy, error) {
	config := &CosmWasmStrategyConfig{
		ChainConfig: &ChainConfig{
			Platform:              ChainPlatformCosmWasm,
			ChainID:               "osmosis-1",
			NetworkName:           "osmosis",
			RPC:                   rpcURL,
			ContractAddress:       contractAddress,
			RequiredConfirmations: 2,
			Enabled:               true,
		},
		RPCURL:                rpcURL,
		AnchorContractAddress: contractAddress,
		ChainPrefix:           "osmo",
		Denom:                 "uosmo",
		ValidatorID:           validatorID,
	}

	return NewCosmWasmStrategy(config)
}

// NewNeutronStrategy creates a strategy for Neutron mainnet
func NewNeutronStrategy(rpcURL, contractAddress, validatorID string) (*CosmWasmStrategy, error) {
	config := &CosmWasmStrategyConfig{
		ChainConfig: &ChainConfig{
			Platform:              ChainPlatformCosmWasm,
			ChainID:               "neutron-1",
			NetworkName:           "neutron",
			RPC:                   rpcURL,
			ContractAddress:       contractAddress,
			RequiredConfirmations: 2,
			Enabled:               true,
		},
		RPCURL:                rpcURL,
		AnchorContractAddress: contractAddress,
		ChainPrefix:           "neutron",
		Denom:                 "untrn",
		ValidatorID:           validatorID,
	}

	return NewCosmWasmStrategy(config)
}

// NewInjectiveStrategy creates a strategy for Injective mainnet
func NewInjectiveStrategy(rpcURL, contractAddress, validatorID string) (*CosmWasmStrategy, error) {
	config := &CosmWasmStrategyConfig{
		ChainConfig: &ChainConfig{
			Platform:              ChainPlatformCosmWasm,
			ChainID:               "injective-1",
			NetworkName:           "injective",
			RPC:                   rpcURL,
			ContractAddress:       contractAddress,
			RequiredConfirmations: 2,
			Enabled:               true,
		},
		RPCURL:                rpcURL,
		AnchorContractAddress: contractAddress,
		ChainPrefix:           "inj",
		Denom:                 "inj",
		ValidatorID:           validatorID,
	}

	return NewCosmWasmStrategy(config)
}
