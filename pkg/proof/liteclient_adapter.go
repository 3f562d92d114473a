// Copyright 2025 Certen Protocol
//
// LiteClient Proof Generator Adapter - Integrates Accumulate lite client proof system
// Uses the REAL proof implementations from:
//   - working-proof_do_not_edit/ for L1-L3 chained proofs
//   - consolidated_governance-proof/ for G0/G1/G2 governance proofs

package proof

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"

	comethttp "github.com/cometbft/cometbft/rpc/client/http"
	lcbackend "github.com/shadowatlas/registry/accumulate-lite-client-2/liteclient/backend"
	lcproof "github.com/shadowatlas/registry/accumulate-lite-client-2/liteclient/proof"
	chained_proof "github.com/shadowatlas/registry/accumulate-lite-client-2/liteclient/proof/working-proof_do_not_edit"
	lctypes "github.com/shadowatlas/registry/accumulate-lite-client-2/liteclient/types"
	"gitlab.com/accumulatenetwork/accumulate/pkg/api/v3/jsonrpc"
	"gitlab.com/accumulatenetwork/accumulate/pkg/database/merkle"
)

// LiteClientProofGenerator adapts the Accumulate lite client proof system
// into Certen's ProofGenerator interface for production-grade proof generation.
// Uses the REAL ProofBuilder from working-proof_do_not_edit/ for L1-L3 proofs.
type LiteClientProofGenerator struct {
	backend      lctypes.DataBackend
	v3Client     *jsonrpc.Client
	cometDN      *comethttp.HTTP
	cometBVN     *comethttp.HTTP
	proofBuilder *chained_proof.ProofBuilder
	endpoint     string
	dnEndpoint   string
	bvnEndpoint  string
	timeout      time.Duration
}

// NewLiteClientProofGenerator creates a new lite client proof generator
// that connects directly to Accumulate v3 API for real cryptographic proofs.
// For backward compatibility, uses default DevNet CometBFT endpoints.
func NewLiteClientProofGenerator(v3Endpoint string, timeout time.Duration) (*LiteClientProofGenerator, error) {
	// Use default DevNet CometBFT endpoints
	// These match the ports exposed in devnet-accumulate-instance/docker-compose.yml
	dnCometEndpoint := "http://127.0.0.1:26657"
	bvnCometEndpoint := "http://127.0.0.1:26757"

	return NewLiteClientProofGeneratorWithComet(v3Endpoint, dnCometEndpoint, bvnCometEndpoint, timeout)
}

// NewLiteClientProofGeneratorWithComet creates a proof generator with explicit CometBFT endpoints.
// This is required for the REAL L1-L3 chained proofs with consensus binding.
func NewLiteClientProofGeneratorWithComet(v3Endpoint, dnCometEndpoint, bvnCometEndpoint string, timeout time.Duration) (*LiteClientProofGenerator, error) {
	if v3Endpoint == "" {
		return nil, fmt.Errorf("v3Endpoint cannot be empty")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	// Create V3Backend for basic account queries
	backend, err := lcbackend.NewRPCDataBackendV3(v3Endpoint)
	if err != nil {
		return nil, fmt.Errorf("create v3 backend: %w", err)
	}

	// Create V3 JSON-RPC client for real proof builder
	v3Client := jsonrpc.NewClient(v3Endpoint)

	// Create CometBFT clients for consensus binding (optional - may fail if DevNet not running)
	var cometDN, cometBVN *comethttp.HTTP
	var proofBuilder *chained_proof.ProofBuilder

	if dnCometEndpoint != "" && bvnCometEndpoint != "" {
		cometDN, err = comethttp.New(dnCometEndpoint, "/websocket")
		if err != nil {
			log.Printf("[PROOF] Warning: DN CometBFT client failed (proofs will be partial): %v", err)
		}

		cometBVN, err = comethttp.New(bvnCometEndpoint, "/websocket")
		if err != nil {
			log.Printf("[PROOF] Warning: BVN CometBFT client failed (proofs will be partial): %v", err)
		}

		// Create real ProofBuilder if both CometBFT clients are available
		if cometDN != nil && cometBVN != nil {
			proofBuilder = chained_proof.NewProofBuilder(v3Client, cometDN, cometBVN, true)
			proofBuilder.WithArtifacts = true
			log.Printf("[PROOF] ✅ Real ProofBuilder initialized with CometBFT consensus binding")
		}
	}

	if proofBuilder == nil {
		log.Printf("[PROOF] ⚠️ ProofBuilder not available - using basic proof mode")
	}

	return &LiteClientProofGenerator{
		backend:      backend,
		v3Client:     v3Client,
		cometDN:      cometDN,
		cometBVN:     cometBVN,
		proofBuilder: proofBuilder,
		endpoint:     v3Endpoint,
		dnEndpoint:   dnCometEndpoint,
		bvnEndpoint:  bvnCometEndpoint,
		timeout:      timeout,
	}, nil
}

// GenerateAccumulateProof generates a CompleteProof for the given account URL.
// This is a simplified version - for full L1-L3 proofs with consensus binding,
// use GenerateChainedProof with txHash and bvn parameters.
func (g *LiteClientProofGenerator) GenerateAccumulateProof(ctx context.Context, accountURL string) (*lcproof.CompleteProof, error) {
	if accountURL == "" {
		return nil, fmt.Errorf("accountURL cannot be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	// Query account to verify it exists
	account, err := g.backend.QueryAccount(ctx, accountURL)
	if err != nil {
		return nil, fmt.Errorf("query account %s: %w", accountURL, err)
	}
	if account == nil {
		return nil, fmt.Errorf("account %s not found", accountURL)
	}

	// Return a minimal proof structure - full proofs require txHash and bvn
	return &lcproof.CompleteProof{
		AccountURL: accountURL,
		Verified:   false,
		Error:      "partial_proof: use GenerateChainedProof with txHash and bvn for full L1-L3 proof",
	}, nil
}

// GenerateChainedProof generates a REAL L1-L3 chained proof with consensus binding.
// This is the production-grade proof method that uses the real ProofBuilder.
// Parameters:
//   - accountURL: The account URL (e.g., acc://certen-demo.acme/data)
//   - txHash: The transaction hash (64-char hex, no 0x prefix)
//   - bvn: The BVN partition (e.g., "bvn1")
func (g *LiteClientProofGenerator) GenerateChainedProof(ctx context.Context, accountURL, txHash, bvn string) (*chained_proof.ChainedProof, error) {
	if g.proofBuilder == nil {
		return nil, fmt.Errorf("proofBuilder not available - CometBFT endpoints required for L1-L3 proofs")
	}
	if accountURL == "" {
		return nil, fmt.Errorf("accountURL cannot be empty")
	}
	if txHash == "" {
		return nil, fmt.Errorf("txHash cannot be empty for L1-L3 proof")
	}

	// CRITICAL FIX: Validate and normalize BVN partition
	// The BVN must be a valid partition name like "bvn0", "bvn1", etc.
	// It should NOT be "acc://dn" or empty - those are invalid for L1-L3 proofs
	bvn = normalizeBVNPartition(bvn, accountURL)

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	log.Printf("[PROOF] 🔨 Building REAL L1-L3 chained proof for %s (txHash=%s, bvn=%s)", accountURL, txHash[:16]+"...", bvn)

	// Build real proof using the working-proof_do_not_edit ProofBuilder
	chainedProof, err := g.proofBuilder.BuildProof(ctx, chained_proof.ProofInput{
		Account: accountURL,
		TxHash:  txHash,
		BVN:     bvn,
	})
	if err != nil {
		return nil, fmt.Errorf("build chained proof: %w", err)
	}

	log.Printf("[PROOF] ✅ L1-L3 chained proof built successfully:")
	log.Printf("[PROOF]    L1: TxChainIndex=%d, BVNMinorBlockIndex=%d", chainedProof.Layer1.TxChainIndex, chainedProof.Layer1.BVNMinorBlockIndex)
	log.Printf("[PROOF]    L2: DNMinorBlockIndex=%d", chainedProof.Layer2.DNMinorBlockIndex)
	log.Printf("[PROOF]    L3: DNConsensusHeight=%d", chainedProof.Layer3.DNConsensusHeight)

	return chainedProof, nil
}

// ChainedProofToCompleteProof converts a ChainedProof to CompleteProof format
// for compatibility with existing code that expects CompleteProof.
// CRITICAL: This must preserve ALL proof data for PostgreSQL storage.
func ChainedProofToCompleteProof(cp *chained_proof.ChainedProof) *lcproof.CompleteProof {
	if cp == nil {
		return nil
	}

	complete := &lcproof.CompleteProof{
		AccountURL:  cp.Input.Account,
		BlockHeight: cp.Layer3.DNConsensusHeight,
		Partition:   cp.Input.BVN,
		Verified:    true,
	}

	// Convert Layer1 data (Account → BVN root anchor)
	// Layer1.Leaf = txHash (account/tx identifier)
	// Layer1.BVNRootChainAnchor = BPT root at BVN level
	if cp.Layer1.Leaf != "" {
		complete.AccountHash = hexToBytes(cp.Layer1.Leaf)
	}
	if cp.Layer1.BVNRootChainAnchor != "" {
		complete.BPTRoot = hexToBytes(cp.Layer1.BVNRootChainAnchor)
	}

	// Convert Layer1 Receipt to MainChainProof
	complete.MainChainProof = convertChainedReceipt(&cp.Layer1.Receipt)

	// Convert Layer2 data (BVN anchor → DN anchor)
	// Create BVN anchor proof from Layer2 receipts
	complete.BVNAnchorProof = &lcproof.PartitionAnchor{
		Partition: cp.Input.BVN,
		Receipt:   convertChainedReceipt(&cp.Layer2.RootReceipt),
	}

	// Convert BPT receipt from Layer2
	complete.BPTProof = convertChainedReceipt(&cp.Layer2.BptReceipt)

	// Convert Layer3 data (DN anchor → consensus)
	// DNStateTreeAnchor = final block hash at consensus height
	if cp.Layer3.DNStateTreeAnchor != "" {
		complete.BlockHash = hexToBytes(cp.Layer3.DNStateTreeAnchor)
	}

	// Create DN anchor proof from Layer3 receipts
	complete.DNAnchorProof = &lcproof.PartitionAnchor{
		Partition: "directory",
		Receipt:   convertChainedReceipt(&cp.Layer3.RootReceipt),
	}

	// Create combined receipt from Layer3 BPT receipt (final proof path)
	complete.CombinedReceipt = convertChainedReceipt(&cp.Layer3.BptReceipt)

	log.Printf("[PROOF] ChainedProofToCompleteProof: converted L1-L3 proof data")
	log.Printf("[PROOF]   AccountHash: %d bytes", len(complete.AccountHash))
	log.Printf("[PROOF]   BPTRoot: %d bytes", len(complete.BPTRoot))
	log.Printf("[PROOF]   BlockHash: %d bytes", len(complete.BlockHash))
	log.Printf("[PROOF]   MainChainProof: %v", complete.MainChainProof != nil)
	log.Printf("[PROOF]   BVNAnchorProof: %v", complete.BVNAnchorProof != nil)
	log.Printf("[PROOF]   DNAnchorProof: %v", complete.DNAnchorProof != nil)
	log.Printf("[PROOF]   BPTProof: %v", complete.BPTProof != nil)
	log.Printf("[PROOF]   CombinedReceipt: %v", complete.CombinedReceipt != nil)

	return complete
}

// convertChainedReceipt converts a chained_proof.Receipt to merkle.Receipt
func convertChainedReceipt(r *chained_proof.Receipt) *merkle.Receipt {
	if r == nil || r.Start == "" {
		return nil
	}

	receipt := &merkle.Receipt{
		Start:  hexToBytes(r.Start),
		Anchor: hexToBytes(r.Anchor),
	}

	// Convert each step in the receipt
	for _, step := range r.Entries {
		entry := &merkle.ReceiptEntry{
			Hash:  hexToBytes(step.Hash),
			Right: step.Right,
		}
		receipt.Entries = append(receipt.Entries, entry)
	}

	return receipt
}

// hexToBytes converts a hex string to bytes, returning nil on error
func hexToBytes(s string) []byte {
	if s == "" {
		return nil
	}
	// Remove 0x prefix if present
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		log.Printf("[PROOF] hexToBytes failed for %q: %v", truncateString(s, 16), err)
		return nil
	}
	return b
}

// GenerateProofForIntent generates an Accumulate proof for a CERTEN intent.
// For full L1-L3 proofs, use GenerateChainedProofForIntent with txHash.
func (g *LiteClientProofGenerator) GenerateProofForIntent(ctx context.Context, intentURL string) (*lcproof.CompleteProof, error) {
	return g.GenerateAccumulateProof(ctx, intentURL)
}

// GenerateChainedProofForIntent generates a REAL L1-L3 proof for a CERTEN intent transaction.
// This should be called when the transaction hash is known (after the intent is discovered).
func (g *LiteClientProofGenerator) GenerateChainedProofForIntent(ctx context.Context, accountURL, txHash, bvn string) (*chained_proof.ChainedProof, error) {
	return g.GenerateChainedProof(ctx, accountURL, txHash, bvn)
}

// HasRealProofBuilder returns true if the real L1-L3 proof builder is available.
func (g *LiteClientProofGenerator) HasRealProofBuilder() bool {
	return g.proofBuilder != nil
}

// VerifyProof verifies a CompleteProof using the lite client verification system.
// This performs structural validation of the proof components.
// Full cryptographic verification requires CometBFT consensus bindings.
func (g *LiteClientProofGenerator) VerifyProof(proof *lcproof.CompleteProof) error {
	if proof == nil {
		return fmt.Errorf("proof is nil")
	}

	// Validate basic proof structure
	errors := validateProofStructure(proof)
	if len(errors) > 0 {
		return fmt.Errorf("proof validation failed: %v", errors)
	}

	// Validate Merkle receipt integrity for each proof layer
	if proof.MainChainProof != nil {
		if err := validateMerkleReceipt(proof.MainChainProof, "main_chain"); err != nil {
			return err
		}
	}

	if proof.BPTProof != nil {
		if err := validateMerkleReceipt(proof.BPTProof, "bpt"); err != nil {
			return err
		}
	}

	if proof.CombinedReceipt != nil {
		if err := validateMerkleReceipt(proof.CombinedReceipt, "combined"); err != nil {
			return err
		}
	}

	// Validate BVN anchor proof
	if proof.BVNAnchorProof != nil && proof.BVNAnchorProof.Receipt != nil {
		if err := validateMerkleReceipt(proof.BVNAnchorProof.Receipt, "bvn_anchor"); err != nil {
			return err
		}
	}

	// Validate DN anchor proof
	if proof.DNAnchorProof != nil && proof.DNAnchorProof.Receipt != nil {
		if err := validateMerkleReceipt(proof.DNAnchorProof.Receipt, "dn_anchor"); err != nil {
			return err
		}
	}

	return nil
}

// validateProofStructure checks the basic structure of a CompleteProof
func validateProofStructure(proof *lcproof.CompleteProof) []string {
	var errors []string

	// At least one proof component should be present
	hasComponent := proof.MainChainProof != nil ||
		proof.BPTProof != nil ||
		proof.BVNAnchorProof != nil ||
		proof.DNAnchorProof != nil ||
		proof.CombinedReceipt != nil

	if !hasComponent {
		errors = append(errors, "proof has no valid components")
	}

	// If we have block info, validate it
	if proof.BlockHeight > 0 {
		if len(proof.BlockHash) == 0 {
			errors = append(errors, "block_height present but block_hash empty")
		}
	}

	// Validate BPT root if present
	if len(proof.BPTRoot) > 0 && len(proof.BPTRoot) != 32 {
		errors = append(errors, fmt.Sprintf("invalid bpt_root length: got %d, want 32", len(proof.BPTRoot)))
	}

	// Validate account hash if present
	if len(proof.AccountHash) > 0 && len(proof.AccountHash) != 32 {
		errors = append(errors, fmt.Sprintf("invalid account_hash length: got %d, want 32", len(proof.AccountHash)))
	}

	return errors
}

// validateMerkleReceipt validates the integrity of a Merkle receipt
// This includes both structural validation and cryptographic path verification
func validateMerkleReceipt(receipt *merkle.Receipt, name string) error {
	if receipt == nil {
		return nil // nil receipt is valid (not present)
	}

	// Start hash should be present
	if len(receipt.Start) == 0 {
		return fmt.Errorf("%s receipt: missing start hash", name)
	}

	// If entries are present, validate their structure
	for i, entry := range receipt.Entries {
		if entry == nil {
			return fmt.Errorf("%s receipt: nil entry at index %d", name, i)
		}
		if len(entry.Hash) == 0 {
			return fmt.Errorf("%s receipt: empty hash at index %d", name, i)
		}
		// Hash should be 32 bytes (SHA256)
		if len(entry.Hash) != 32 {
			return fmt.Errorf("%s receipt: invalid hash length at index %d: got %d, want 32", name, i, len(entry.Hash))
		}
	}

	// Perform cryptographic Merkle path verification
	// This verifies that applying all entries to the start hash produces the anchor
	if err := verifyMerklePathCryptographic(receipt, name); err != nil {
		return err
	}

	return nil
}

// verifyMerklePathCryptographic verifies that the Merkle path is cryptographically valid
// It recomputes the hash chain from Start through all Entries and verifies it matches Anchor
func verifyMerklePathCryptographic(receipt *merkle.Receipt, name string) error {
	if receipt == nil || len(receipt.Entries) == 0 {
		// No entries to verify - Start is the anchor
		return nil
	}

	// Start with the initial hash
	current := make([]byte, 32)
	copy(current, receipt.Start)

	// Apply each entry in the Merkle path
	for i, entry := range receipt.Entries {
		if entry == nil || len(entry.Hash) != 32 {
			return fmt.Errorf("%s receipt: invalid entry at index %d for cryptographic verification", name, i)
		}

		// Combine current hash with entry hash based on position (Left or Right)
		// In Accumulate's Merkle trees: H(left || right)
		var combined []byte
		if entry.Right {
			// Entry hash goes on the right: H(current || entry.Hash)
			combined = append(current, entry.Hash...)
		} else {
			// Entry hash goes on the left: H(entry.Hash || current)
			combined = append(entry.Hash, current...)
		}

		// Compute SHA256 of the combined hashes
		newHash := sha256Hash(combined)
		current = newHash[:]
	}

	// Verify the computed hash matches the anchor (if anchor is present)
	if len(receipt.Anchor) == 32 {
		if !bytesEqual(current, receipt.Anchor) {
			return fmt.Errorf("%s receipt: cryptographic verification failed - computed anchor does not match", name)
		}
	}

	return nil
}

// sha256Hash computes SHA256 hash of data
func sha256Hash(data []byte) [32]byte {
	// Use crypto/sha256 for hash computation
	var result [32]byte
	h := sha256.Sum256(data)
	copy(result[:], h[:])
	return result
}

// bytesEqual compares two byte slices for equality
func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// truncateString truncates a string to maxLen characters, adding "..." if truncated
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// normalizeBVNPartition validates and normalizes the BVN partition for L1-L3 proofs.
// Returns a valid BVN name like "bvn0", "bvn1", etc.
// If the input is invalid (e.g., "acc://dn", empty), it determines the correct BVN.
func normalizeBVNPartition(bvn, accountURL string) string {
	bvn = strings.ToLower(strings.TrimSpace(bvn))

	// Check if already a valid BVN partition name
	if strings.HasPrefix(bvn, "bvn") && len(bvn) >= 4 {
		// Already looks like a valid BVN (bvn0, bvn1, bvn2, etc.)
		log.Printf("[PROOF] BVN partition validated: %s", bvn)
		return bvn
	}

	// Invalid or missing BVN - need to determine the correct one
	log.Printf("[PROOF] ⚠️ Invalid BVN partition '%s' for account %s - determining correct BVN", bvn, accountURL)

	// For DevNet/single-BVN setups, all non-DN accounts live on bvn1
	// TODO: For multi-BVN setups, query the routing to determine the correct BVN
	// This can be done via the V3 API's routing query or by parsing the account URL
	defaultBVN := "bvn1"

	// Heuristic: Parse account URL to guess BVN
	// In Accumulate, the routing is based on the account hash, but for most DevNet setups
	// there's only one BVN (bvn1). For production, we'd need to query the routing.
	if strings.Contains(accountURL, "acc://dn") {
		// DN accounts don't need BVN routing - but this shouldn't happen for L1-L3 proofs
		log.Printf("[PROOF] ⚠️ Account appears to be on DN, defaulting to %s", defaultBVN)
	}

	log.Printf("[PROOF] ✅ Using BVN partition: %s (corrected from '%s')", defaultBVN, bvn)
	return defaultBVN
}

// GetEndpoint returns the Accumulate v3 endpoint being used
func (g *LiteClientProofGenerator) GetEndpoint() string {
	return g.endpoint
}

// GetTimeout returns the configured timeout for API calls
func (g *LiteClientProofGenerator) GetTimeout() time.Duration {
	return g.timeout
}

// CertenProofAdapter adapts lite client CompleteProof to legacy CertenProof interface
// This provides backward compatibility while transitioning to the lite client system.
type CertenProofAdapter struct {
	CompleteProof   *lcproof.CompleteProof
	OriginalRequest *ProofRequest
	GeneratedAt     time.Time
	ValidatorID     string
}

// NewCertenProofAdapter creates an adapter that wraps a CompleteProof
func NewCertenProofAdapter(proof *lcproof.CompleteProof, req *ProofRequest, validatorID string) *CertenProofAdapter {
	return &CertenProofAdapter{
		CompleteProof:   proof,
		OriginalRequest: req,
		GeneratedAt:     time.Now(),
		ValidatorID:     validatorID,
	}
}

// ToCertenProof converts a CompleteProof to the legacy CertenProof format
// for compatibility with existing ValidatorBlock building code.
func (a *CertenProofAdapter) ToCertenProof() *CertenProof {
	if a.CompleteProof == nil {
		return nil
	}

	// Map CompleteProof to CertenProof structure
	certenProof := &CertenProof{
		ProofID:      fmt.Sprintf("lite_client_proof_%d", time.Now().Unix()),
		ProofVersion: "3.0", // Lite client version
		ProofType:    "accumulate_complete",
		GeneratedAt:  a.GeneratedAt,
		ValidatorID:  a.ValidatorID,
		Environment:  "production",
		BlockHeight:  a.CompleteProof.BlockHeight,
	}

	// Set request-specific fields if available
	if a.OriginalRequest != nil {
		certenProof.TransactionHash = a.OriginalRequest.TransactionHash
		certenProof.AccountURL = a.OriginalRequest.AccountURL
	}

	// Map lite client proof to legacy structure
	certenProof.LiteClientProof = &LiteClientProofData{
		CompleteProof:   a.CompleteProof,
		AccountHash:     a.CompleteProof.AccountHash,
		BPTRoot:         a.CompleteProof.BPTRoot,
		BlockHash:       a.CompleteProof.BlockHash,
		ProofValid:      true, // If we got here, the proof was generated successfully
		ValidationLevel: "complete",
	}

	// CRITICAL: Populate AccumulateAnchor from CompleteProof data
	// This is required by ValidatorBlock building code in bft_integration.go
	// Without this, the fallback values are used which is suboptimal
	blockHashHex := ""
	if len(a.CompleteProof.BlockHash) > 0 {
		blockHashHex = fmt.Sprintf("%x", a.CompleteProof.BlockHash)
	}

	// Get transaction hash from request if available
	txHash := ""
	accountURL := ""
	if a.OriginalRequest != nil {
		txHash = a.OriginalRequest.TransactionHash
		accountURL = a.OriginalRequest.AccountURL
	}
	// Fallback to CompleteProof's AccountURL if available
	if accountURL == "" && a.CompleteProof.AccountURL != "" {
		accountURL = a.CompleteProof.AccountURL
	}

	// Only set AccumulateAnchor if we have meaningful data
	if a.CompleteProof.BlockHeight > 0 || blockHashHex != "" || txHash != "" {
		certenProof.AccumulateAnchor = &AccumulateAnchorData{
			BlockHash:   blockHashHex,
			BlockHeight: a.CompleteProof.BlockHeight,
			TxHash:      txHash,
		}
		log.Printf("[PROOF] ✅ AccumulateAnchor populated: height=%d, blockHash=%s..., txHash=%s...",
			a.CompleteProof.BlockHeight,
			truncateString(blockHashHex, 16),
			truncateString(txHash, 16))
	}

	// Set verification status
	certenProof.VerificationStatus = &VerificationStatusData{
		OverallValid:      true,
		Confidence:        1.0,
		VerificationLevel: "complete",
		ComponentStatus:   map[string]bool{"lite_client": true},
		VerifiedAt:        time.Now(),
	}

	// Set metrics
	certenProof.ProcessingTime = time.Since(a.GeneratedAt)
	certenProof.Metrics = &ProofGenerationMetrics{
		TotalTime:   certenProof.ProcessingTime,
		ProofSize:   len(fmt.Sprintf("%+v", a.CompleteProof)),
		CacheHits:   0,
		CacheMisses: 1,
	}

	return certenProof
}

// =============================================================================
// CONSENSUS STATE QUERY
// =============================================================================

// ConsensusState represents the current Accumulate network consensus state
type ConsensusState struct {
	BlockHeight int64     // Current block height
	BlockHash   string    // Current block hash (hex encoded)
	Timestamp   time.Time // Timestamp of the state query
}

// GetConsensusState retrieves the current consensus state from Accumulate network
// This is used for batch anchoring to know the current network state.
func (g *LiteClientProofGenerator) GetConsensusState(ctx context.Context) (*ConsensusState, error) {
	// Apply timeout to context
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	// Use CometBFT DN client if available for direct consensus state
	if g.cometDN != nil {
		status, err := g.cometDN.Status(ctx)
		if err == nil && status != nil && status.SyncInfo.LatestBlockHeight > 0 {
			return &ConsensusState{
				BlockHeight: status.SyncInfo.LatestBlockHeight,
				BlockHash:   status.SyncInfo.LatestBlockHash.String(),
				Timestamp:   time.Now(),
			}, nil
		}
		log.Printf("[PROOF] Warning: CometBFT status query failed, falling back to account query: %v", err)
	}

	// Fallback: Query a well-known account to get current block state
	dnURL := "acc://dn.acme"

	// Query account to verify connectivity (we extract block info from proof below)
	_, queryErr := g.backend.QueryAccount(ctx, dnURL)
	if queryErr != nil {
		// Try alternative endpoints before failing
		alternativeURLs := []string{
			"acc://bvn-bvn0.acme",
			"acc://bvn-bvn1.acme",
			"acc://acme",
		}

		for _, altURL := range alternativeURLs {
			altAccount, altErr := g.backend.QueryAccount(ctx, altURL)
			if altErr == nil && altAccount != nil {
				return &ConsensusState{
					BlockHeight: 0, // Not available from account query
					BlockHash:   "",
					Timestamp:   time.Now(),
				}, nil
			}
		}

		// All attempts failed - return error with details
		return nil, fmt.Errorf("failed to get consensus state from any Accumulate endpoint: primary error: %w", queryErr)
	}

	// Create a minimal proof to extract block info
	proof, proofErr := g.GenerateAccumulateProof(ctx, dnURL)
	if proofErr != nil {
		return nil, fmt.Errorf("failed to generate proof for consensus state: %w", proofErr)
	}

	// Validate we got real block data
	if proof.BlockHeight == 0 && len(proof.BlockHash) == 0 {
		return nil, fmt.Errorf("proof returned but contains no block data")
	}

	// Extract block info from the proof
	var blockHashHex string
	if len(proof.BlockHash) > 0 {
		blockHashHex = fmt.Sprintf("%x", proof.BlockHash)
	}

	return &ConsensusState{
		BlockHeight: int64(proof.BlockHeight),
		BlockHash:   blockHashHex,
		Timestamp:   time.Now(),
	}, nil
}