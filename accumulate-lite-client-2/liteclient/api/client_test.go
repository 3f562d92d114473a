//go:build mock_disabled
// +build mock_disabled

// client_test.go
//
// Tests for the public API layer of the Accumulate Lite Client.
// Focuses on client creation, URL validation, response formatting, and error handling.
//
// NOTE: This test file contains mocks and is disabled by default.
// Run with: go test -tags=mock_disabled ./api

package api

import (
	"context"
	"fmt"
	"testing"
	"time"

	"gitlab.com/accumulatenetwork/accumulate/protocol"
	"github.com/certen/independant-validator/accumulate-lite-client-2/liteclient/types"
)

// Test constants for URL patterns
const (
	testADIAccount     = "acc://test.acme"
	testTokenAccount   = "acc://test.acme/token"
	testBookAccount    = "acc://test.acme/book"
	testKeyPageAccount = "acc://test.acme/book/1"
)

// MockLiteClient provides a test implementation of the core LiteClient interface
type MockLiteClient struct {
	accounts    map[string]*types.AccountData
	shouldError bool
	errorMsg    string
}

func (m *MockLiteClient) GetAccountData(ctx context.Context, url string) (*types.AccountData, error) {
	if m.shouldError {
		return nil, fmt.Errorf("%s", m.errorMsg)
	}

	if account, exists := m.accounts[url]; exists {
		return account, nil
	}
	return nil, fmt.Errorf("account not found: %s", url)
}

func (m *MockLiteClient) GetMetrics() *types.Metrics {
	return &types.Metrics{}
}

// TestClientCreation tests API client creation with different configurations
func TestClientCreation(t *testing.T) {
	t.Run("Create with default config", func(t *testing.T) {
		client, err := NewClient(nil)
		if err != nil {
			t.Fatalf("Failed to create client with default config: %v", err)
		}
		if client == nil {
			t.Fatal("Client should not be nil")
		}
	})

	t.Run("Create with custom config", func(t *testing.T) {
		config := DefaultConfig()
		config.Network.ServerURL = "https://testnet.accumulatenetwork.io/v2"
		config.Cache.DefaultTTL = 5 * time.Minute

		client, err := NewClient(config)
		if err != nil {
			t.Fatalf("Failed to create client with custom config: %v", err)
		}
		if client == nil {
			t.Fatal("Client should not be nil")
		}
	})
}

// TestGetAccountAPI tests the public GetAccount API layer logic
func TestGetAccountAPI(t *testing.T) {
	// Setup test data
	testAccountData := &types.AccountData{
		URL:  testTokenAccount,
		Type: protocol.AccountTypeTokenAccount,
		Data: nil,
	}

	mockLC := &MockLiteClient{
		accounts: map[string]*types.AccountData{
			testTokenAccount: testAccountData,
		},
	}

	t.Run("URL type detection", func(t *testing.T) {
		// Test the core API logic for determining request type
		if isADIIdentity(testTokenAccount) {
			t.Errorf("Expected individual account, got ADI for %s", testTokenAccount)
		}

		if !isADIIdentity(testADIAccount) {
			t.Errorf("Expected ADI, got individual account for %s", testADIAccount)
		}
	})

	t.Run("Mock integration", func(t *testing.T) {
		ctx := context.Background()

		// Test with mock to verify API layer would delegate correctly
		accountData, err := mockLC.GetAccountData(ctx, testTokenAccount)
		if err != nil {
			t.Fatalf("Mock GetAccountData failed: %v", err)
		}

		if accountData.URL != testTokenAccount {
			t.Errorf("Expected URL %s, got %s", testTokenAccount, accountData.URL)
		}

		if accountData.Type != protocol.AccountTypeTokenAccount {
			t.Errorf("Expected token account type, got %v", accountData.Type)
		}
	})
}

// TestGetAccountValidation tests input validation in GetAccount API
func TestGetAccountValidation(t *testing.T) {
	mockLC := &MockLiteClient{
		accounts:    make(map[string]*types.AccountData),
		shouldError: true,
		errorMsg:    "validation error",
	}

	ctx := context.Background()

	validationCases := []struct {
		name        string
		url         string
		expectError bool
	}{
		{
			name:        "Empty URL",
			url:         "",
			expectError: true,
		},
		{
			name:        "Valid token account URL",
			url:         testTokenAccount,
			expectError: false,
		},
		{
			name:        "Valid ADI URL",
			url:         testADIAccount,
			expectError: false,
		},
		{
			name:        "Invalid format",
			url:         "invalid-url",
			expectError: false, // URL format validation would be in core layer
		},
	}

	for _, tc := range validationCases {
		t.Run(tc.name, func(t *testing.T) {
			// Test URL validation logic that should be in API layer
			if tc.url == "" {
				// Empty URLs should be rejected at API layer
				if !tc.expectError {
					t.Errorf("Expected error for empty URL, but test case says no error")
				}
				return
			}

			// Test the mock to simulate core layer behavior
			_, err := mockLC.GetAccountData(ctx, tc.url)
			if tc.expectError && err == nil {
				t.Errorf("Expected error for %s, but got none", tc.name)
			}
			if !tc.expectError && err != nil && mockLC.shouldError {
				// This is expected when mock is set to error
				t.Logf("Expected error from mock: %v", err)
			}
		})
	}
}

// TestContextHandling tests context handling at the API layer
func TestContextHandling(t *testing.T) {
	mockLC := &MockLiteClient{
		accounts: make(map[string]*types.AccountData),
	}

	t.Run("Cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel() // Cancel immediately

		_, err := mockLC.GetAccountData(ctx, testTokenAccount)
		// Mock doesn't handle context cancellation, but in real implementation it would
		if err == nil {
			t.Log("Mock doesn't handle context cancellation - this would fail in real implementation")
		}
	})

	t.Run("Context with timeout", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Millisecond)
		defer cancel()

		// Give time for timeout
		time.Sleep(2 * time.Millisecond)

		_, err := mockLC.GetAccountData(ctx, testTokenAccount)
		// Mock doesn't handle timeout, but real implementation should
		if err == nil {
			t.Log("Mock doesn't handle timeouts - this would fail in real implementation")
		}
	})
}

// TestIsADIIdentity tests the ADI URL detection logic (core API functionality)
func TestIsADIIdentity(t *testing.T) {
	testCases := []struct {
		url      string
		expected bool
		desc     string
	}{
		// ADI URLs (should return true)
		{testADIAccount, true, "Basic ADI"},
		{"acc://dn.acme", true, "Directory Network ADI"},
		{"acc://bvn0.acme", true, "BVN ADI"},
		{"acc://test-adi.acme", true, "Hyphenated ADI"},

		// Account URLs (should return false)
		{testTokenAccount, false, "Token account"},
		{testBookAccount, false, "Key book"},
		{testKeyPageAccount, false, "Key page"},
		{"acc://dn.acme/anchors", false, "System anchors"},

		// Edge cases
		{"", false, "Empty string"},
		{"invalid", false, "Invalid format"},
		{"acc://", true, "Root ADI format"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			result := isADIIdentity(tc.url)
			if result != tc.expected {
				t.Errorf("isADIIdentity(%q) = %v, expected %v", tc.url, result, tc.expected)
			}
		})
	}
}

// TestResponseFormatting tests API response formatting
func TestResponseFormatting(t *testing.T) {
	t.Run("Response structure validation", func(t *testing.T) {
		// Test that response structures have required fields
		// This would test the API layer's responsibility for formatting responses

		// In a real test, we'd mock the core layer and verify the API formats responses correctly
		testAccountData := &types.AccountData{
			URL:  testTokenAccount,
			Type: protocol.AccountTypeTokenAccount,
			Data: nil,
		}

		if testAccountData.URL != testTokenAccount {
			t.Errorf("Test data setup failed: expected %s, got %s", testTokenAccount, testAccountData.URL)
		}

		if testAccountData.Type != protocol.AccountTypeTokenAccount {
			t.Errorf("Test data setup failed: expected token account type, got %v", testAccountData.Type)
		}
	})

	t.Run("Timestamp formatting", func(t *testing.T) {
		// Test that timestamps are properly formatted in API responses
		now := time.Now()
		if now.IsZero() {
			t.Error("Time generation failed")
		}

		// In real implementation, test that API layer adds timestamps to responses
		t.Logf("Current time for response: %v", now)
	})
}
