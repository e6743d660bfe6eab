package errors

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"banco-ledger/internal/services"
	"banco-ledger/internal/storage"
	"banco-ledger/internal/validation"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	correlationID string
}

func (s *ResponseTestSuite) SetupTest() {
	s.correlationID = "550e8400-e29b-41d4-a716-446655440000"
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(LedgerInsufficientFunds, s.correlationID)

	s.Equal("LEDGER_002", response.Error.Code)
	s.Equal("Insufficient balance for this operation", response.Error.Message)
	s.Equal(s.correlationID, response.Error.CorrelationID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithOptions() {
	response := NewErrorResponse(
		SystemInternalError,
		s.correlationID,
		WithMessage("Custom message"),
		WithDetails("Detail 1", "Detail 2"),
	)

	s.Equal("SYSTEM_001", response.Error.Code)
	s.Equal("Custom message", response.Error.Message)
	s.Equal([]string{"Detail 1", "Detail 2"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestFromError_DomainRejection() {
	response := FromError(fmt.Errorf("loan request: %w", services.ErrNotEligible), s.correlationID)

	s.Equal(string(LoanNotEligible), response.Error.Code)
	s.Empty(response.Error.Details)
	s.True(response.IsClientError())
	s.Equal("[LOAN_001] Wallet balance does not qualify for a loan", response.String())
}

func (s *ResponseTestSuite) TestFromError_ValidationKeepsDetail() {
	err := fmt.Errorf("%w: name is required", validation.ErrInvalidInput)
	response := FromError(err, s.correlationID)

	s.Equal(string(ValidationGeneral), response.Error.Code)
	s.Equal([]string{err.Error()}, response.Error.Details)
	s.Equal("[VALIDATION_001] Validation failed: invalid input: name is required", response.String())
}

func (s *ResponseTestSuite) TestFromError_StorageIsServerError() {
	response := FromError(fmt.Errorf("%w: disk full", storage.ErrPersistence), s.correlationID)

	s.Equal(string(StoragePersistenceFailed), response.Error.Code)
	s.True(response.IsServerError())
	s.False(response.IsClientError())
}

func (s *ResponseTestSuite) TestFromError_InternalHidesDetail() {
	response := FromError(errors.New("nil pointer somewhere"), s.correlationID)

	s.Equal(string(SystemInternalError), response.Error.Code)
	s.Empty(response.Error.Details)
	s.NotContains(response.String(), "nil pointer")
}

func (s *ResponseTestSuite) TestToJSON() {
	response := NewErrorResponse(AuthInvalidCredentials, s.correlationID)

	data, err := response.ToJSON()
	s.Require().NoError(err)

	var decoded map[string]map[string]interface{}
	s.Require().NoError(json.Unmarshal(data, &decoded))
	s.Equal("AUTH_001", decoded["error"]["code"])
	s.Equal(s.correlationID, decoded["error"]["correlation_id"])
	_, hasDetails := decoded["error"]["details"]
	s.False(hasDetails)
}

func (s *ResponseTestSuite) TestWrite() {
	var buf bytes.Buffer

	s.Require().NoError(FromError(services.ErrAuthFailure, s.correlationID).Write(&buf))
	s.Equal("[AUTH_001] Incorrect account id or secret\n", buf.String())
}
