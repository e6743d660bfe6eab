package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccountInput(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		input   NewAccountInput
		wantErr string
	}{
		{name: "valid", input: NewAccountInput{Name: "Ana Souza", Secret: "s3cret"}},
		{name: "comma without space is fine", input: NewAccountInput{Name: "Souza,Ana", Secret: "x"}},
		{name: "missing name", input: NewAccountInput{Secret: "x"}, wantErr: "name is required"},
		{name: "missing secret", input: NewAccountInput{Name: "Ana"}, wantErr: "secret is required"},
		{name: "delimiter in name", input: NewAccountInput{Name: "Souza, Ana", Secret: "x"}, wantErr: "name must not contain"},
		{name: "newline in secret", input: NewAccountInput{Name: "Ana", Secret: "a\nb"}, wantErr: "secret must not contain"},
		{name: "carriage return", input: NewAccountInput{Name: "Ana\r", Secret: "x"}, wantErr: "name must not contain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestAmountInput(t *testing.T) {
	v := GetValidator()

	assert.NoError(t, v.Struct(AmountInput{Amount: decimal.RequireFromString("0.01")}))
	assert.NoError(t, v.Struct(AmountInput{Amount: decimal.NewFromInt(30000)}))

	err := v.Struct(AmountInput{Amount: decimal.Zero})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount must be a number greater than zero")

	assert.Error(t, v.Struct(AmountInput{Amount: decimal.NewFromInt(-5)}))
}

func TestGetValidator_Singleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
	assert.NotNil(t, GetValidator().GetValidate())
}
