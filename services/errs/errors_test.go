package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidation(t *testing.T) {
	var v Validation
	assert.NoError(t, v.Err())

	v.Require("branch", "  ")
	v.Require("city", "Pune")
	v.Add("kitchen item %q must be answered", "Cooking area clean")

	err := v.Err()
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"branch is required", `kitchen item "Cooking area clean" must be answered`}, ve.Messages)
	assert.Contains(t, err.Error(), "branch is required")
}

func TestConflictErrorMessage(t *testing.T) {
	err := &ConflictError{Kind: "unit audit", Key: "Koramangala", Date: "01/06/2024"}
	assert.Equal(t, "a unit audit for Koramangala on 01/06/2024 already exists", err.Error())
}

func TestStoreWrapping(t *testing.T) {
	assert.NoError(t, Store("insert", nil))

	cause := errors.New("permission denied")
	err := Store("insert", cause)
	var se *StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "insert", se.Op)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "permission denied")

	assert.Same(t, err, Store("again", err))
	assert.ErrorIs(t, Store("get", ErrNotFound), ErrNotFound)
}

func TestValidation_DateAndRange(t *testing.T) {
	var v Validation
	v.Date("date", "15/03/2024")
	v.Range("", "")
	v.Range("01/03/2024", "2024-03-31")
	require.NoError(t, v.Err())

	v.Date("date", "30/02/2024")
	v.Range("soon", "31/03/2024")
	v.Range("31/03/2024", "01/03/2024")
	var verr *ValidationError
	require.ErrorAs(t, v.Err(), &verr)
	assert.Equal(t, []string{
		"date is missing or invalid",
		"from date is invalid",
		"from date must not be after to date",
	}, verr.Messages)
}
