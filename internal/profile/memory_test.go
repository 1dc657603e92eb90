package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreCreateAndLookup(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	user := NewUser("Ada", "ada@example.com", "hash")
	require.NoError(t, store.CreateUser(ctx, user))

	byEmail, err := store.GetUserByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, "Ada", byEmail.Name)

	byID, err := store.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", byID.Email)
}

func TestMemoryStoreEmailNormalization(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.CreateUser(ctx, NewUser("Ada", "Ada@Example.com", "hash")))

	_, err := store.GetUserByEmail(ctx, "  ADA@EXAMPLE.COM  ")
	assert.NoError(t, err)

	err = store.CreateUser(ctx, NewUser("Imposter", "ada@example.com", "hash"))
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestMemoryStoreNotFound(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.GetUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.GetUserByID(ctx, "missing-id")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.UpdateFinancial(ctx, "missing-id", Financial{})
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting a missing user is not an error.
	assert.NoError(t, store.DeleteUser(ctx, "missing-id"))
}

func TestMemoryStoreUpdateFinancial(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	user := NewUser("Ada", "ada@example.com", "hash")
	require.NoError(t, store.CreateUser(ctx, user))

	score := 720
	income := 5000.0
	updated, err := store.UpdateFinancial(ctx, user.ID, Financial{
		CreditScore:   &score,
		MonthlyIncome: &income,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Financial.CreditScore)
	assert.Equal(t, 720, *updated.Financial.CreditScore)

	// A later partial update leaves earlier fields in place.
	debt := 1500.0
	updated, err = store.UpdateFinancial(ctx, user.ID, Financial{
		MonthlyDebt:            &debt,
		HasCompletedOnboarding: true,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Financial.CreditScore)
	assert.Equal(t, 720, *updated.Financial.CreditScore)
	assert.Equal(t, 5000.0, *updated.Financial.MonthlyIncome)
	assert.Equal(t, 1500.0, *updated.Financial.MonthlyDebt)
	assert.True(t, updated.Financial.HasCompletedOnboarding)
}

func TestMemoryStoreCopyOnRead(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	user := NewUser("Ada", "ada@example.com", "hash")
	require.NoError(t, store.CreateUser(ctx, user))

	fetched, err := store.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	fetched.Name = "Mutated"

	again, err := store.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", again.Name)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	user := NewUser("Ada", "ada@example.com", "hash")
	require.NoError(t, store.CreateUser(ctx, user))
	require.NoError(t, store.DeleteUser(ctx, user.ID))

	_, err := store.GetUserByID(ctx, user.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// The email is free again after deletion.
	assert.NoError(t, store.CreateUser(ctx, NewUser("Ada II", "ada@example.com", "hash")))
}

func TestFinancialMergeIgnoresNil(t *testing.T) {
	score := 700
	base := Financial{CreditScore: &score, HasCompletedOnboarding: true}

	base.Merge(Financial{})
	require.NotNil(t, base.CreditScore)
	assert.Equal(t, 700, *base.CreditScore)
	assert.True(t, base.HasCompletedOnboarding)
}
