package order_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/dropship-gateway/internal/cj/mocks"
	"github.com/donaldgifford/dropship-gateway/internal/order"
	"github.com/donaldgifford/dropship-gateway/pkg/logger"
	domain "github.com/donaldgifford/dropship-gateway/pkg/types"
)

func newResolver(t *testing.T, client *mocks.MockClient) *order.VariantResolver {
	t.Helper()
	return order.NewVariantResolver(client, order.WithResolverLogger(logger.Nop()))
}

func TestResolver_SKUMatchWins(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockClient(t)
	client.EXPECT().QueryVariants(mock.Anything, "pid-1").Return([]domain.Variant{
		{VariantID: "100", SKU: "SKU-BLACK", Stock: 5},
		{VariantID: "200", SKU: "SKU-WHITE", Stock: 9},
	}, nil).Once()

	res, err := newResolver(t, client).Resolve(context.Background(), "pid-1", "SKU-WHITE", "")
	require.NoError(t, err)

	assert.Equal(t, "200", res.VariantID)
	assert.True(t, res.Live)
	assert.False(t, res.Drifted)
	assert.Equal(t, 9, res.Stock)
}

func TestResolver_FirstVariantWithoutSKUMatch(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockClient(t)
	client.EXPECT().QueryVariants(mock.Anything, "pid-1").Return([]domain.Variant{
		{VariantID: "100", SKU: "SKU-BLACK", Stock: 5},
		{VariantID: "200", SKU: "SKU-WHITE", Stock: 9},
	}, nil).Once()

	res, err := newResolver(t, client).Resolve(context.Background(), "pid-1", "SKU-UNLISTED", "")
	require.NoError(t, err)

	assert.Equal(t, "100", res.VariantID, "no SKU match falls back to the first live variant")
}

func TestResolver_DriftDetected(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockClient(t)
	client.EXPECT().QueryVariants(mock.Anything, "pid-1").Return([]domain.Variant{
		{VariantID: "300", SKU: "SKU-BLACK", Stock: 5},
	}, nil).Once()

	res, err := newResolver(t, client).Resolve(context.Background(), "pid-1", "SKU-BLACK", "100")
	require.NoError(t, err)

	assert.True(t, res.Drifted, "live id differing from stored id is drift")
	assert.Equal(t, "300", res.VariantID, "the live id wins over the stale one")
}

func TestResolver_NoDriftWhenStoredMatches(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockClient(t)
	client.EXPECT().QueryVariants(mock.Anything, "pid-1").Return([]domain.Variant{
		{VariantID: "100", SKU: "SKU-BLACK", Stock: 5},
	}, nil).Once()

	res, err := newResolver(t, client).Resolve(context.Background(), "pid-1", "SKU-BLACK", "100")
	require.NoError(t, err)

	assert.False(t, res.Drifted)
	assert.Equal(t, "100", res.VariantID)
}

func TestResolver_FallbackToStoredID(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockClient(t)
	client.EXPECT().QueryVariants(mock.Anything, "pid-1").
		Return(nil, errors.New("partner unreachable")).Once()

	res, err := newResolver(t, client).Resolve(context.Background(), "pid-1", "SKU-BLACK", "100")
	require.NoError(t, err)

	assert.Equal(t, "100", res.VariantID)
	assert.False(t, res.Live, "a fallback id was not confirmed against the live catalog")
	assert.False(t, res.Drifted)
}

func TestResolver_SuspectStoredIDNeverReturned(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		liveErr   error
		storedVID string
	}{
		{name: "live error with suspect stored id", liveErr: errors.New("partner unreachable"), storedVID: "auto_8821"},
		{name: "empty live list with suspect stored id", storedVID: "tmp_17"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := mocks.NewMockClient(t)
			client.EXPECT().QueryVariants(mock.Anything, "pid-1").
				Return(nil, tt.liveErr).Once()

			res, err := newResolver(t, client).Resolve(context.Background(), "pid-1", "", tt.storedVID)
			require.Error(t, err, "a suspect stored id must never be used as a fallback")
			assert.Nil(t, res)
		})
	}
}

func TestResolver_NothingResolvable(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockClient(t)
	client.EXPECT().QueryVariants(mock.Anything, "pid-1").
		Return([]domain.Variant{}, nil).Once()

	_, err := newResolver(t, client).Resolve(context.Background(), "pid-1", "SKU-BLACK", "")
	assert.ErrorIs(t, err, order.ErrVariantNotFound)
}
