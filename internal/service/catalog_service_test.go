package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/atelier-service/internal/domain"
)

func TestSellPrice(t *testing.T) {
	product := &domain.Product{BaseCost: 200, ProfitMargin: 25}
	require.InDelta(t, 250.0, SellPrice(product), 0.001)

	free := &domain.Product{BaseCost: 0, ProfitMargin: 40}
	require.InDelta(t, 0.0, SellPrice(free), 0.001)

	atCost := &domain.Product{BaseCost: 99.90, ProfitMargin: 0}
	require.InDelta(t, 99.90, SellPrice(atCost), 0.001)
}
