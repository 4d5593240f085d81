package router

import (
	"math/big"
	"testing"

	"gobridgerouter/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTransferIdDeterministic(t *testing.T) {
	a := ComputeTransferId(alice, tokenAddr, big.NewInt(1000), 10, bob, 1700000000)
	b := ComputeTransferId(alice, tokenAddr, big.NewInt(1000), 10, bob, 1700000000)
	assert.Equal(t, a, b)
}

func TestComputeTransferIdFieldSensitivity(t *testing.T) {
	base := ComputeTransferId(alice, tokenAddr, big.NewInt(1000), 10, bob, 1700000000)

	variants := map[string]types.TransferId{
		"initiator": ComputeTransferId(bob, tokenAddr, big.NewInt(1000), 10, bob, 1700000000),
		"token":     ComputeTransferId(alice, endpointA, big.NewInt(1000), 10, bob, 1700000000),
		"amount":    ComputeTransferId(alice, tokenAddr, big.NewInt(1001), 10, bob, 1700000000),
		"chain":     ComputeTransferId(alice, tokenAddr, big.NewInt(1000), 56, bob, 1700000000),
		"recipient": ComputeTransferId(alice, tokenAddr, big.NewInt(1000), 10, alice, 1700000000),
		"timestamp": ComputeTransferId(alice, tokenAddr, big.NewInt(1000), 10, bob, 1700000001),
	}
	for field, id := range variants {
		assert.NotEqual(t, base, id, "changing %s must change the id", field)
	}
}

func TestMemoryProcessedStoreCheckAndMark(t *testing.T) {
	s := NewMemoryProcessedStore()
	id := ComputeTransferId(alice, tokenAddr, big.NewInt(1000), 10, bob, 1700000000)

	processed, err := s.IsProcessed(id)
	require.NoError(t, err)
	assert.False(t, processed)

	ok, err := s.CheckAndMark(id)
	require.NoError(t, err)
	assert.True(t, ok)

	// every later attempt loses
	for i := 0; i < 3; i++ {
		ok, err = s.CheckAndMark(id)
		require.NoError(t, err)
		assert.False(t, ok)
	}

	processed, err = s.IsProcessed(id)
	require.NoError(t, err)
	assert.True(t, processed)
}

func TestMemoryProcessedStoreConcurrentMark(t *testing.T) {
	s := NewMemoryProcessedStore()
	id := ComputeTransferId(alice, tokenAddr, big.NewInt(1000), 10, bob, 1700000000)

	const n = 32
	wins := make(chan bool, n)
	for i := 0; i < n; i++ {
		go func() {
			ok, _ := s.CheckAndMark(id)
			wins <- ok
		}()
	}

	won := 0
	for i := 0; i < n; i++ {
		if <-wins {
			won++
		}
	}
	assert.Equal(t, 1, won)
}
