package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkIDs(t *testing.T) {
	t.Run("EmptyInput", func(t *testing.T) {
		assert.Nil(t, chunkIDs(nil, idBatchSize))
		assert.Nil(t, chunkIDs([]int64{}, idBatchSize))
	})

	t.Run("SingleBatchBelowLimit", func(t *testing.T) {
		batches := chunkIDs([]int64{1, 2, 3}, idBatchSize)
		assert.Len(t, batches, 1)
		assert.Equal(t, []int64{1, 2, 3}, batches[0])
	})

	t.Run("ExactlyOneBatch", func(t *testing.T) {
		ids := makeIDs(idBatchSize)
		batches := chunkIDs(ids, idBatchSize)
		assert.Len(t, batches, 1)
		assert.Len(t, batches[0], idBatchSize)
	})

	t.Run("OneOverTheLimit", func(t *testing.T) {
		ids := makeIDs(idBatchSize + 1)
		batches := chunkIDs(ids, idBatchSize)
		assert.Len(t, batches, 2)
		assert.Len(t, batches[0], idBatchSize)
		assert.Len(t, batches[1], 1)
		assert.Equal(t, ids[idBatchSize], batches[1][0])
	})

	t.Run("PreservesOrderAcrossBatches", func(t *testing.T) {
		ids := makeIDs(7)
		var flattened []int64
		for _, batch := range chunkIDs(ids, 3) {
			flattened = append(flattened, batch...)
		}
		assert.Equal(t, ids, flattened)
	})
}

func makeIDs(n int) []int64 {
	ids := make([]int64, n)
	for i := range ids {
		ids[i] = int64(i + 1)
	}
	return ids
}
