package engine

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/KevoDB/chunkbench/pkg/chunker"
	"github.com/KevoDB/chunkbench/pkg/codec"
	"github.com/KevoDB/chunkbench/pkg/stats"
	"github.com/KevoDB/chunkbench/pkg/telemetry"
)

// StoreResult describes a completed store
type StoreResult struct {
	// Cost is the cost counter delta across the operation
	Cost uint64 `json:"cost"`
	// Bytes is the number of buffer bytes persisted
	Bytes int `json:"bytes"`
	// Chunks is the number of chunk records written (chunked stores only)
	Chunks int `json:"chunks,omitempty"`
}

// LoadResult describes a completed load
type LoadResult struct {
	// Cost is the cost counter delta across the operation
	Cost uint64 `json:"cost"`
	// Bytes is the length of the reloaded buffer
	Bytes int `json:"bytes"`
	// Chunks is the number of chunk records read (chunked loads only)
	Chunks int `json:"chunks,omitempty"`
}

// outcome is what an operation body reports back to run
type outcome struct {
	bytes  int
	chunks int
	write  bool
}

// run executes fn as one engine operation: serialized, measured with the cost
// counter, and reported to statistics, telemetry and the log.
func (e *Engine) run(op stats.OperationType, strategy string, fn func() (outcome, error)) (outcome, uint64, error) {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	ctx, span := e.tel.StartSpan(context.Background(), "engine."+string(op),
		attribute.String(telemetry.AttrStrategy, strategy))
	defer span.End()

	if e.closed {
		e.stats.TrackError(ErrorType(ErrEngineClosed))
		return outcome{}, 0, ErrEngineClosed
	}

	pagesBefore := e.pages()
	start := time.Now()

	var out outcome
	cost, err := stats.Measure(e.cost, func() error {
		var err error
		out, err = fn()
		return err
	})
	err = classify(err)

	elapsed := time.Since(start)
	e.stats.TrackOperationWithLatency(op, uint64(elapsed.Nanoseconds()))
	if grown := e.pages() - pagesBefore; grown > 0 {
		e.stats.TrackPagesGrown(grown)
	}
	if size, sizeErr := e.slot.Size(); sizeErr == nil {
		e.stats.TrackBufferSize(uint64(size))
	}

	e.metrics.RecordOperation(ctx, string(op), strategy, elapsed, cost, out.bytes, err)

	if err != nil {
		kind := ErrorType(err)
		e.stats.TrackError(kind)
		e.metrics.RecordError(ctx, kind, string(op))
		span.RecordError(err)
		span.SetStatus(codes.Error, kind)
		e.logger.Debug("%s failed after %v: %v", op, elapsed, err)
		return out, cost, err
	}

	e.stats.TrackCost(op, cost)
	if out.bytes > 0 {
		e.stats.TrackBytes(out.write, uint64(out.bytes))
	}
	if out.chunks > 0 {
		e.stats.TrackChunks(out.write, uint64(out.chunks))
	}
	span.SetAttributes(attribute.Int("bytes", out.bytes), attribute.Int("chunks", out.chunks))

	return out, cost, nil
}

// pages sums the sizes of the storage regions
func (e *Engine) pages() uint64 {
	return e.whole.Stats().Pages + e.chunks.Stats().Pages + e.flat.Memory().Size()
}

// charge advances the cost counter by bytes moved when cost counts bytes
func (e *Engine) charge(n int) {
	if e.work != nil && n > 0 {
		e.work.Add(uint64(n))
	}
}

// Append appends times copies of text to the active buffer, creating it on
// first use. It returns the new buffer length.
func (e *Engine) Append(text string, times int) (int, error) {
	var size int
	_, _, err := e.run(stats.OpAppend, "", func() (outcome, error) {
		var err error
		size, err = e.slot.Append(text, times)
		e.charge(len(text) * times)
		return outcome{}, err
	})
	return size, err
}

// Clear empties the active buffer, keeping its capacity. It does nothing if
// the buffer was never created.
func (e *Engine) Clear() error {
	_, _, err := e.run(stats.OpClear, "", func() (outcome, error) {
		e.slot.Clear()
		return outcome{}, nil
	})
	return err
}

// Zero overwrites every byte of the active buffer with zero, keeping its
// length. It does nothing if the buffer was never created.
func (e *Engine) Zero() error {
	_, _, err := e.run(stats.OpZero, "", func() (outcome, error) {
		e.slot.Zero()
		return outcome{}, nil
	})
	return err
}

// ReadRange returns buffer bytes [offset, offset+size) as text
func (e *Engine) ReadRange(offset, size int) (string, error) {
	var text string
	_, _, err := e.run(stats.OpReadRange, "", func() (outcome, error) {
		var err error
		text, err = e.slot.ReadRange(offset, size)
		return outcome{bytes: len(text)}, err
	})
	return text, err
}

// Size returns the length of the active buffer
func (e *Engine) Size() (int, error) {
	var size int
	_, _, err := e.run(stats.OpSize, "", func() (outcome, error) {
		var err error
		size, err = e.slot.Size()
		return outcome{}, err
	})
	return size, err
}

// StoreWhole persists the active buffer as one record under key. The buffer
// is left in place.
func (e *Engine) StoreWhole(key uint64) (StoreResult, error) {
	out, cost, err := e.run(stats.OpStoreWhole, telemetry.StrategyWhole, func() (outcome, error) {
		var out outcome
		err := e.slot.View(func(buf []byte) error {
			if err := (codec.Bound{MaxSize: e.wholeMax}).Check(len(buf)); err != nil {
				return fmt.Errorf("store whole %d: %w", key, err)
			}
			payload, err := codec.EncodeWhole(buf)
			if err != nil {
				return fmt.Errorf("store whole %d: %w", key, err)
			}
			if err := e.whole.Insert(codec.EncodeKey(key), payload); err != nil {
				return fmt.Errorf("store whole %d: %w", key, err)
			}
			e.charge(len(buf))
			out = outcome{bytes: len(buf), write: true}
			return nil
		})
		return out, err
	})
	return StoreResult{Cost: cost, Bytes: out.bytes}, err
}

// StoreChunked persists the active buffer as chunk records (key, 0..n) and
// drops any higher index left by an earlier, longer buffer. A failure leaves
// the chunks already written in place.
func (e *Engine) StoreChunked(key uint64) (StoreResult, error) {
	out, cost, err := e.run(stats.OpStoreChunked, telemetry.StrategyChunked, func() (outcome, error) {
		var out outcome
		err := e.slot.View(func(buf []byte) error {
			res, err := chunker.Store(e.chunks, key, buf, e.chunkSize)
			e.charge(res.Bytes)
			out = outcome{bytes: res.Bytes, chunks: res.Chunks, write: true}
			return err
		})
		return out, err
	})
	return StoreResult{Cost: cost, Bytes: out.bytes, Chunks: out.chunks}, err
}

// StoreFlat writes the active buffer into the flat region at offset, growing
// the region as needed
func (e *Engine) StoreFlat(offset uint64) (StoreResult, error) {
	out, cost, err := e.run(stats.OpStoreFlat, telemetry.StrategyFlat, func() (outcome, error) {
		var out outcome
		err := e.slot.View(func(buf []byte) error {
			n, err := e.flat.Write(offset, buf)
			if err != nil {
				return err
			}
			e.charge(n)
			out = outcome{bytes: n, write: true}
			return nil
		})
		return out, err
	})
	return StoreResult{Cost: cost, Bytes: out.bytes}, err
}

// LoadWhole replaces the active buffer with the record stored under key
func (e *Engine) LoadWhole(key uint64) (LoadResult, error) {
	out, cost, err := e.run(stats.OpLoadWhole, telemetry.StrategyWhole, func() (outcome, error) {
		payload, found, err := e.whole.Get(codec.EncodeKey(key))
		if err != nil {
			return outcome{}, fmt.Errorf("load whole %d: %w", key, err)
		}
		if !found {
			return outcome{}, fmt.Errorf("%w: whole record %d", ErrAbsentEntry, key)
		}
		buf, err := codec.DecodeWhole(payload)
		if err != nil {
			return outcome{}, fmt.Errorf("load whole %d: %w", key, err)
		}
		e.slot.Replace(buf)
		e.charge(len(buf))
		return outcome{bytes: len(buf)}, nil
	})
	return LoadResult{Cost: cost, Bytes: out.bytes}, err
}

// LoadChunkedSequential rebuilds the buffer stored under key with one lookup
// per chunk index. Reassembly stops at the first missing index, so chunks
// after a gap are not loaded.
func (e *Engine) LoadChunkedSequential(key uint64) (LoadResult, error) {
	out, cost, err := e.run(stats.OpLoadChunkedSequential, telemetry.StrategyChunked, func() (outcome, error) {
		buf, res, err := chunker.JoinByLookup(e.chunks, key)
		if err != nil {
			return outcome{}, err
		}
		return e.installChunks(key, buf, res)
	})
	return LoadResult{Cost: cost, Bytes: out.bytes, Chunks: out.chunks}, err
}

// LoadChunkedRanged rebuilds the buffer stored under key with a single range
// scan. Missing indices are skipped.
func (e *Engine) LoadChunkedRanged(key uint64) (LoadResult, error) {
	out, cost, err := e.run(stats.OpLoadChunkedRanged, telemetry.StrategyChunked, func() (outcome, error) {
		buf, res, err := chunker.JoinByRange(e.chunks, key)
		if err != nil {
			return outcome{}, err
		}
		return e.installChunks(key, buf, res)
	})
	return LoadResult{Cost: cost, Bytes: out.bytes, Chunks: out.chunks}, err
}

func (e *Engine) installChunks(key uint64, buf []byte, res chunker.Result) (outcome, error) {
	if res.Chunks == 0 {
		return outcome{}, fmt.Errorf("%w: no chunks for %d", ErrAbsentEntry, key)
	}
	e.slot.Replace(buf)
	e.charge(res.Bytes)
	return outcome{bytes: res.Bytes, chunks: res.Chunks}, nil
}

// LoadFlat replaces the active buffer with size bytes read from the flat
// region at offset
func (e *Engine) LoadFlat(offset uint64, size int) (LoadResult, error) {
	out, cost, err := e.run(stats.OpLoadFlat, telemetry.StrategyFlat, func() (outcome, error) {
		buf, err := e.flat.Read(offset, size)
		if err != nil {
			return outcome{}, err
		}
		e.slot.Replace(buf)
		e.charge(len(buf))
		return outcome{bytes: len(buf)}, nil
	})
	return LoadResult{Cost: cost, Bytes: out.bytes}, err
}

// DeleteChunk removes one chunk record of the buffer stored under key
func (e *Engine) DeleteChunk(key, index uint64) error {
	_, _, err := e.run(stats.OpDeleteChunk, telemetry.StrategyChunked, func() (outcome, error) {
		ck := codec.ChunkKey{BufferID: key, Index: index}
		found, err := e.chunks.Delete(ck.Encode())
		if err != nil {
			return outcome{}, fmt.Errorf("delete chunk %s: %w", ck, err)
		}
		if !found {
			return outcome{}, fmt.Errorf("%w: chunk %s", ErrAbsentEntry, ck)
		}
		return outcome{chunks: 1, write: true}, nil
	})
	return err
}

// FindGap reports the first missing chunk index of the buffer stored under
// key, if a later index is present
func (e *Engine) FindGap(key uint64) (chunker.Gap, bool, error) {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	if e.closed {
		return chunker.Gap{}, false, ErrEngineClosed
	}
	gap, found, err := chunker.FindGap(e.chunks, key)
	return gap, found, classify(err)
}
