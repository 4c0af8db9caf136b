package service

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KevoDB/chunkbench/pkg/engine"
	"github.com/KevoDB/chunkbench/pkg/flatmem"
	"github.com/KevoDB/chunkbench/pkg/ordmap"
	pb "github.com/KevoDB/chunkbench/proto/chunkbench"
)

// StatsToProto converts an engine snapshot to its wire form
func StatsToProto(st engine.Stats) (*pb.StatsResponse, error) {
	ops, err := structpb.NewStruct(structFields(st.Operations))
	if err != nil {
		return nil, fmt.Errorf("encode operation stats: %w", err)
	}
	return &pb.StatsResponse{
		Backend:        st.Backend,
		ChunkSize:      int64(st.ChunkSize),
		CostCounter:    st.CostCounter,
		BufferSize:     int64(st.BufferSize),
		Initialized:    st.Initialized,
		ProfilingPages: st.ProfilingPages,
		WholeMap:       mapStatsToProto(st.WholeMap),
		ChunkMap:       mapStatsToProto(st.ChunkMap),
		Flat: &pb.FlatStats{
			Writes:       st.Flat.Writes,
			BytesWritten: st.Flat.BytesWritten,
			PagesGrown:   st.Flat.PagesGrown,
			Pages:        st.Flat.Pages,
		},
		HeapAlloc:  st.HeapAlloc,
		Operations: ops,
	}, nil
}

// StatsFromProto converts a wire snapshot back to engine.Stats. Operation
// counters come back as float64, the only number type of a Struct.
func StatsFromProto(resp *pb.StatsResponse) engine.Stats {
	flat := resp.GetFlat()
	return engine.Stats{
		Backend:        resp.GetBackend(),
		ChunkSize:      int(resp.GetChunkSize()),
		CostCounter:    resp.GetCostCounter(),
		BufferSize:     int(resp.GetBufferSize()),
		Initialized:    resp.GetInitialized(),
		ProfilingPages: resp.GetProfilingPages(),
		WholeMap:       mapStatsFromProto(resp.GetWholeMap()),
		ChunkMap:       mapStatsFromProto(resp.GetChunkMap()),
		Flat: flatmem.Stats{
			Writes:       flat.GetWrites(),
			BytesWritten: flat.GetBytesWritten(),
			PagesGrown:   flat.GetPagesGrown(),
			Pages:        flat.GetPages(),
		},
		HeapAlloc:  resp.GetHeapAlloc(),
		Operations: resp.GetOperations().AsMap(),
	}
}

func mapStatsToProto(st ordmap.Stats) *pb.MapStats {
	return &pb.MapStats{
		Name:       st.Name,
		LiveKeys:   int64(st.LiveKeys),
		Records:    st.Records,
		Puts:       st.Puts,
		Deletes:    st.Deletes,
		LogBytes:   st.LogBytes,
		Pages:      st.Pages,
		PagesGrown: st.PagesGrown,
	}
}

func mapStatsFromProto(st *pb.MapStats) ordmap.Stats {
	return ordmap.Stats{
		Name:       st.GetName(),
		LiveKeys:   int(st.GetLiveKeys()),
		Records:    st.GetRecords(),
		Puts:       st.GetPuts(),
		Deletes:    st.GetDeletes(),
		LogBytes:   st.GetLogBytes(),
		Pages:      st.GetPages(),
		PagesGrown: st.GetPagesGrown(),
	}
}

// structFields rewrites the typed maps of the collector output into the
// generic maps structpb accepts
func structFields(in map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		out[k] = structValue(v)
	}
	return out
}

func structValue(v interface{}) interface{} {
	switch v := v.(type) {
	case map[string]interface{}:
		return structFields(v)
	case map[string]uint64:
		m := make(map[string]interface{}, len(v))
		for k, n := range v {
			m[k] = n
		}
		return m
	case map[string]int64:
		m := make(map[string]interface{}, len(v))
		for k, n := range v {
			m[k] = n
		}
		return m
	default:
		return v
	}
}
