package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// BenchmarkResult stores the results of one strategy in a run
type BenchmarkResult struct {
	RunID        string
	Timestamp    time.Time
	Strategy     string
	BufferSize   int
	ChunkSize    int
	CostCounter  string
	Iterations   int
	Chunks       int
	StoreCost    float64 // mean per store
	LoadCost     float64 // mean per load
	StoreLatency float64 // mean µs per store
	LoadLatency  float64 // mean µs per load
	Verified     bool
	Error        string
}

var csvHeader = []string{
	"Timestamp", "RunID", "Strategy", "BufferSize", "ChunkSize", "CostCounter",
	"Iterations", "Chunks", "StoreCost", "LoadCost", "StoreLatency", "LoadLatency",
	"Verified", "Error",
}

// SaveResultCSV saves benchmark results to a CSV file, appending to an
// existing file
func SaveResultCSV(results []BenchmarkResult, filename string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	_, statErr := os.Stat(filename)
	exists := statErr == nil

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if !exists {
		if err := writer.Write(csvHeader); err != nil {
			return err
		}
	}

	for _, r := range results {
		record := []string{
			r.Timestamp.Format(time.RFC3339),
			r.RunID,
			r.Strategy,
			strconv.Itoa(r.BufferSize),
			strconv.Itoa(r.ChunkSize),
			r.CostCounter,
			strconv.Itoa(r.Iterations),
			strconv.Itoa(r.Chunks),
			fmt.Sprintf("%.2f", r.StoreCost),
			fmt.Sprintf("%.2f", r.LoadCost),
			fmt.Sprintf("%.3f", r.StoreLatency),
			fmt.Sprintf("%.3f", r.LoadLatency),
			strconv.FormatBool(r.Verified),
			r.Error,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// LoadResultCSV loads benchmark results from a CSV file
func LoadResultCSV(filename string) ([]BenchmarkResult, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}

	// Skip header
	if len(records) <= 1 {
		return []BenchmarkResult{}, nil
	}
	records = records[1:]

	results := make([]BenchmarkResult, 0, len(records))
	for _, record := range records {
		if len(record) < len(csvHeader) {
			continue
		}

		timestamp, _ := time.Parse(time.RFC3339, record[0])
		bufferSize, _ := strconv.Atoi(record[3])
		chunkSize, _ := strconv.Atoi(record[4])
		iterations, _ := strconv.Atoi(record[6])
		chunks, _ := strconv.Atoi(record[7])
		storeCost, _ := strconv.ParseFloat(record[8], 64)
		loadCost, _ := strconv.ParseFloat(record[9], 64)
		storeLatency, _ := strconv.ParseFloat(record[10], 64)
		loadLatency, _ := strconv.ParseFloat(record[11], 64)
		verified, _ := strconv.ParseBool(record[12])

		results = append(results, BenchmarkResult{
			Timestamp:    timestamp,
			RunID:        record[1],
			Strategy:     record[2],
			BufferSize:   bufferSize,
			ChunkSize:    chunkSize,
			CostCounter:  record[5],
			Iterations:   iterations,
			Chunks:       chunks,
			StoreCost:    storeCost,
			LoadCost:     loadCost,
			StoreLatency: storeLatency,
			LoadLatency:  loadLatency,
			Verified:     verified,
			Error:        record[13],
		})
	}

	return results, nil
}

// PrintResultTable prints a formatted table of benchmark results
func PrintResultTable(w io.Writer, results []BenchmarkResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No results to display")
		return
	}

	line := "+--------------------+------------+--------+--------------+--------------+------------+------------+----------+"
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, "| Strategy           | Buffer     | Chunks | Store cost   | Load cost    | Store      | Load       | Verified |")
	fmt.Fprintln(w, line)

	for _, r := range results {
		verified := "yes"
		if !r.Verified {
			verified = "NO"
		}
		fmt.Fprintf(w, "| %-18s | %10d | %6d | %12.0f | %12.0f | %10s | %10s | %8s |\n",
			r.Strategy,
			r.BufferSize,
			r.Chunks,
			r.StoreCost,
			r.LoadCost,
			formatLatency(r.StoreLatency),
			formatLatency(r.LoadLatency),
			verified)
	}
	fmt.Fprintln(w, line)

	for _, r := range results {
		if r.Error != "" {
			fmt.Fprintf(w, "%s: %s\n", r.Strategy, r.Error)
		}
	}
}

func formatLatency(us float64) string {
	if us > 1000 {
		return fmt.Sprintf("%.2fms", us/1000)
	}
	return fmt.Sprintf("%.2fµs", us)
}
