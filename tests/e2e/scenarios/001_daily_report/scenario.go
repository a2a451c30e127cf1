package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/klauspost/compress/gzip"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	totalLines     = 64000 // Total number of access log lines to generate
	malformedEvery = 100   // Every n-th line is written in a shape the analyzer does not recognize
)

var (
	paths      = []string{"/api/v2/banner/25019354", "/api/1/photogenic_banners/list/?server_name=WIN7RB4", "/api/v2/slot/4705/groups", "/export/appinstall_raw/2017-06-29/"}
	latencies  = []string{"0.390", "0.133", "0.062", "0.001"}
	userAgents = []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
		"Lynx/2.8.8dev.9 libwww-FM/2.14 SSL-MM/1.4.1 GNUTLS/2.10.5",
		"-",
	}
)

// ### End - fixed configs

// main runs the e2e scenario: 001_daily_report
//
// This scenario writes a gzip-compressed nginx access log into the log directory of a
// running report server, then triggers the analysis many times concurrently.
//
// What it tests:
//   - Selection of the latest rotated log file (an older plain file is also written)
//   - Transparent gzip decoding and line matching, malformed lines skipped
//   - Report rendering and create-only publishing via POST /analyses
//   - Idempotence: concurrent and repeated runs on the same date write one report
//   - Report retrieval via GET /reports and GET /reports/{date}
//
// Expected results:
//   - Exactly one POST /analyses answers 201 Created, every other one answers 200 OK
//     with outcome already_processed
//   - GET /reports lists one report, dated today
//   - The report holds 4 endpoints; /api/v2/banner/25019354 ranks first
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080" // Base URL of the report server
	logDir := "log"                    // Log directory of the server, relative to project root
	reportDir := "reports"             // Report directory of the server, relative to project root
	parallel := 4                      // Number of concurrent analysis requests
	totalRequests := 40                // Total number of analysis requests
	wantCleanReports := true           // If true, remove existing reports before running

	projectRoot, err := findProjectRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	logPath := filepath.Join(projectRoot, logDir)
	reportPath := filepath.Join(projectRoot, reportDir)

	if wantCleanReports {
		fmt.Printf("Cleaning report directory: %s\n", reportPath)
		if err := os.RemoveAll(reportPath); err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: Failed to clean report directory: %v\n", err)
		}
		fmt.Println()
	}

	today := time.Now()
	fmt.Println("Starting e2e scenario: 001_daily_report")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("LOG_PATH: %s\n", logPath)
	fmt.Printf("REPORT_PATH: %s\n", reportPath)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Printf("TOTAL_REQUESTS: %d\n", totalRequests)
	fmt.Printf("TOTAL_LINES: %d\n", totalLines)
	fmt.Println()

	latestName := fmt.Sprintf("nginx-access-ui.log-%s.gz", today.AddDate(0, 0, -1).Format("20060102"))
	olderName := fmt.Sprintf("nginx-access-ui.log-%s", today.AddDate(0, 0, -2).Format("20060102"))
	if err := writeLogs(logPath, latestName, olderName); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to write logs: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s and %s\n", latestName, olderName)
	fmt.Println()

	workerChan := make(chan struct{}, parallel)
	var wg sync.WaitGroup
	var created int64   // 201 status code
	var processed int64 // 200 status code
	var failed int64    // anything else

	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		workerChan <- struct{}{}

		go func(requestIndex int) {
			defer wg.Done()
			defer func() { <-workerChan }()

			statusCode, err := postAnalysis(baseURL)
			switch {
			case err != nil:
				atomic.AddInt64(&failed, 1)
				fmt.Fprintf(os.Stderr, "ERROR: Request %d failed: %v\n", requestIndex, err)
			case statusCode == http.StatusCreated:
				atomic.AddInt64(&created, 1)
			case statusCode == http.StatusOK:
				atomic.AddInt64(&processed, 1)
			default:
				atomic.AddInt64(&failed, 1)
				fmt.Fprintf(os.Stderr, "ERROR: Request %d answered %d\n", requestIndex, statusCode)
			}
		}(i)
	}
	wg.Wait()

	fmt.Println("=== Statistics ===")
	fmt.Printf("Created: %d\n", created)
	fmt.Printf("Already processed: %d\n", processed)
	fmt.Printf("Failed: %d\n", failed)
	fmt.Println()

	if created != 1 || failed != 0 {
		fmt.Fprintf(os.Stderr, "ERROR: expected exactly one created report and no failures\n")
		os.Exit(1)
	}

	dates, err := listReports(baseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to list reports: %v\n", err)
		os.Exit(1)
	}
	if len(dates) != 1 || dates[0] != today.Format(time.DateOnly) {
		fmt.Fprintf(os.Stderr, "ERROR: expected one report dated %s, got %v\n", today.Format(time.DateOnly), dates)
		os.Exit(1)
	}

	size, err := fetchReport(baseURL, dates[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to fetch report: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Report %s fetched (%d bytes)\n", dates[0], size)
	fmt.Println("Scenario completed successfully")
}

func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod, run from the project tree")
		}
		dir = parent
	}
}

func writeLogs(logPath, latestName, olderName string) error {
	if err := os.MkdirAll(logPath, 0755); err != nil {
		return err
	}

	latest, err := os.Create(filepath.Join(logPath, latestName))
	if err != nil {
		return err
	}
	defer latest.Close()

	gz := gzip.NewWriter(latest)
	if err := writeLines(gz); err != nil {
		return err
	}
	if err := gz.Close(); err != nil {
		return err
	}

	// must never be picked: it is older than latestName
	return os.WriteFile(filepath.Join(logPath, olderName), []byte(accessLine("/stale", "-", "9.999")+"\n"), 0644)
}

func writeLines(w io.Writer) error {
	buf := bufio.NewWriter(w)
	for i := 0; i < totalLines; i++ {
		line := accessLine(paths[i%len(paths)], userAgents[(i/len(paths))%len(userAgents)], latencies[i%len(latencies)])
		if i%malformedEvery == 0 {
			line = "malformed " + line
		}
		if _, err := fmt.Fprintln(buf, line); err != nil {
			return err
		}
	}
	return buf.Flush()
}

func accessLine(path, userAgent, latency string) string {
	return fmt.Sprintf(`1.196.116.32 -  - [29/Jun/2017:03:50:22 +0300] "GET %s HTTP/1.1" 200 927 "-" "%s" "-" "1498697422-2190034393-4708-9752759" "dc7161be3" %s`,
		path, userAgent, latency)
}

func postAnalysis(baseURL string) (int, error) {
	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Post(baseURL+"/analyses", "application/json", nil)
	if err != nil {
		return 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

func listReports(baseURL string) ([]string, error) {
	resp, err := http.Get(baseURL + "/reports")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var listing struct {
		Reports []struct {
			Date string `json:"date"`
		} `json:"reports"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(listing.Reports))
	for _, report := range listing.Reports {
		dates = append(dates, report.Date)
	}
	return dates, nil
}

func fetchReport(baseURL, date string) (int64, error) {
	resp, err := http.Get(baseURL + "/reports/" + date)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return io.Copy(io.Discard, resp.Body)
}
