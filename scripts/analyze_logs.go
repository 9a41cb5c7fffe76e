package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

type LogStats struct {
	TotalErrors         int
	PaymentsRecorded    int
	RepeatConfirmations int
	UnpaidConfirmations int
	GatewayFailures     int
	InvalidTokens       int
	ForbiddenAttempts   int
	FailedRequests      int
	CustomerActivities  map[string]int
	ErrorPatterns       map[string]int
}

var (
	emailRegex  = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	statusRegex = regexp.MustCompile(`Status: (\d{3})`)
	digitsRegex = regexp.MustCompile(`\d+`)
)

// Usage: go run ./scripts [YYYY-MM-DD] [logs dir]
func main() {
	day := time.Now().Format("2006-01-02")
	if len(os.Args) > 1 {
		day = os.Args[1]
	}
	logDir := "./logs"
	if len(os.Args) > 2 {
		logDir = os.Args[2]
	}

	stats := &LogStats{
		CustomerActivities: make(map[string]int),
		ErrorPatterns:      make(map[string]int),
	}

	scanLog(filepath.Join(logDir, fmt.Sprintf("error-%s.log", day)), func(line string) {
		stats.TotalErrors++
		switch {
		case strings.Contains(line, "Invalid token"), strings.Contains(line, "Missing Authorization header"):
			stats.InvalidTokens++
		case strings.Contains(line, "attempted admin access"), strings.Contains(line, "tried to list payments"):
			stats.ForbiddenAttempts++
			countEmail(line, stats)
		case strings.Contains(line, "Failed to retrieve checkout session"):
			stats.GatewayFailures++
		}
		extractErrorPattern(line, stats)
	})

	scanLog(filepath.Join(logDir, fmt.Sprintf("info-%s.log", day)), func(line string) {
		switch {
		case strings.Contains(line, "Recorded payment"):
			stats.PaymentsRecorded++
		case strings.Contains(line, "Payment already recorded"):
			stats.RepeatConfirmations++
		case strings.Contains(line, "not paid (status"):
			stats.UnpaidConfirmations++
		case strings.Contains(line, "Created order"):
			countEmail(line, stats)
		}
		if m := statusRegex.FindStringSubmatch(line); m != nil {
			if code, _ := strconv.Atoi(m[1]); code >= 400 {
				stats.FailedRequests++
			}
		}
	})

	printReport(day, stats)
}

func scanLog(path string, fn func(line string)) {
	file, err := os.Open(path)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", path, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fn(scanner.Text())
	}
}

func countEmail(line string, stats *LogStats) {
	if email := emailRegex.FindString(line); email != "" {
		stats.CustomerActivities[email]++
	}
}

// extractErrorPattern keys errors by their message with numbers stripped so
// that "order 12" and "order 13" count as one pattern
func extractErrorPattern(line string, stats *LogStats) {
	idx := strings.Index(line, ".go:")
	if idx < 0 {
		return
	}
	rest := line[idx+4:]
	if colon := strings.Index(rest, ":"); colon >= 0 {
		rest = rest[colon+1:]
	}
	msg := strings.TrimSpace(rest)
	if colon := strings.Index(msg, ":"); colon >= 0 {
		msg = msg[:colon]
	}
	msg = digitsRegex.ReplaceAllString(msg, "N")
	stats.ErrorPatterns[msg]++
}

func printReport(day string, stats *LogStats) {
	fmt.Println("\n=== Log Analysis Report ===")
	fmt.Println("Day:", day, "| Generated:", time.Now().Format("2006-01-02 15:04:05"))

	fmt.Println("\n1. Payments:")
	fmt.Printf("   Recorded: %d\n", stats.PaymentsRecorded)
	fmt.Printf("   Repeat confirmations: %d\n", stats.RepeatConfirmations)
	fmt.Printf("   Rejected as unpaid: %d\n", stats.UnpaidConfirmations)
	fmt.Printf("   Gateway failures: %d\n", stats.GatewayFailures)

	fmt.Println("\n2. Access:")
	fmt.Printf("   Invalid or missing tokens: %d\n", stats.InvalidTokens)
	fmt.Printf("   Forbidden attempts: %d\n", stats.ForbiddenAttempts)

	fmt.Println("\n3. Errors:")
	fmt.Printf("   Total errors: %d\n", stats.TotalErrors)
	fmt.Printf("   Failed requests: %d\n", stats.FailedRequests)

	fmt.Println("\n4. Most Active Customers:")
	printTop(stats.CustomerActivities, 5, "activities")

	fmt.Println("\n5. Most Common Errors:")
	printTop(stats.ErrorPatterns, 5, "occurrences")
}

func printTop(counts map[string]int, limit int, unit string) {
	type entry struct {
		key   string
		count int
	}

	var entries []entry
	for k, n := range counts {
		entries = append(entries, entry{k, n})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].key < entries[j].key
	})

	for i, e := range entries {
		if i >= limit {
			break
		}
		fmt.Printf("   %s: %d %s\n", e.key, e.count, unit)
	}
}
