// Command chat is a terminal client for the advisor server. It keeps a
// conversation session, renders allocation and projection summaries, and can
// export the current recommendation as a report, share text, or raw JSON.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"investadvisor/pkg/advisor"
	"investadvisor/pkg/advisorclient"
)

func main() {
	var serverURL string
	var exportDir string

	flag.StringVar(&serverURL, "server", advisorclient.DefaultBaseURL, "Base URL of the advisor server")
	flag.StringVar(&exportDir, "export-dir", ".", "Directory for exported reports")
	flag.Parse()

	client := advisorclient.New(serverURL)
	session := advisor.NewSession()

	ctx := context.Background()
	if health, err := client.Health(ctx); err == nil {
		fmt.Printf("Connected to %s (AI enabled: %v)\n\n", serverURL, health.AIEnabled)
	} else {
		fmt.Printf("Warning: %v\n\n", err)
	}

	printMessages(session.Messages())
	fmt.Println("Commands: /report /share /export /suggest /quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line {
		case "/quit", "/exit":
			return
		case "/suggest":
			for i, q := range advisor.SuggestedQueries {
				fmt.Printf("  %d. %s\n", i+1, q)
			}
			continue
		case "/report":
			withCurrent(session, func(rec *advisor.Recommendation) {
				fmt.Println(advisor.BuildReport(rec, time.Now()))
			})
			continue
		case "/share":
			withCurrent(session, func(rec *advisor.Recommendation) {
				fmt.Println(advisor.ShareText(rec))
			})
			continue
		case "/export":
			withCurrent(session, func(rec *advisor.Recommendation) {
				exportRecommendation(rec, exportDir)
			})
			continue
		}

		if !session.BeginRequest() {
			fmt.Println("A request is already in flight.")
			continue
		}
		session.AddMessage(line, true, nil)

		rec, err := client.Recommend(ctx, line)
		session.EndRequest()
		if err != nil {
			var transportErr *advisorclient.TransportError
			if errors.As(err, &transportErr) {
				fmt.Printf("Error: %v\n", err)
			}
			session.AddMessage(fmt.Sprintf("I apologize, but I encountered an issue: %v Please try again or use one of the suggested queries.", err), false, nil)
			printLast(session)
			continue
		}

		session.SetCurrentRecommendation(rec)
		session.AddMessage("Based on your investment goals, I've created a personalized recommendation for you.", false, rec)
		printLast(session)
		printSummary(rec)
	}
}

func withCurrent(session *advisor.Session, fn func(*advisor.Recommendation)) {
	rec := session.CurrentRecommendation()
	if rec == nil {
		fmt.Println("No recommendation yet. Ask for one first.")
		return
	}
	fn(rec)
}

func exportRecommendation(rec *advisor.Recommendation, dir string) {
	data, err := advisor.ExportJSON(rec)
	if err != nil {
		fmt.Printf("Export failed: %v\n", err)
		return
	}
	name := fmt.Sprintf("recommendation-%s.json", time.Now().Format("20060102-150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Printf("Export failed: %v\n", err)
		return
	}
	fmt.Printf("Saved %s\n", path)
}

func printMessages(messages []advisor.Message) {
	for _, msg := range messages {
		printMessage(msg)
	}
}

func printLast(session *advisor.Session) {
	messages := session.Messages()
	if len(messages) > 0 {
		printMessage(messages[len(messages)-1])
	}
}

func printMessage(msg advisor.Message) {
	speaker := "advisor"
	if msg.IsUser {
		speaker = "you"
	}
	fmt.Printf("[%s] %s\n", speaker, msg.Text)
}

func printSummary(rec *advisor.Recommendation) {
	fmt.Print(renderSummary(rec))
}

func renderSummary(rec *advisor.Recommendation) string {
	source := "mock data"
	if rec.IsAI {
		source = "AI analysis"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "\nPortfolio (%s):\n", source)
	for _, segment := range advisor.PortfolioPieData(rec.Portfolio) {
		fmt.Fprintf(&sb, "  %-16s %5.1f%%\n", segment.Label, segment.Value)
	}
	gauge := advisor.RiskGaugeData(rec.RiskScore)
	fmt.Fprintf(&sb, "Risk: %.0f/10 (%s)  Diversification: %.0f/10 (%s)\n\n",
		gauge.Score, gauge.Level, rec.DiversificationScore, advisor.DiversificationLevel(rec.DiversificationScore))
	return sb.String()
}
