package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/LeoWherle/ranker/internal/core"
	"github.com/LeoWherle/ranker/internal/element"
)

// Terminal front-end: asks one pair at a time on stdin and prints the
// final ranking, most-preferred first.
func main() {
	path := "elements.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	elements, err := element.LoadFile(path)
	if err != nil {
		log.Fatalf("Failed to load elements: %v", err)
	}

	engine, err := core.NewEngine(elements)
	if err != nil {
		log.Fatalf("Failed to start ranking: %v", err)
	}

	fmt.Printf("Ranking %d elements. For each pair, answer 1 or 2.\n\n", len(elements))

	in := bufio.NewScanner(os.Stdin)
	asked := 0
	for cmp := engine.NextComparison(); cmp != nil; cmp = engine.NextComparison() {
		fmt.Printf("[1] %s\n[2] %s\n> ", describe(cmp.A), describe(cmp.B))
		if !in.Scan() {
			log.Fatal("Input closed before ranking completed")
		}

		var winner string
		switch strings.TrimSpace(in.Text()) {
		case "1":
			winner = cmp.A.ID
		case "2":
			winner = cmp.B.ID
		default:
			fmt.Println("Please answer 1 or 2.")
			continue
		}

		if err := engine.RecordChoice(winner); err != nil {
			log.Fatalf("Failed to record choice: %v", err)
		}
		asked++
	}

	ranking, err := engine.Result()
	if err != nil {
		log.Fatalf("Failed to get result: %v", err)
	}

	fmt.Printf("\nRanking after %d comparisons:\n", asked)
	for i, e := range ranking {
		fmt.Printf("%2d. %s\n", i+1, describe(e))
	}
}

func describe(e element.Element) string {
	if e.Description == "" {
		return e.Title
	}
	return fmt.Sprintf("%s: %s", e.Title, e.Description)
}
