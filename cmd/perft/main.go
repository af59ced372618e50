package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"

	"chess-core/chess"
)

func main() {
	fen := flag.String("fen", chess.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	check := flag.Bool("check", false, "Cross-check the count against dragontoothmg")
	show := flag.Bool("show", false, "Print the parsed board before counting")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	board, err := chess.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}
	if *show {
		fmt.Print(board)
	}

	if *divide {
		div := chess.PerftDivide(board, *depth)
		type kv struct {
			m chess.Move
			n uint64
		}
		arr := make([]kv, 0, len(div))
		var sum uint64
		for m, n := range div {
			arr = append(arr, kv{m, n})
			sum += n
		}
		slices.SortFunc(arr, func(a, b kv) int {
			switch {
			case a.m.String() < b.m.String():
				return -1
			case a.m.String() > b.m.String():
				return 1
			}
			return 0
		})
		for _, x := range arr {
			fmt.Printf("%s: %d\n", x.m, x.n)
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += chess.Perft(board, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()
	fmt.Printf("depth %d \tnodes %d \ttime %s \tnps %.0f\n", *depth, totalNodes, elapsed, nps)

	if *check {
		ref := dragontoothmg.ParseFen(*fen)
		want := refPerft(&ref, *depth) * uint64(*repeat)
		if totalNodes != want {
			fmt.Fprintf(os.Stderr, "MISMATCH: dragontoothmg counts %d\n", want)
			os.Exit(1)
		}
		fmt.Println("dragontoothmg agrees")
	}
}

func refPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += refPerft(b, depth-1)
		unapply()
	}
	return nodes
}
