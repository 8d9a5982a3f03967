// chessplay is a line-oriented console for playing against a random mover.
// It exists to exercise the core package end to end; it is not a UCI engine.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/seekerror/build"
	"github.com/seekerror/logw"

	"github.com/solchess/castle/pkg/chess"
	"github.com/solchess/castle/pkg/chess/console"
)

var version = build.NewVersion(0, 1, 0)

var seed = flag.Int64("seed", 1, "Random mover seed")

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: chessplay [options]

chessplay is a console for playing moves against a random mover. Enter SAN
moves (e4, Nf3, O-O, exd5) or one of: reset [fen], undo, print, random, quit.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	logw.Infof(ctx, "chessplay %v", version)

	mover := chess.NewRandomMover(*seed)

	in := readStdinLines(ctx)
	driver, out := console.NewDriver(ctx, mover, in)
	go writeStdoutLines(ctx, out)

	<-driver.Closed()
}

func readStdinLines(ctx context.Context) <-chan string {
	ret := make(chan string, 1)
	go func() {
		defer close(ret)

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			logw.Debugf(ctx, "<< %v", scanner.Text())
			ret <- scanner.Text()
		}
	}()
	return ret
}

func writeStdoutLines(ctx context.Context, out <-chan string) {
	for line := range out {
		logw.Debugf(ctx, ">> %v", line)
		_, _ = fmt.Fprintln(os.Stdout, line)
	}
}
