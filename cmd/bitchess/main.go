// bitchess inspects chess positions, lists allowed moves and plays games on
// a bitboard position engine.
package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/lgbarn/bitboard-chess-go/internal/cli"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := bitchess(); err != nil {
		logrus.Fatal(err)
	}
}

func bitchess() error {
	root := cli.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
