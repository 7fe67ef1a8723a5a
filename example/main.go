package main

import (
	"errors"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/mgnsk/list"
	"github.com/mgnsk/list/ringlist"
)

func main() {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "list-example",
		Level:  hclog.LevelFromString(os.Getenv("LIST_LOG_LEVEL")),
		Output: os.Stderr,
	})

	a := list.New("a", "b", "c")
	b := list.New("d", "e", "f")

	// Splice b into a without copying its nodes. b is left empty.
	if err := a.MoveListAt(2, b); err != nil {
		logger.Error("failed to move list", "error", err)
		os.Exit(1)
	}

	logger.Info("moved list", "list", a.ToSlice(), "source_len", b.Len())

	sub, err := a.PopSubList(2, 4)
	if err != nil {
		logger.Error("failed to pop sublist", "error", err)
		os.Exit(1)
	}

	logger.Info("popped sublist", "sublist", sub.ToSlice(), "list", a.ToSlice())

	// A ring never ends, copying from it takes exactly one lap.
	ring := ringlist.New("x", "y")
	a.CopyListTail(ring)

	logger.Info("copied ring", "list", a.ToSlice())

	if _, err := a.PeekAt(a.Len() + 1); errors.Is(err, list.ErrIndexOutOfRange) {
		logger.Debug("peek past the tail", "error", err)
	}

	for i, v := range a.Backward() {
		logger.Debug("backward", "index", i, "value", v)
	}
}
