package src

import (
	"log/slog"
	"os"
)

// LOGGER is the package-wide structured logger: solve/load/render events at
// Info, I/O and encode failures at Error.
var LOGGER = slog.New(slog.NewTextHandler(os.Stdout, nil))
