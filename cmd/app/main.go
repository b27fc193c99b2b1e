package main

import (
	"github.com/reelcritic/core/internal/app"
	"github.com/reelcritic/core/internal/config"
)

func main() {
	app.Go(config.Load())
}
