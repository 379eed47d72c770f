package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := newApp().Execute(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
