package main

import (
	"context"
	"fmt"

	"github.com/a-h/interectors"
)

type VersionCommand struct {
}

func (c VersionCommand) Run(ctx context.Context) (err error) {
	fmt.Println(interectors.Version)
	return nil
}
