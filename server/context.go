package server

import (
	"context"
)

type activeContext struct {
	context.Context
	context.CancelFunc
}

func newActiveContext(parent context.Context) (*activeContext, context.Context) {
	ctx, cancel := context.WithCancel(parent)
	return &activeContext{
		Context:    ctx,
		CancelFunc: cancel,
	}, ctx
}
