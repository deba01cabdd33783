//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/weegigs/wee-webapp-go/support"
)

func server(cfg support.Config) *support.Server {
	panic(wire.Build(Live))
}
