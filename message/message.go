package message

import "github.com/weegigs/wee-webapp-go/we"

type Greeting string

const DefaultGreeting Greeting = "Hello from the wee web app"

type Message struct {
	Message   string       `json:"message"`
	Counter   uint64       `json:"counter"`
	Timestamp we.Timestamp `json:"timestamp"`
}
