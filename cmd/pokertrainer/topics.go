package main

import (
	"fmt"

	"github.com/lox/pokertrainer/trainer"
)

// TopicsCmd lists the available training topics grouped by street.
type TopicsCmd struct{}

func (c *TopicsCmd) Run() error {
	for _, street := range trainer.Streets {
		fmt.Printf("%s\n", street)
		for _, topic := range street.Topics() {
			fmt.Printf("  %-26s %s\n", topic, topic.Title())
		}
		fmt.Println()
	}
	return nil
}
