// Package main demonstrates usage of the scg-resource package.
package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/next-trace/scg-resource/resource"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	// Translate a transport error once, at the boundary
	timeout := errors.New("read tcp 10.0.0.7:443: i/o timeout")
	get := resource.GetFailed("https://repo.example/artifact.jar", timeout)

	// Higher layers add context without losing the original cause
	resolve := resource.Wrap(get, "resolving dependency org.example:artifact:1.0")
	fmt.Println(resolve.Error())
	fmt.Println(errors.Is(resolve, timeout), resource.Depth(resolve))

	for i, m := range resource.Messages(resolve) {
		fmt.Printf("%d. %s\n", i+1, m)
	}

	// Contextual failures are grouped as siblings under a shared message
	all := resource.Collect("Could not resolve all dependencies",
		resolve,
		resource.GetMissing("https://repo.example/other.pom"),
	)
	logger.Error("resolution failed", zap.Error(all))
	logger.Error("dependency failed", resource.Field(resolve))
}
