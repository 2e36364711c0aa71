package resource_test

import (
	"errors"
	"fmt"

	"github.com/next-trace/scg-resource/resource"
)

func ExampleMessages() {
	timeout := errors.New("i/o timeout")
	err := resource.Wrap(resource.GetFailed("http://x/a.jar", timeout), "resolving dependency X")

	for _, m := range resource.Messages(err) {
		fmt.Println(m)
	}
	// Output:
	// resolving dependency X
	// Could not get resource 'http://x/a.jar'
	// i/o timeout
}

func ExampleCollect() {
	err := resource.Collect("Could not resolve all dependencies",
		resource.GetMissing("http://x/a.jar"),
		resource.GetMissing("http://x/b.jar"),
	)

	fmt.Println(err)
	// Output:
	// Could not resolve all dependencies: Resource missing. [GET: http://x/a.jar]; Resource missing. [GET: http://x/b.jar]
}
