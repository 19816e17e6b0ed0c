package main

import (
	"os"
)

// envVarIsSet reports whether the variable is present in the environment.
// An empty value still counts as set.
func envVarIsSet(envKey string) bool {
	_, ok := os.LookupEnv(envKey)
	return ok
}
