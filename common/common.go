package common

import (
	"os"

	"github.com/gin-gonic/gin"
)

var (
	// ProjectID the GCP project the service runs against.
	ProjectID string

	// Production flag indicating if the app is running the production backend.
	Production bool

	// IsLocalhost flag indicating if the app is running on localhost.
	IsLocalhost bool
)

const (
	// TestProjectID is the project used by package tests.
	TestProjectID = "techhaven-store-dev"

	productionProject = "techhaven-store-prod"
)

func init() {
	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", "")
	if ProjectID == "" {
		ProjectID = TestProjectID
	}

	IsLocalhost = gin.Mode() != gin.ReleaseMode
	Production = ProjectID == productionProject && !IsLocalhost
}

// GetEnv returns the value of the environment variable named by key,
// or fallback if the variable is not present.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

// String returns a pointer to the given string value.
func String(v string) *string {
	return &v
}

// Bool returns a pointer to the given bool value.
func Bool(v bool) *bool {
	return &v
}
