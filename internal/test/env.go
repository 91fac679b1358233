package test

import (
	"os"
	"testing"
)

func setTestEnvVariable(t testing.TB) {
	envVars := map[string]string{
		"PAGER_DEBUG":                     "false",
		"PAGER_ENV":                       "test",
		"PAGER_FAKE_OBJECT_STORAGE":       "false",
		"PAGER_FILESYSTEM_DRIVER":         "local",
		"PAGER_STORAGE_ACCESS_KEY_ID":     "pager_test",
		"PAGER_STORAGE_BUCKET":            "pager-test",
		"PAGER_STORAGE_REGION":            "us-east-1",
		"PAGER_STORAGE_SECRET_ACCESS_KEY": "pager_test",
	}

	for key, value := range envVars {
		if os.Getenv(key) == "" {
			t.Setenv(key, value)
		}
	}
}
