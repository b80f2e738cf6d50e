package env

import (
	"os"
)

// PodName example: k8sprd-bidhaus-api-6868d88fbd-bz8zv
func PodName() string {
	return os.Getenv("PODNAME")
}

// EnvName example: k8sprd
func EnvName() string {
	return os.Getenv("ENV_NAME")
}

// AppName example: api, settler
func AppName() string {
	return os.Getenv("APP_NAME")
}

// Debug reports whether the service runs with verbose development logging
func Debug() bool {
	return os.Getenv("DEBUG") != ""
}
